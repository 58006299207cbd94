package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/kinscan"
)

func TestHeadersMissingFileWarnsOnlyWhenEnabled(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB>
  <simulation_mode><enable_kinetics>true</enable_kinetics></simulation_mode>
</CompLaB>`)

	Headers(ctx)

	warns := bag.Warnings()
	require.Len(t, warns, 1, "abiotic header is disabled and must stay silent")
	require.Equal(t, diag.KinHeaderNotFound, warns[0].Code)
	require.Contains(t, warns[0].Message, kinscan.BioticHeader)
}

func TestHeadersOutOfBoundsIndex(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB>
  <simulation_mode>
    <biotic_mode>true</biotic_mode>
    <enable_kinetics>true</enable_kinetics>
  </simulation_mode>
  <chemistry><number_of_substrates>1</number_of_substrates></chemistry>
  <microbiology><number_of_microbes>1</number_of_microbes></microbiology>
</CompLaB>`)
	require.NoError(t, os.WriteFile(
		filepath.Join(ctx.KineticsDir, kinscan.BioticHeader),
		[]byte("subsR[1] = -vmax * C[1];"), 0o644))

	Headers(ctx)

	require.Equal(t, 1, countCode(bag.Errors(), diag.HdrSubstrateIdxOOB))
	require.Equal(t, 1, countCode(bag.Warnings(), diag.HdrNoSizeGuard))
}

package checks

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"complabdoctor/internal/diag"
	"complabdoctor/internal/xmlcfg"
)

// newContext parses a document literal and wires a fresh bag. The config
// path is placed in a temp dir so geometry candidates resolve under it.
func newContext(t *testing.T, doc string) (*Context, *diag.Bag) {
	t.Helper()
	var root xmlcfg.Node
	require.NoError(t, xml.Unmarshal([]byte(doc), &root))

	dir := t.TempDir()
	bag := diag.NewBag(64)
	ctx := &Context{
		Root:        &root,
		ConfigPath:  filepath.Join(dir, "CompLaB.xml"),
		KineticsDir: dir,
		Params:      ExtractParams(&root),
		Rep:         diag.BagReporter{Bag: bag},
	}
	return ctx, bag
}

func writeGeometry(t *testing.T, ctx *Context, size int) {
	t.Helper()
	dir := filepath.Join(ctx.ConfigDir(), ctx.Params.InputPath)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ctx.Params.GeometryFile), make([]byte, size), 0o644))
}

func writeGeometryAt(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644))
}

func codesOf(diags []diag.Diagnostic) []diag.Code {
	var out []diag.Code
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func countCode(diags []diag.Diagnostic, code diag.Code) int {
	n := 0
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}

const minimalDomain = `<CompLaB>
  <domain>
    <nx>10</nx><ny>1</ny><nz>1</nz>
    <filename>geometry.dat</filename>
  </domain>
  <path><input_path>input</input_path></path>
</CompLaB>`

func TestExtractParams(t *testing.T) {
	ctx, _ := newContext(t, `<CompLaB>
  <domain><nx>40</nx><ny>20</ny><nz>3</nz></domain>
  <chemistry><number_of_substrates>2</number_of_substrates></chemistry>
  <microbiology><number_of_microbes>1</number_of_microbes></microbiology>
  <simulation_mode>
    <biotic_mode>biotic</biotic_mode>
    <enable_kinetics>TRUE</enable_kinetics>
    <enable_abiotic_kinetics>off</enable_abiotic_kinetics>
  </simulation_mode>
  <LB_numerics><tau>0.9</tau></LB_numerics>
</CompLaB>`)

	p := ctx.Params
	require.Equal(t, 40, p.NX)
	require.Equal(t, 20, p.NY)
	require.Equal(t, 3, p.NZ)
	require.Equal(t, int64(2400), p.Cells())
	require.Equal(t, 2, p.NSubs)
	require.Equal(t, 1, p.NMics)
	require.True(t, p.Biotic)
	require.True(t, p.Kinetics)
	require.False(t, p.AbioticKinetics)
	require.Equal(t, 0.9, p.Tau)
	require.Equal(t, "geometry.dat", p.GeometryFile)
	require.Equal(t, "input", p.InputPath)
}

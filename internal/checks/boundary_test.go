package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"complabdoctor/internal/diag"
)

func TestBoundaryNoSource(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB>
  <chemistry>
    <number_of_substrates>2</number_of_substrates>
    <substrate0>
      <left_boundary_type>Neumann</left_boundary_type>
      <right_boundary_type>Neumann</right_boundary_type>
      <initial_concentration>0</initial_concentration>
    </substrate0>
    <substrate1>
      <left_boundary_type>Neumann</left_boundary_type>
      <right_boundary_type>Neumann</right_boundary_type>
    </substrate1>
  </chemistry>
</CompLaB>`)

	Boundary(ctx)

	warns := bag.Warnings()
	require.Len(t, warns, 1)
	require.Equal(t, diag.BoundaryNoSource, warns[0].Code)
}

func TestBoundaryDirichletIsASource(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB>
  <chemistry>
    <number_of_substrates>2</number_of_substrates>
    <substrate0>
      <left_boundary_type>Dirichlet</left_boundary_type>
      <right_boundary_type>Neumann</right_boundary_type>
    </substrate0>
    <substrate1>
      <left_boundary_type>Neumann</left_boundary_type>
      <right_boundary_type>Neumann</right_boundary_type>
    </substrate1>
  </chemistry>
</CompLaB>`)

	Boundary(ctx)

	require.Zero(t, bag.Len())
}

func TestBoundaryInitialConcentrationIsASource(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB>
  <chemistry>
    <number_of_substrates>1</number_of_substrates>
    <substrate0>
      <left_boundary_type>Neumann</left_boundary_type>
      <right_boundary_type>Neumann</right_boundary_type>
      <initial_concentration>0.5</initial_concentration>
    </substrate0>
  </chemistry>
</CompLaB>`)

	Boundary(ctx)

	require.Zero(t, bag.Len())
}

func TestBoundaryNoSubstratesSilent(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB><chemistry/></CompLaB>`)

	Boundary(ctx)

	require.Zero(t, bag.Len())
}

func TestSummaryEmitsFourLines(t *testing.T) {
	ctx, bag := newContext(t, minimalDomain)

	Summary(ctx)

	infos := bag.Infos()
	require.Len(t, infos, 4)
	require.Contains(t, infos[0].Message, "nx=10")
	require.Contains(t, infos[0].Message, "total=10")
	require.Equal(t, "Substrates: 0", infos[1].Message)
	require.Equal(t, "Microbes: 0", infos[2].Message)
	require.Contains(t, infos[3].Message, "Biotic mode: false")
}

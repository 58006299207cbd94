package checks

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"complabdoctor/internal/diag"
)

func TestGeometryExactSize(t *testing.T) {
	ctx, bag := newContext(t, minimalDomain)
	writeGeometry(t, ctx, 10)

	Geometry(ctx)

	require.False(t, bag.HasErrors())
	require.Equal(t, 1, countCode(bag.Infos(), diag.GeomSizeOK))
}

func TestGeometrySizeMismatch(t *testing.T) {
	for _, size := range []int{9, 11} {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			ctx, bag := newContext(t, minimalDomain)
			writeGeometry(t, ctx, size)

			Geometry(ctx)

			errs := bag.Errors()
			require.Len(t, errs, 1)
			require.Equal(t, diag.GeomSizeMismatch, errs[0].Code)
			require.Contains(t, errs[0].Message, strconv.Itoa(size)+" bytes")
			require.Contains(t, errs[0].Message, "= 10.")
		})
	}
}

func TestGeometryFileNotFound(t *testing.T) {
	ctx, bag := newContext(t, minimalDomain)

	Geometry(ctx)

	warns := bag.Warnings()
	require.Len(t, warns, 1)
	require.Equal(t, diag.GeomFileNotFound, warns[0].Code)
	require.Contains(t, warns[0].Message, "geometry.dat")
	require.True(t, strings.HasPrefix(warns[0].Notes[0], "Searched: "))
}

// Zero cells means the document never declared an extent; a missing file is
// then not worth a warning.
func TestGeometryNotFoundZeroCellsSilent(t *testing.T) {
	ctx, bag := newContext(t, `<CompLaB/>`)

	Geometry(ctx)

	require.Zero(t, bag.Len())
}

// The first existing candidate wins even when a later one would match.
func TestGeometryFirstCandidateWins(t *testing.T) {
	ctx, bag := newContext(t, minimalDomain)
	writeGeometry(t, ctx, 7) // <dir>/input/geometry.dat, wrong size
	writeGeometryAt(t, ctx.ConfigDir(), ctx.Params.GeometryFile, 10)

	Geometry(ctx)

	require.Equal(t, 1, countCode(bag.Errors(), diag.GeomSizeMismatch))
	require.False(t, bag.HasWarnings())
}

func TestDomainExtent(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want []diag.Code
	}{
		{"ok", `<CompLaB><domain><nx>3</nx><ny>1</ny><nz>1</nz></domain></CompLaB>`, nil},
		{"nx too small", `<CompLaB><domain><nx>2</nx><ny>1</ny><nz>1</nz></domain></CompLaB>`,
			[]diag.Code{diag.DomNXTooSmall}},
		{"nz zero", `<CompLaB><domain><nx>10</nx><ny>4</ny><nz>0</nz></domain></CompLaB>`,
			[]diag.Code{diag.DomNYNZInvalid}},
		{"both", `<CompLaB><domain><nx>1</nx><ny>0</ny><nz>0</nz></domain></CompLaB>`,
			[]diag.Code{diag.DomNXTooSmall, diag.DomNYNZInvalid}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, bag := newContext(t, tc.doc)

			Domain(ctx)

			require.Equal(t, tc.want, codesOf(bag.Errors()))
		})
	}
}

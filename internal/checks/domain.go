package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"

	"complabdoctor/internal/diag"
)

// Geometry verifies that the declared voxel extent matches the on-disk
// geometry file (one byte per voxel).
//
// Candidate locations are tried in a fixed order and the first existing file
// wins; a lower-priority candidate with a different size is deliberately not
// consulted (the solver resolves the file the same way).
func Geometry(ctx *Context) {
	p := ctx.Params

	candidates := []string{
		filepath.Join(ctx.ConfigDir(), p.InputPath, p.GeometryFile),
		filepath.Join(ctx.ConfigDir(), p.GeometryFile),
		filepath.Join(p.InputPath, p.GeometryFile),
	}

	var geomFile string
	var size int64
	for _, c := range candidates {
		st, err := os.Stat(c)
		if err == nil && !st.IsDir() {
			geomFile = c
			size = st.Size()
			break
		}
	}

	expected := p.Cells()
	if geomFile == "" {
		if expected > 0 {
			ctx.Rep.Report(diag.NewWarning(diag.GeomFileNotFound,
				fmt.Sprintf("File not found: %s", p.GeometryFile)).
				WithNote(fmt.Sprintf("Searched: %s", strings.Join(candidates, ", "))))
		}
		return
	}

	// A geometry file too large for the host int certainly does not match
	// any declarable extent; report it as a mismatch instead of wrapping.
	actual, err := safecast.Conv[int](size)
	if err != nil || int64(actual) != expected {
		ctx.Rep.Report(diag.NewError(diag.GeomSizeMismatch,
			fmt.Sprintf("Size MISMATCH: file has %d bytes but nx*ny*nz = %d*%d*%d = %d.",
				size, p.NX, p.NY, p.NZ, expected)).
			WithNote("This is the most common cause of heap corruption!").
			WithNote(fmt.Sprintf("File: %s", geomFile)).
			WithFix("Change nx/ny/nz in XML to match the geometry file, or regenerate the geometry with the correct dimensions."))
		return
	}

	ctx.Rep.Report(diag.NewInfo(diag.GeomSizeOK,
		fmt.Sprintf("Geometry file OK: %d bytes = nx*ny*nz (%d*%d*%d=%d)",
			size, p.NX, p.NY, p.NZ, expected)))
}

// Domain checks the extent itself: the flow axis needs an inlet, at least
// one interior cell and an outlet, and the transverse extents must be
// positive.
func Domain(ctx *Context) {
	p := ctx.Params
	if p.NX < 3 {
		diag.Error(ctx.Rep, diag.DomNXTooSmall,
			fmt.Sprintf("nx=%d is too small (minimum 3: inlet + at least 1 cell + outlet).", p.NX))
	}
	if p.NY < 1 || p.NZ < 1 {
		diag.Error(ctx.Rep, diag.DomNYNZInvalid,
			fmt.Sprintf("ny=%d, nz=%d must be >= 1.", p.NY, p.NZ))
	}
}

// Package exitcode maps solver process exit codes to human descriptions.
//
// The table covers the Windows NTSTATUS fault codes the solver dies with
// (as signed 32-bit values), the Linux signal conventions, and the two
// application-level codes the solver itself returns. Lookup is exact-match;
// anything else resolves to a generic unknown-error entry.
package exitcode

import "fmt"

// Diagnosis is the human interpretation of one exit code.
type Diagnosis struct {
	Name        string
	Description string
}

var table = map[int]Diagnosis{
	-1073740940: {"Heap Corruption (0xC0000374)",
		"An array or vector was accessed out of bounds."},
	-1073741819: {"Access Violation (0xC0000005)",
		"A null or invalid pointer was dereferenced."},
	-1073741571: {"Stack Overflow (0xC00000FD)",
		"Domain is too large or recursion depth exceeded."},
	-1073741676: {"Integer Divide-by-Zero (0xC0000094)",
		"Division by zero in the solver."},
	-1073741675: {"Float Divide-by-Zero (0xC0000093)",
		"Floating-point division by zero in kinetics."},
	-1073741674: {"Float Overflow (0xC0000091)",
		"Floating-point overflow — rate or concentration is infinite."},
	-6: {"Abort / Assert Failure (SIGABRT)",
		"An internal assertion failed."},
	-11: {"Segmentation Fault (SIGSEGV)",
		"Memory access error — array out of bounds."},
	134: {"Abort (Linux SIGABRT)",
		"Assertion failure in the solver."},
	139: {"Segfault (Linux SIGSEGV)",
		"Memory access error — array out of bounds."},
	1: {"Configuration Error",
		"The solver rejected the XML parameters."},
	2: {"File Not Found",
		"A required input file is missing."},
}

// Classify returns the diagnosis for a signed process exit code. Unknown
// codes return a generic entry embedding the raw code; Classify never fails.
func Classify(code int) Diagnosis {
	if d, ok := table[code]; ok {
		return d
	}
	return Diagnosis{
		Name:        fmt.Sprintf("Unknown Error (code %d)", code),
		Description: "Unrecognised exit code.",
	}
}

// Known reports whether the code has a dedicated table entry.
func Known(code int) bool {
	_, ok := table[code]
	return ok
}

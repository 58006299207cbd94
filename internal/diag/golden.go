package diag

import (
	"fmt"
	"strings"
)

// FormatShortDiagnostics renders findings into a stable single-line-per-entry
// representation used by the CLI short output and by golden-style tests.
// Insertion order is kept; multi-line content is flattened.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range diags {
		fmt.Fprintf(&b, "%s %s %s %s",
			severityLabel(d.Severity), d.Code.ID(), d.Code.Category(), sanitizeMessage(d.Message))
		if includeNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(&b, "\nnote %s %s %s", d.Code.ID(), d.Code.Category(), sanitizeMessage(note))
			}
			if d.Fix != "" {
				fmt.Fprintf(&b, "\nfix %s %s %s", d.Code.ID(), d.Code.Category(), sanitizeMessage(d.Fix))
			}
		}
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}

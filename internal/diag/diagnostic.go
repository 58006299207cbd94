package diag

// Diagnostic is one immutable finding produced by a validator.
//
// Message is the single-sentence statement of the finding. Notes carry the
// supporting detail lines shown indented beneath it, and Fix carries the
// suggested remediation, when one exists.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Notes    []string
	Fix      string
}

func New(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
	}
}

func NewError(code Code, msg string) Diagnostic {
	return New(SevError, code, msg)
}

func NewWarning(code Code, msg string) Diagnostic {
	return New(SevWarning, code, msg)
}

func NewInfo(code Code, msg string) Diagnostic {
	return New(SevInfo, code, msg)
}

// WithNote returns a copy with one more detail line appended.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	notes := make([]string, 0, len(d.Notes)+1)
	notes = append(notes, d.Notes...)
	notes = append(notes, msg)
	d.Notes = notes
	return d
}

// WithFix returns a copy carrying the remediation suggestion.
func (d Diagnostic) WithFix(fix string) Diagnostic {
	d.Fix = fix
	return d
}

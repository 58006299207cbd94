package report

import (
	"encoding/json"
	"io"

	"complabdoctor/internal/diag"
)

// DiagnosticJSON представляет одну находку в JSON формате
type DiagnosticJSON struct {
	Severity string   `json:"severity"`
	Code     string   `json:"code"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Notes    []string `json:"notes,omitempty"`
	Fix      string   `json:"fix,omitempty"`
}

// CountsJSON represents per-severity totals over the whole bag, before any
// Max truncation.
type CountsJSON struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// Output представляет корневую структуру JSON вывода
type Output struct {
	ExitCode    int              `json:"exit_code"`
	ErrorType   string           `json:"error_type"`
	Reason      string           `json:"reason"`
	ConfigFile  string           `json:"config_file"`
	GeneratedAt string           `json:"generated_at"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Counts      CountsJSON       `json:"counts"`
}

// BuildOutput формирует структуру JSON-вывода без сериализации.
func BuildOutput(h Header, bag *diag.Bag, opts JSONOpts) Output {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Category: d.Code.Category(),
			Message:  d.Message,
			Fix:      d.Fix,
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			dj.Notes = append([]string(nil), d.Notes...)
		}
		diagnostics = append(diagnostics, dj)
	}

	return Output{
		ExitCode:    h.ExitCode,
		ErrorType:   h.Diagnosis.Name,
		Reason:      h.Diagnosis.Description,
		ConfigFile:  h.ConfigPath,
		GeneratedAt: h.generatedAt().Format("2006-01-02 15:04:05"),
		Diagnostics: diagnostics,
		Counts: CountsJSON{
			Errors:   len(bag.Errors()),
			Warnings: len(bag.Warnings()),
			Infos:    len(bag.Infos()),
		},
	}
}

// JSON форматирует отчёт в JSON формат.
func JSON(w io.Writer, h Header, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(h, bag, opts))
}

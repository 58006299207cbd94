package diag

// Reporter - минимальный контракт получения находок от проверок.
// Реализации: BagReporter (кладёт в Bag), NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter is the Reporter adapter that appends into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards everything; useful in tests of single checks.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// Error emits a SevError finding through r.
func Error(r Reporter, code Code, msg string) {
	if r == nil {
		return
	}
	r.Report(NewError(code, msg))
}

// Warning emits a SevWarning finding through r.
func Warning(r Reporter, code Code, msg string) {
	if r == nil {
		return
	}
	r.Report(NewWarning(code, msg))
}

// Info emits a SevInfo finding through r.
func Info(r Reporter, code Code, msg string) {
	if r == nil {
		return
	}
	r.Report(NewInfo(code, msg))
}

package diag

// Severity defines the confidence class of a finding.
type Severity uint8

const (
	// SevInfo is context for the reader, no corrective action implied.
	SevInfo Severity = iota
	// SevWarning is suspicious but not certainly fatal.
	SevWarning
	// SevError is a high-confidence misconfiguration or likely crash cause.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

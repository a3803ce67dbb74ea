package app

// Verdict is the outcome of one run.
type Verdict int

const (
	// VerdictAlive the expected text was found before attempts ran out.
	VerdictAlive Verdict = iota
	// VerdictDown every attempt failed; an alert was attempted.
	VerdictDown
	// VerdictAborted the run was interrupted before reaching a verdict.
	VerdictAborted
)

func (v Verdict) String() string {
	switch v {
	case VerdictAlive:
		return "alive"
	case VerdictDown:
		return "down"
	case VerdictAborted:
		return "aborted"
	}
	return "unknown"
}

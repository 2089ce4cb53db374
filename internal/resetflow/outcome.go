package resetflow

// Outcome is how a session ended. Every outcome exits the process with 0;
// only an error returned from Run is a failure of grh itself.
type Outcome int

const (
	// Done means the reset ran (the force push may still have failed).
	Done Outcome = iota
	// Cancelled means the user declined the confirmation or closed input.
	Cancelled
	// Failed means git reset itself failed.
	Failed
	// NoRepos means the scan found nothing.
	NoRepos
	// Aborted means git output needed to continue was unavailable.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	case NoRepos:
		return "no-repos"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

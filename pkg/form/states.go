package form

// State is the submission lifecycle of one form handler.
type State int

const (
	Idle State = iota
	Validating
	Rejected
	Submitting
	InlineComplete
	EmbeddedComplete
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Rejected:
		return "rejected"
	case Submitting:
		return "submitting"
	case InlineComplete:
		return "inline-complete"
	case EmbeddedComplete:
		return "embedded-complete"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Completed reports whether the state ends the session. Failed is not
// terminal: the user may resubmit.
func (s State) Completed() bool {
	return s == InlineComplete || s == EmbeddedComplete
}

// Form steps drive which step region of the page is visually active.
const (
	StepInput      = 1
	StepSubmitting = 2
	StepCompleted  = 3
)

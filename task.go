package sitrep

// State is a task's lifecycle state.
type State uint8

const (
	// Running is a task's initial state.
	Running State = iota
	// Paused indicates pause() was called on a pausable, running task.
	Paused
	// Finished indicates a task's work is complete.
	Finished
	// Canceled indicates cancel() was called on a cancelable task.
	Canceled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Task is the per-node user-visible record: label, unit counts,
// lifecycle state, and capability flags. Raw fields are writable by
// producers; the clamping invariants (effective_completed,
// effective_total) are applied only when a Report is synthesized.
type Task struct {
	Label        string
	Completed    uint64
	Total        uint64
	State        State
	IsCancelable bool
	IsPausable   bool
}

// NewTask returns a zero-value Task: no label, zero units (indeterminate),
// Running, and neither cancelable nor pausable. Use the fluent With*
// methods to build one up, mirroring the original crate's builder-style
// Task construction.
func NewTask() Task {
	return Task{}
}

// WithLabel returns a copy of t with Label set.
func (t Task) WithLabel(label string) Task {
	t.Label = label
	return t
}

// WithCompleted returns a copy of t with Completed set.
func (t Task) WithCompleted(completed uint64) Task {
	t.Completed = completed
	return t
}

// WithTotal returns a copy of t with Total set. A Total of zero means
// indeterminate progress.
func (t Task) WithTotal(total uint64) Task {
	t.Total = total
	return t
}

// Cancelable returns a copy of t marked cancelable.
func (t Task) Cancelable() Task {
	t.IsCancelable = true
	return t
}

// Pausable returns a copy of t marked pausable.
func (t Task) Pausable() Task {
	t.IsPausable = true
	return t
}

// effectiveDiscrete returns (min(completed, total), max(completed, total)),
// the clamped pair the report synthesizer projects from raw fields.
func (t Task) effectiveDiscrete() (completed, total uint64) {
	completed, total = t.Completed, t.Total
	if completed > total {
		return total, completed
	}
	return completed, total
}

// isIndeterminate reports whether the task has no known total.
func (t Task) isIndeterminate() bool {
	return t.Total == 0
}

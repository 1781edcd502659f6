package sitrep

// Reporter is the read-only reporting face of a progress node exposed
// to consumers (UI, CLI, RPC): full and delta report synthesis. *Node
// satisfies Reporter.
type Reporter interface {
	Report() *Report
	PartialReport(baseline Generation) (*Report, bool)
}

// Controller is the recursive-control face of a progress node exposed
// to consumers that need to pause, resume, cancel, or navigate a
// subtree by ID. *Node satisfies Controller.
type Controller interface {
	Get(id ID) (*Node, bool)
	IsCancelable() bool
	IsPausable() bool
	IsCanceled() bool
	IsPaused() bool
	Pause() error
	Resume() error
	Cancel() error
}

var (
	_ Reporter   = (*Node)(nil)
	_ Controller = (*Node)(nil)
)

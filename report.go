package sitrep

// Report is an immutable snapshot of one node and its subtree, produced
// by Report or PartialReport. The aggregates Completed and Total fold in
// contributions from the whole subtree even where Subreports omits a
// clean child; LastChange is the node's own last-change generation at
// snapshot time and is not aggregated.
type Report struct {
	ProgressID      ID
	Label           string
	Completed       uint64
	Total           uint64
	Fraction        float64
	IsIndeterminate bool
	State           State
	Subreports      []*Report
	LastChange      Generation
}

// satAdd adds a and b, saturating at the maximum uint64 value on
// overflow rather than wrapping.
func satAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

// fraction derives a report's Fraction field from its aggregate
// completed/total pair: 0 for (0, 0), 1 for a zero total with nonzero
// completed, else the ordinary ratio. Aggregates built from clamped
// effective values always have completed <= total, so reports never
// reach the second case.
func fraction(completed, total uint64) float64 {
	switch {
	case completed == 0 && total == 0:
		return 0
	case total == 0:
		return 1
	default:
		return float64(completed) / float64(total)
	}
}

func (n *Node) effectiveSnapshot() (completed, total uint64) {
	n.stateMu.RLock()
	defer n.stateMu.RUnlock()
	return n.task.effectiveDiscrete()
}

func (n *Node) selfSnapshot() (label string, completed, total uint64, state State) {
	n.stateMu.RLock()
	defer n.stateMu.RUnlock()
	completed, total = n.task.effectiveDiscrete()
	return n.task.Label, completed, total, n.task.State
}

// Report builds a full, depth-first report of n's subtree: every node
// visited appears as a Subreport, and Completed/Total are n's own
// effective values plus the saturating sum of its subreports' aggregates.
func (n *Node) Report() *Report {
	gen := n.lastChangeGen()
	label, completed, total, state := n.selfSnapshot()

	children := n.Children()
	subreports := make([]*Report, 0, len(children))
	for _, child := range children {
		sub := child.Report()
		subreports = append(subreports, sub)
		completed = satAdd(completed, sub.Completed)
		total = satAdd(total, sub.Total)
	}

	return &Report{
		ProgressID:      n.id,
		Label:           label,
		Completed:       completed,
		Total:           total,
		Fraction:        fraction(completed, total),
		IsIndeterminate: completed == 0 && total == 0,
		State:           state,
		Subreports:      subreports,
		LastChange:      gen,
	}
}

// PartialReport builds a delta report against baseline: a child subtree
// with nothing newer than baseline contributes its current effective
// values to the aggregate but is omitted from Subreports entirely, so
// the returned tree only ever touches nodes on the path to something
// that actually changed. Every child is still visited — under the
// shared tree-wide clock, a parent's own last_change is not restamped
// by a descendant's mutation, so skipping a child based on the parent's
// stamp alone would miss changes buried deeper in that child's subtree.
//
// Returns (nil, false) if nothing in n's subtree changed since baseline.
func (n *Node) PartialReport(baseline Generation) (*Report, bool) {
	gen := n.lastChangeGen()
	label, completed, total, state := n.selfSnapshot()

	var subreports []*Report
	for _, child := range n.Children() {
		if sub, ok := child.PartialReport(baseline); ok {
			subreports = append(subreports, sub)
			completed = satAdd(completed, sub.Completed)
			total = satAdd(total, sub.Total)
			continue
		}
		cc, ct := child.effectiveSnapshot()
		completed = satAdd(completed, cc)
		total = satAdd(total, ct)
	}

	if len(subreports) == 0 && gen <= baseline {
		return nil, false
	}

	return &Report{
		ProgressID:      n.id,
		Label:           label,
		Completed:       completed,
		Total:           total,
		Fraction:        fraction(completed, total),
		IsIndeterminate: completed == 0 && total == 0,
		State:           state,
		Subreports:      subreports,
		LastChange:      gen,
	}, true
}

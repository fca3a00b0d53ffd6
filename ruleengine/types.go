package ruleengine

// Rule is a pure, data-driven specification of one run-rule. Lower Id
// values take priority over higher ones when the overlap resolver must
// choose between two rules that both fire on the same index.
//
// A Rule is three function fields plus four integers rather than an
// interface implementation: the catalog is closed and small, callers
// pass Rule values (not pointers) through the pipeline, and there is no
// dynamic dispatch cost or boxing to worry about.
type Rule struct {
	// Id uniquely identifies the rule within a catalog. Lower wins ties.
	Id int

	// Window is the minimum number of consecutive samples required to
	// assert a first detection.
	Window int

	// ContinuationWindow is the number of samples preceding the candidate
	// extension point that are fed to IsContinued along with it. Zero
	// means the rule can never extend past its initial Window.
	ContinuationWindow int

	// OrientationWindow is the number of samples fed to Orientation when a
	// signal is first opened.
	OrientationWindow int

	// Detect reports whether the first Window samples constitute a signal.
	Detect func(window []float64, mean, stdev float64) bool

	// IsContinued reports whether the next sample extends an active
	// signal. trailing holds the ContinuationWindow preceding samples
	// concatenated with the candidate sample, so len(trailing) ==
	// ContinuationWindow+1; this is only ever called when
	// ContinuationWindow > 0.
	IsContinued func(trailing []float64, positive bool, signalLen int, mean, stdev float64) bool

	// Orientation assigns the positive/negative tag used to disambiguate
	// continuation under symmetric rules (run above/below mean, rising vs
	// falling trend, ...).
	Orientation func(window []float64, mean, stdev float64) bool
}

// Signal is a contiguous half-open index range [Start, End) on which Rule
// Id fired, tagged with the orientation assigned when the signal opened.
type Signal struct {
	RuleId   int
	Start    int
	End      int
	Positive bool
}

// Len returns End - Start, the number of indices the signal covers.
func (s Signal) Len() int {
	return s.End - s.Start
}

// Contains reports whether index i falls within [Start, End).
func (s Signal) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

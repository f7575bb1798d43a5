package localsearch

// Params configures the operator loop.
type Params struct {
	// BestImproving selects the strictly-best candidate move found during a
	// sweep rather than applying the first improving one encountered.
	// Default true: best-improving per client.
	BestImproving bool

	// Exhaustive keeps sweeping operator loops until a full pass yields no
	// improving move, rather than stopping after the first pass.
	Exhaustive bool
}

// DefaultParams returns best-improving, exhaustive search.
func DefaultParams() Params {
	return Params{BestImproving: true, Exhaustive: true}
}

// ExchangePairs is the fixed (p, q) family every Exchange call site must
// cover: p from 1 through 3 stops taken from one side and q from 0 through
// p from the other, nine combinations in all.
var ExchangePairs = [9][2]int{
	{1, 0}, {2, 0}, {3, 0},
	{1, 1}, {2, 1}, {3, 1},
	{2, 2}, {3, 2}, {3, 3},
}

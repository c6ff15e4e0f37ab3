// Package experiment runs the empirical studies built on top of the graph
// and cover packages:
//
//   - Connectivity:   P(random G(n, m) is connected) per edge count m.
//   - Approximations: mean approx1/2/3 ÷ MVC ratio per edge count m.
//   - NodeSweep:      the same ratios at 50% density for several node counts.
//   - Duality:        mean |MVC|, |MIS| and their sum per m; the sum must be n.
//   - WorstCase:      exhaustive approx1 ÷ MVC over every labelled graph on n nodes.
//
// Every driver takes a context (checked between samples) and a Config.
// All randomness flows from Config.Seed through one *rand.Rand, so a run is
// reproducible end to end. Results are plain row slices; WriteTable and
// WriteLaTeX render any of them.
//
// Aggregation uses gonum's stat and floats packages. Progress is reported
// through Config.Logger (log/slog); a nil Logger discards it.
package experiment

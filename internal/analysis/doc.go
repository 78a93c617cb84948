// Package analysis measures the accuracy of the integration methods.
//
//   - [MaxError]: largest deviation of a trajectory from a closed form
//   - [ObservedOrder]: empirical convergence order from repeated step halving
//   - [CompareMethods], [CompareModel]: one problem solved by many methods
//   - [DominantPeriod]: period of an oscillating trajectory from its spectrum
//
// A method of order p should show errors shrinking by 2^p per halving:
//
//	samples, p, err := analysis.ObservedOrder(ode.Classic4, f, exact, 0, 1, 1, []int{10, 20, 40})
package analysis

// Package ode provides the explicit Runge-Kutta stepping engine.
//
// Every supported scheme is described by a Butcher tableau and evaluated by
// one generic stage loop shared by all solvers:
//
//   - [Method]: closed enumeration of the ten explicit RK schemes
//   - [Tableau]: stage nodes, coupling coefficients and weights of a method
//   - [Solver1]: one scalar state, dy/dt = f(t, y)
//   - [Solver2]: two coupled scalar states
//   - [SolverN]: N coupled scalar states
//
// # Example
//
//	t := ode.Grid(0, 1, 1000)
//	y, err := ode.NewSolver1(ode.Classic4).Solve(func(_, y float64) float64 {
//	    return y
//	}, ode.StepSize(t), 1000, t, 1)
//
// # Coupling
//
// Coupled solvers default to [Staggered] ordering: the first variable is
// advanced through all of its stages with the others frozen, then the next
// variable is advanced using the already finalized values of the earlier
// ones. [Simultaneous] selects the textbook vector RK step instead.
//
// # Thread Safety
//
// Solvers are plain values without mutable state and may be shared between
// goroutines. Right-hand-side functions must be pure.
package ode

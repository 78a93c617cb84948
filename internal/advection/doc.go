// Package advection holds explicit finite-difference experiments for the
// material derivative: a 1D Burgers equation with optional viscosity and a
// coupled 2D velocity field advected by itself.
//
// Both schemes are first-order upwind and only conditionally stable; values
// are returned as computed so callers can inspect blow-up.
package advection

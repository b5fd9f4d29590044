// Package billiard implements the collision kernel of a 2D dynamical-billiards
// simulator: particles moving in straight lines or magnetic arcs through a set
// of obstacles, with specular, periodic, random, and ray-splitting collision
// resolution.
package billiard

import "math"

// Real is the floating-point type used throughout the kernel. Kept as a plain
// alias (not a generic type parameter) the way the teacher keeps `Real =
// float64`: the obstacle catalog, particle states, and billiard container are
// all built on one concrete width. Precision constants that the spec calls out
// as float-type-dependent (timeprec, timeprec_forward) are computed by helpers
// in precision.go from float64's epsilon, or fixed at 1e-12 when the caller
// asks for the extended-precision constants.
type Real = float64

// Vec2 is a 2D vector or point; which it represents depends on context.
type Vec2 struct {
	X, Y Real
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Mul(s Real) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) Real { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar (z-component) of the 2D cross product v × w.
func (v Vec2) Cross(w Vec2) Real { return v.X*w.Y - v.Y*w.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length copy of v. The zero vector is returned unchanged.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp rotates v by +π/2 (counter-clockwise quarter turn).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Rotate returns v rotated by angle radians (counter-clockwise).
func (v Vec2) Rotate(angle Real) Vec2 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Equals reports whether v and w are identical componentwise.
func (v Vec2) Equals(w Vec2) bool { return v.X == w.X && v.Y == w.Y }

// AngleOf returns atan2(v.Y, v.X).
func AngleOf(v Vec2) Real { return math.Atan2(v.Y, v.X) }

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

/*
 * vec.go, part of gopolymer.
 *
 * Copyright 2026 The gopolymer authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"
)

//Epsilon is the magnitude at or below which a vector or a divisor is
//considered zero. Coordinates are in meters, so it must stay far below
//molecular lengths (~1e-10).
const Epsilon float64 = 1e-300

//Vec is a point or a displacement in 3D space, in meters unless stated
//otherwise. It is a value type: no method modifies the receiver.
type Vec struct {
	X, Y, Z float64
}

//NewVec returns the vector with the given components.
func NewVec(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

//Add returns v+o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

//Sub returns v-o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

//Scale returns v multiplied by the scalar s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s, v.Z * s} }

//MulElem returns the element-wise product of v and o.
func (v Vec) MulElem(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

//Div returns v divided by the scalar s. It returns a DivideByZero
//error, and the unchanged receiver, if |s| <= Epsilon.
func (v Vec) Div(s float64) (Vec, error) {
	if math.Abs(s) <= Epsilon {
		return v, newError(DivideByZero, fmt.Sprintf("divisor %g", s), "Vec.Div")
	}
	return Vec{v.X / s, v.Y / s, v.Z / s}, nil
}

//Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

//Cross returns the cross product v×o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

//Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

//Norm2 returns the squared Euclidean norm of v.
func (v Vec) Norm2() float64 {
	return v.Dot(v)
}

//Zero returns true if the norm of v is not larger than Epsilon.
func (v Vec) Zero() bool {
	return v.Norm() <= Epsilon
}

//Unit returns a unit vector with the direction of v. The direction of a
//zero vector is undefined, so in that case v itself is returned.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n <= Epsilon {
		return v
	}
	return Vec{v.X / n, v.Y / n, v.Z / n}
}

//Distance returns the distance between the points v and o.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Norm()
}

//Midpoint returns the point halfway between v and o.
func (v Vec) Midpoint(o Vec) Vec {
	return Vec{
		X: v.X + 0.5*(o.X-v.X),
		Y: v.Y + 0.5*(o.Y-v.Y),
		Z: v.Z + 0.5*(o.Z-v.Z),
	}
}

//AngleXY returns the angle, in radians and in the [0, 2π) range, between v
//and the X axis, measured in the XY plane. It uses the full norm of v, not
//the norm of its projection, so the Z component shrinks the angle's cosine.
//The zero vector gives 0.
func (v Vec) AngleXY() float64 {
	n := v.Norm()
	if n <= Epsilon {
		return 0
	}
	a := math.Acos(clamp(v.X/n))
	if v.Y >= 0 {
		return a
	}
	//x/n == 1 with a tiny negative y would give 2π, which is 0.
	return math.Mod(2*math.Pi-a, 2*math.Pi)
}

//AngleXYDeg is AngleXY, in degrees.
func (v Vec) AngleXYDeg() float64 {
	return v.AngleXY() * 180 / math.Pi
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

//clamp takes care of floating point errors that would take a cosine out of [-1,1]
func clamp(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

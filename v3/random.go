/*
 * random.go, part of gopolymer.
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
	"strings"
)

//Rander is the source of random numbers for the functions in this file.
//*rand.Rand from golang.org/x/exp/rand (the source type used by gonum's
//distributions) and from math/rand satisfy it. A Rander is not expected to
//be safe for concurrent use, so each goroutine should own one.
type Rander interface {
	Float64() float64
	NormFloat64() float64
}

//Direction selects the method used to draw random unit vectors.
type Direction int

const (
	//Gaussian normalizes three independent standard normal draws. The
	//result is uniformly distributed on the unit sphere.
	Gaussian Direction = iota
	//Cube normalizes three uniform draws from [-0.5, 0.5). The result is
	//biased towards the corners of the cube. It is kept to reproduce
	//older results.
	Cube
)

func (d Direction) String() string {
	switch d {
	case Gaussian:
		return "gaussian"
	case Cube:
		return "cube"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

//ParseDirection returns the Direction named by s (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian", "normal", "":
		return Gaussian, nil
	case "cube", "uniform":
		return Cube, nil
	}
	return Gaussian, fmt.Errorf("gopolymer/v3: unknown direction method %q", s)
}

//maxRedraws bounds the redraws of a degenerate (zero) direction. Reaching it
//means the Rander is broken.
const maxRedraws = 1000

//RandUnit returns a random unit vector uniformly distributed on the sphere.
func RandUnit(r Rander) Vec {
	return randUnit(func() Vec {
		return Vec{r.NormFloat64(), r.NormFloat64(), r.NormFloat64()}
	})
}

//RandUnitCube returns a random unit vector obtained by normalizing a point
//drawn uniformly from the cube centered at the origin with side 1.
//The directions are not uniformly distributed on the sphere.
func RandUnitCube(r Rander) Vec {
	return randUnit(func() Vec {
		return Vec{r.Float64() - 0.5, r.Float64() - 0.5, r.Float64() - 0.5}
	})
}

func randUnit(draw func() Vec) Vec {
	for i := 0; i < maxRedraws; i++ {
		d := draw()
		if !d.Zero() {
			return d.Unit()
		}
	}
	panic(PanicMsg("gopolymer/v3: random source keeps producing zero vectors"))
}

//RandDir returns a random unit vector obtained with the method m.
func RandDir(r Rander, m Direction) Vec {
	if m == Cube {
		return RandUnitCube(r)
	}
	return RandUnit(r)
}

//RandOnSphere returns a random point on the sphere of the given radius
//centered at v.
func (v Vec) RandOnSphere(radius float64, r Rander, m Direction) Vec {
	return v.Add(RandDir(r, m).Scale(radius))
}

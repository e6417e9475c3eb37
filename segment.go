/*
 * segment.go, part of gopolymer.
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

package polymer

import v3 "github.com/rmera/gopolymer/v3"

//Segment is a repeat unit (mer) of a chain. Segments belong to the chain
//that created them and are never shared.
type Segment struct {
	Mass     float64 //g/mol (Daltons)
	Position v3.Vec  //m
}

//NewSegment returns a segment with the given mass, placed at the origin.
func NewSegment(mass float64) Segment {
	return Segment{Mass: mass}
}

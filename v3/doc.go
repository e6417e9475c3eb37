/*
 * doc.go, part of gopolymer.
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

/*Package v3 implements the 3D vector types used in gopolymer.

Vec is a value type for points and displacements in 3D space. All its
operations return new values. Scalar and vector operands use different
methods (Scale vs MulElem, Add), never the same one.

Matrix is a row-major Nx3 matrix based on gonum's (gonum.org/v1/gonum/mat)
Dense type. It is used to pass sets of coordinates to gonum.

The random direction functions take a Rander instead of using a global
source, so a simulation can own its generators and be reproduced from a seed.

*/
package v3

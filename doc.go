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

/*Package polymer implements the freely-jointed chain (FJC) model of a
macromolecule, and Monte Carlo ensembles of such chains.



	**gopolymer Capabilities**


    Generates chain conformations as random walks of segments with a fixed
	bond length and independent random bond directions (no excluded volume).

    Draws the degree of polymerization of each chain from a normal distribution
	around a target value (never less than 1).

    Computes, for each chain, the mass-weighted center of mass, the end-to-end
	distance, the radius of gyration, the gyration tensor and shape
	descriptors (asphericity, acylindricity, relative shape anisotropy).

    Aggregates ensembles: average center of mass, mean and standard deviation
	of the end-to-end distance and the radius of gyration, and the
	polydispersity index (variance over mean of the degree of polymerization).

    Generates the chains of an ensemble concurrently. Every chain owns a random
	generator seeded from the run's seed, so results can be reproduced.

    Histograms (package histo), plots (package polyplot) and JSON reports
	(package report) of the ensemble distributions.

Units are SI (meters) for lengths and g/mol for masses. No conversion or
formatting for display is done in this package.

*/
package polymer

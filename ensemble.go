/*
 * ensemble.go, part of gopolymer.
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

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

//Simulator generates ensembles of independent chains.
type Simulator struct {
	p *Params
}

//NewSimulator returns a simulator using a copy of p. A nil p means DefaultParams().
func NewSimulator(p *Params) (*Simulator, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "NewSimulator")
	}
	return &Simulator{p: p.Copy()}, nil
}

//Params returns a copy of the parameters of the simulator.
func (S *Simulator) Params() *Params {
	return S.p.Copy()
}

//Simulate generates count chains around the target degree of polymerization
//targetN and returns their statistics. It returns an InvalidParameters
//error if targetN or count are less than 1. If any chain fails, the whole
//ensemble fails.
//
//The run is seeded once, and each chain gets its own generator, seeded from
//the run's one in chain order. Results for a given seed do not depend on
//the number of workers.
func (S *Simulator) Simulate(targetN, count int) (*Stats, error) {
	chains, seed, err := S.chains(targetN, count, false)
	if err != nil {
		return nil, errDecorate(err, "Simulate")
	}
	stats, err := Aggregate(chains)
	if err != nil {
		return nil, errDecorate(err, "Simulate")
	}
	stats.Seed = seed
	S.p.logger().Infof("ensemble of %d chains (target DP %d): <Ree>=%.4g m, <Rg>=%.4g m, PDI=%.4g", count, targetN, stats.AvgEndToEnd, stats.AvgRadiusOfGyration, stats.PDI)
	return stats, nil
}

//Chains generates count chains as Simulate does, and returns them.
func (S *Simulator) Chains(targetN, count int) ([]*Chain, error) {
	chains, _, err := S.chains(targetN, count, true)
	if err != nil {
		return nil, errDecorate(err, "Chains")
	}
	return chains, nil
}

//chains generates count chains. Unless keep is true, the segments of each
//chain are released as soon as its descriptors are computed, so only the
//chains being generated hold their geometries.
func (S *Simulator) chains(targetN, count int, keep bool) ([]*Chain, uint64, error) {
	if targetN < 1 || count < 1 {
		return nil, 0, newCError(InvalidParameters, fmt.Sprintf("target degree of polymerization (%d) and number of molecules (%d) must be at least 1", targetN, count), "chains")
	}
	log := S.p.logger()
	seed := S.p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		log.Debugf("no seed given, using %d", seed)
	}
	master := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}
	chains := make([]*Chain, count)
	errs := make([]error, count)
	workers := S.p.workers()
	if workers > count {
		workers = count
	}
	log.Debugf("generating %d chains with %d workers", count, workers)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				chains[i], errs[i] = S.chain(targetN, seeds[i])
				if !keep && chains[i] != nil {
					chains[i].release()
				}
			}
		}()
	}
	for i := 0; i < count; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			log.Errorf("chain %d failed: %v", i, err)
			return nil, seed, errDecorate(err, fmt.Sprintf("chains: chain %d", i))
		}
	}
	return chains, seed, nil
}

func (S *Simulator) chain(targetN int, seed uint64) (*Chain, error) {
	C, err := NewChain(targetN, S.p, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	if err := C.Generate(); err != nil {
		return nil, err
	}
	return C, nil
}

//Simulate runs a simulation with the default parameters, seeded from the clock.
func Simulate(targetN, count int) (*Stats, error) {
	S, err := NewSimulator(DefaultParams())
	if err != nil {
		return nil, err
	}
	return S.Simulate(targetN, count)
}

// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

// Phase is the state of one fixed-point iteration's convergence arbiter:
// Converging while the bound has not been reached and the last reduced
// flag was true, Converged once the reduced flag is false, Failed once the
// iteration bound is reached while still repeating.
type Phase int

const (
	Converging Phase = iota
	Converged
	Failed
)

// Arbiter combines every node's local "not yet converged" flag into a
// global decision via Reducer, and bounds the number of times it may say
// "keep going". It is the sole cross-node synchronization point inside
// each iteration beyond the halo exchanges.
type Arbiter struct {
	Reduce Reducer
	Max    int
	count  int
}

// NewArbiter returns an Arbiter bounded at max iterations.
func NewArbiter(r Reducer, max int) *Arbiter {
	return &Arbiter{Reduce: r, Max: max}
}

// Step submits this node's local repeat flag for one iteration and returns
// the resulting phase.
func (a *Arbiter) Step(localRepeat bool) (Phase, error) {
	repeat, err := a.Reduce.ORReduceBroadcast(localRepeat)
	if err != nil {
		return Converging, err
	}
	a.count++
	if !repeat {
		return Converged, nil
	}
	if a.count >= a.Max {
		return Failed, nil
	}
	return Converging, nil
}

// Iterations returns the number of Step calls made so far.
func (a *Arbiter) Iterations() int {
	return a.count
}

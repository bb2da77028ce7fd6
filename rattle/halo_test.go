// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import (
	"testing"

	"github.com/cpmech/gofem/particle"
)

// countingHalo wraps a local.Transport-equivalent no-op pair, counting how
// many times each collective is invoked.
type countingHalo struct {
	collectCalls, updateCalls int
}

func (h *countingHalo) CollectGhostForce() error    { h.collectCalls++; return nil }
func (h *countingHalo) UpdateGhostPositions() error { h.updateCalls++; return nil }

type countingReducer struct{}

func (countingReducer) ORReduceBroadcast(local bool) (bool, error) { return local, nil }

// Every node must enter the halo collectives the same number of times per
// phase, once per iteration — including UpdateGhostPositions in the
// velocity phase, where positions do not actually change, because every
// rank must still agree on how many times the collective runs.
func TestHaloSequencing(tst *testing.T) {
	a := &particle.Particle{Identity: 1, Mass: 1, P: particle.Vec3{0, 0, 0}, POld: particle.Vec3{0, 0, 0}, BL: []int{0, 2}}
	b := &particle.Particle{Identity: 2, Mass: 1, P: particle.Vec3{1, 0, 0}, POld: particle.Vec3{1, 0, 0}}

	reg := particle.Registry{
		{Kind: particle.RigidBond, Arity: 1, Params: particle.RigidBondParams{D2: 1.0, PTol: 1e-6, VTol: 1e-6}},
	}

	cells := countingCells{a, b}
	lookup := countingLookup{1: a, 2: b}
	halo := &countingHalo{}

	cfg := Config{Enabled: true, MassEnabled: true}
	cfg.SetDefault()

	s := &Solver{
		Cfg: cfg, Registry: reg, Cells: cells, Lookup: lookup, Geom: identityGeometry{},
		Halo: halo, Reduce: countingReducer{},
	}

	if err := s.CorrectPositions(); err != nil {
		tst.Fatalf("position correction should converge: %v", err)
	}
	positionIters := halo.collectCalls
	if positionIters == 0 {
		tst.Fatalf("expected at least one iteration")
	}
	if halo.updateCalls != positionIters {
		tst.Fatalf("position phase: CollectGhostForce called %d times but UpdateGhostPositions %d times", positionIters, halo.updateCalls)
	}

	halo.collectCalls, halo.updateCalls = 0, 0
	if err := s.CorrectVelocities(); err != nil {
		tst.Fatalf("velocity correction should converge: %v", err)
	}
	velocityIters := halo.collectCalls
	if halo.updateCalls != velocityIters {
		tst.Fatalf("velocity phase: CollectGhostForce called %d times but UpdateGhostPositions %d times", velocityIters, halo.updateCalls)
	}
}

type countingCells []*particle.Particle

func (c countingCells) LocalParticles() []*particle.Particle { return c }
func (c countingCells) GhostParticles() []*particle.Particle { return nil }

type countingLookup map[int]*particle.Particle

func (l countingLookup) Find(id int) *particle.Particle { return l[id] }

type identityGeometry struct{}

func (identityGeometry) MinimumImage(a, b particle.Vec3) particle.Vec3 { return a.Sub(b) }

// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import (
	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gofem/topology"
	"github.com/cpmech/gofem/transport/local"
)

// dumbbell builds a two-particle, one-rigid-bond system and a Solver ready
// to drive it, using the single-process local transport so the solver can
// be exercised without standing up MPI.
func dumbbell(pOld1, pOld2, p1, p2, v1, v2 particle.Vec3, d2, ptol, vtol float64, maxit int) (*Solver, *particle.Particle, *particle.Particle) {
	reg := particle.Registry{
		{Kind: particle.RigidBond, Arity: 1, Params: particle.RigidBondParams{D2: d2, PTol: ptol, VTol: vtol}},
	}

	// The bond is stored once, on particle a only — a bond is traversed
	// only from its local endpoint, never from both sides.
	a := &particle.Particle{Identity: 1, Mass: 1, P: p1, POld: pOld1, V: v1, BL: []int{0, 2}}
	b := &particle.Particle{Identity: 2, Mass: 1, P: p2, POld: pOld2, V: v2}

	sys := topology.NewSystem(topology.NewConstBox(0, 0, 0))
	sys.AddLocal(a)
	sys.AddLocal(b)

	cfg := Config{Enabled: true, MassEnabled: true, MaxIterations: maxit}
	cfg.SetDefault()

	transport := new(local.Transport)
	s := &Solver{
		Cfg:      cfg,
		Registry: reg,
		Cells:    sys,
		Lookup:   sys,
		Geom:     sys,
		Halo:     transport,
		Reduce:   transport,
		Verlet:   transport,
	}
	return s, a, b
}

// fakeErrorSink is an ErrorSink test double: it records every error posted
// to it instead of notifying any other node.
type fakeErrorSink struct {
	errs []error
}

func (s *fakeErrorSink) Post(err error) {
	s.errs = append(s.errs, err)
}

// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import (
	"math"

	"github.com/cpmech/gofem/particle"
)

// CorrectVelocities runs RATTLE phase II to convergence: every local
// particle's velocity is corrected so that the relative velocity of each
// rigid pair has no component along the bond. f is stashed into p_old for
// the duration of the call (p_old is dead data once phase I has run for
// this step) and restored on every exit path — including the
// non-convergence and broken-bond paths, which is why the restore lives
// in a defer rather than at the single success return.
func (s *Solver) CorrectVelocities() (err error) {
	if !s.Cfg.Enabled {
		return nil
	}

	s.stashForceIntoPOld()
	defer s.restoreForce()

	arbiter := NewArbiter(s.Reduce, s.Cfg.MaxIterations)
	for {
		s.zeroForces()

		if broken := s.accumulateVelocityCorrections(); broken != nil {
			return s.post(broken)
		}

		if e := s.Halo.CollectGhostForce(); e != nil {
			return s.post(e)
		}

		s.applyVelocityCorrections()

		// Positions are unchanged in this phase, but this exchange is still
		// issued every iteration to keep the halo contract symmetric with
		// the position-correction loop in CorrectPositions.
		if e := s.Halo.UpdateGhostPositions(); e != nil {
			return s.post(e)
		}

		repeatLocal, broken := s.checkVelocityTolerance()
		if broken != nil {
			return s.post(broken)
		}

		phase, e := arbiter.Step(repeatLocal)
		if e != nil {
			return s.post(e)
		}
		switch phase {
		case Converged:
			return nil
		case Failed:
			return s.post(&NonConvergenceError{Phase: "velocity", Iterations: arbiter.Iterations()})
		}
	}
}

// stashForceIntoPOld borrows p_old as scratch storage for whatever force f
// holds on entry to phase II, freeing f to serve as phase II's own
// correction buffer.
func (s *Solver) stashForceIntoPOld() {
	for _, p := range s.Cells.LocalParticles() {
		p.POld = p.F
		p.F = particle.Vec3{}
	}
	for _, p := range s.Cells.GhostParticles() {
		p.POld = p.F
		p.F = particle.Vec3{}
	}
}

// restoreForce undoes stashForceIntoPOld, putting the stashed force back in f.
func (s *Solver) restoreForce() {
	for _, p := range s.Cells.LocalParticles() {
		p.F = p.POld
	}
	for _, p := range s.Cells.GhostParticles() {
		p.F = p.POld
	}
}

// accumulateVelocityCorrections computes the first-order RATTLE velocity
// multiplier, projecting out the relative-velocity component along each
// rigid bond.
func (s *Solver) accumulateVelocityCorrections() error {
	for _, p1 := range s.Cells.LocalParticles() {
		var broken error
		particle.Walk(p1.BL, s.Registry, func(b particle.Bond) bool {
			p2 := s.Lookup.Find(b.PartnerID)
			if p2 == nil {
				broken = &BrokenRigidBondError{ParticleID: p1.Identity, PartnerID: b.PartnerID}
				return false
			}

			v := p1.V.Sub(p2.V)
			r := s.Geom.MinimumImage(p1.P, p2.P)

			m1 := p1.EffMass(s.Cfg.MassEnabled)
			m2 := p2.EffMass(s.Cfg.MassEnabled)
			massSum := m1 + m2
			if !s.Cfg.MassEnabled {
				massSum = 2
			}

			k := v.Dot(r) / b.Rigid.D2 / massSum

			p1.F = p1.F.Sub(r.Scale(k * m2))
			p2.F = p2.F.Add(r.Scale(k * m1))
			return true
		})
		if broken != nil {
			return broken
		}
	}
	return nil
}

// applyVelocityCorrections adds the accumulated correction into v; unlike
// position correction, p is left untouched.
func (s *Solver) applyVelocityCorrections() {
	for _, p := range s.Cells.LocalParticles() {
		p.V = p.V.Add(p.F)
	}
}

// checkVelocityTolerance reports whether any local rigid pair still has a
// relative velocity component along its bond exceeding VTol.
func (s *Solver) checkVelocityTolerance() (repeat bool, broken error) {
	for _, p1 := range s.Cells.LocalParticles() {
		particle.Walk(p1.BL, s.Registry, func(b particle.Bond) bool {
			p2 := s.Lookup.Find(b.PartnerID)
			if p2 == nil {
				broken = &BrokenRigidBondError{ParticleID: p1.Identity, PartnerID: b.PartnerID}
				return false
			}
			v := p1.V.Sub(p2.V)
			r := s.Geom.MinimumImage(p1.P, p2.P)
			if math.Abs(v.Dot(r)) > b.Rigid.VTol {
				repeat = true
			}
			return true
		})
		if broken != nil {
			return
		}
	}
	return
}

// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import (
	"math"

	"github.com/cpmech/gofem/particle"
)

// CorrectPositions runs RATTLE phase I to convergence: every local particle
// ends with p, v updated by the position-constraint correction, and f
// holding the last iteration's correction (not a real force) until the
// next force evaluation overwrites it. Returns a *NonConvergenceError if
// Cfg.MaxIterations is exhausted, or a *BrokenRigidBondError if a bond
// partner resolves to neither a local nor a ghost particle on this node.
func (s *Solver) CorrectPositions() error {
	if !s.Cfg.Enabled {
		return nil
	}

	arbiter := NewArbiter(s.Reduce, s.Cfg.MaxIterations)
	for {
		if err := s.zeroForces(); err != nil {
			return s.post(err)
		}

		broken := s.accumulatePositionCorrections()
		if broken != nil {
			return s.post(broken)
		}

		if err := s.Halo.CollectGhostForce(); err != nil {
			return s.post(err)
		}

		rebuild := s.applyPositionCorrections()

		if err := s.Halo.UpdateGhostPositions(); err != nil {
			return s.post(err)
		}

		repeatLocal, broken := s.checkPositionTolerance()
		if broken != nil {
			return s.post(broken)
		}

		if s.Verlet != nil {
			s.Verlet.SetRebuild(rebuild)
		}

		phase, err := arbiter.Step(repeatLocal)
		if err != nil {
			return s.post(err)
		}
		switch phase {
		case Converged:
			if s.Verlet != nil {
				if err := s.Verlet.AnnounceRebuildVerletList(); err != nil {
					return s.post(err)
				}
			}
			return nil
		case Failed:
			return s.post(&NonConvergenceError{Phase: "position", Iterations: arbiter.Iterations()})
		}
	}
}

// zeroForces sets f to zero on every local and ghost particle — the
// correction buffer that step 2 accumulates into.
func (s *Solver) zeroForces() error {
	for _, p := range s.Cells.LocalParticles() {
		p.F = particle.Vec3{}
	}
	for _, p := range s.Cells.GhostParticles() {
		p.F = particle.Vec3{}
	}
	return nil
}

// accumulatePositionCorrections computes the first-order RATTLE position
// multiplier, linearizing |r|² = d2 around r_t.
func (s *Solver) accumulatePositionCorrections() error {
	for _, p1 := range s.Cells.LocalParticles() {
		var broken error
		particle.Walk(p1.BL, s.Registry, func(b particle.Bond) bool {
			p2 := s.Lookup.Find(b.PartnerID)
			if p2 == nil {
				broken = &BrokenRigidBondError{ParticleID: p1.Identity, PartnerID: b.PartnerID}
				return false
			}

			rt := s.Geom.MinimumImage(p1.POld, p2.POld)
			r := s.Geom.MinimumImage(p1.P, p2.P)

			denom := rt.Dot(r)
			if denom == 0 {
				broken = &BrokenRigidBondError{ParticleID: p1.Identity, PartnerID: b.PartnerID}
				return false
			}

			m1 := p1.EffMass(s.Cfg.MassEnabled)
			m2 := p2.EffMass(s.Cfg.MassEnabled)
			massSum := m1 + m2
			if !s.Cfg.MassEnabled {
				massSum = 2
			}

			g := 0.5 * (b.Rigid.D2 - r.Len2()) / denom / massSum

			p1.F = p1.F.Add(rt.Scale(g * m2))
			p2.F = p2.F.Sub(rt.Scale(g * m1))
			return true
		})
		if broken != nil {
			return broken
		}
	}
	return nil
}

// applyPositionCorrections applies the accumulated correction to position
// and velocity, and reports whether any local particle crossed the Verlet
// skin threshold.
func (s *Solver) applyPositionCorrections() (rebuild bool) {
	skin2 := (s.Cfg.Skin / 2) * (s.Cfg.Skin / 2)
	for _, p := range s.Cells.LocalParticles() {
		p.P = p.P.Add(p.F)
		p.V = p.V.Add(p.F)
		if p.P.Sub(p.LPOld).Len2() > skin2 {
			rebuild = true
		}
	}
	return rebuild
}

// checkPositionTolerance reports whether any local rigid pair still has a
// relative position-constraint residual exceeding PTol.
func (s *Solver) checkPositionTolerance() (repeat bool, broken error) {
	for _, p1 := range s.Cells.LocalParticles() {
		particle.Walk(p1.BL, s.Registry, func(b particle.Bond) bool {
			p2 := s.Lookup.Find(b.PartnerID)
			if p2 == nil {
				broken = &BrokenRigidBondError{ParticleID: p1.Identity, PartnerID: b.PartnerID}
				return false
			}
			r := s.Geom.MinimumImage(p1.P, p2.P)
			tol := math.Abs(0.5 * (b.Rigid.D2 - r.Len2()) / b.Rigid.D2)
			if tol > b.Rigid.PTol {
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

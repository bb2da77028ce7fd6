// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topology

import (
	"github.com/cpmech/gofem/particle"
)

// Cell is one collaborator-owned partition of particles; real molecular
// dynamics codes group particles by spatial bucket for neighbor search, but
// the solver never looks inside a Cell's grouping, only at its members.
type Cell struct {
	Parts []*particle.Particle
}

// System is the default, single- or multi-process in-memory collaborator:
// it owns particle storage and answers the solver's read interfaces (cell
// enumeration, particle lookup, minimum-image geometry); the solver walks
// bonds with its own particle.Registry, not the one held here. It is deliberately dumb about partitioning —
// callers build LocalCells/GhostCells and Lookup themselves (e.g. from a
// real domain-decomposition library); System only serves them back to the
// solver in the shape it expects.
type System struct {
	LocalCells []Cell
	GhostCells []Cell
	Lookup     map[int]*particle.Particle // id -> local or ghost particle
	Registry   particle.Registry
	Box        *Box
}

// NewSystem builds an empty System over the given box.
func NewSystem(box *Box) *System {
	return &System{Lookup: make(map[int]*particle.Particle), Box: box}
}

// AddLocal registers p as a locally-owned particle in a single local cell
// (tests and small examples do not need more than one cell per rank).
func (s *System) AddLocal(p *particle.Particle) {
	if len(s.LocalCells) == 0 {
		s.LocalCells = append(s.LocalCells, Cell{})
	}
	s.LocalCells[0].Parts = append(s.LocalCells[0].Parts, p)
	s.Lookup[p.Identity] = p
}

// AddGhost registers p as a ghost mirror of a remote owner.
func (s *System) AddGhost(p *particle.Particle) {
	p.Ghost = true
	if len(s.GhostCells) == 0 {
		s.GhostCells = append(s.GhostCells, Cell{})
	}
	s.GhostCells[0].Parts = append(s.GhostCells[0].Parts, p)
	s.Lookup[p.Identity] = p
}

// AllLocal returns every locally-owned particle, flattened across cells.
func (s *System) AllLocal() []*particle.Particle {
	var out []*particle.Particle
	for _, c := range s.LocalCells {
		out = append(out, c.Parts...)
	}
	return out
}

// AllGhost returns every ghost particle, flattened across cells.
func (s *System) AllGhost() []*particle.Particle {
	var out []*particle.Particle
	for _, c := range s.GhostCells {
		out = append(out, c.Parts...)
	}
	return out
}

// LocalParticles implements rattle.CellProvider.
func (s *System) LocalParticles() []*particle.Particle { return s.AllLocal() }

// GhostParticles implements rattle.CellProvider.
func (s *System) GhostParticles() []*particle.Particle { return s.AllGhost() }

// MinimumImage implements rattle.Geometry by delegating to the System's Box.
func (s *System) MinimumImage(a, b particle.Vec3) particle.Vec3 {
	return s.Box.MinimumImage(a, b)
}

// Find resolves id to a local or ghost particle, or nil if this node holds
// neither — the rigid-bond-broken condition.
func (s *System) Find(id int) *particle.Particle {
	return s.Lookup[id]
}

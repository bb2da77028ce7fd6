// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package local implements the collaborator collective interfaces for a
// single process: every collective is the identity, since a lone node has
// no peers to reduce against and no ghosts to reconcile. It is also the
// stub the rattle package's own tests drive.
package local

import "github.com/cpmech/gofem/particle"

// Transport is a no-op collaborator for a run with exactly one node: there
// are no ghosts to reconcile and no peers to reduce against.
type Transport struct {
	rebuild bool
}

// CollectGhostForce is a no-op: a single process owns every particle, so
// there is nothing to sum in from ghosts.
func (t *Transport) CollectGhostForce() error { return nil }

// UpdateGhostPositions is a no-op for the same reason.
func (t *Transport) UpdateGhostPositions() error { return nil }

// ORReduceBroadcast returns local unchanged: with one node, the "reduction"
// is the identity.
func (t *Transport) ORReduceBroadcast(local bool) (bool, error) { return local, nil }

// SetRebuild records the only node's Verlet-skin-breach flag.
func (t *Transport) SetRebuild(rebuild bool) { t.rebuild = rebuild }

// AnnounceRebuildVerletList is a no-op collective of one.
func (t *Transport) AnnounceRebuildVerletList() error { return nil }

// Rebuild reports the last recorded Verlet rebuild decision.
func (t *Transport) Rebuild() bool { return t.rebuild }

// GhostlessLocalCells adapts a flat particle slice (no ghosts at all) into
// the rattle.CellProvider interface — the shape a single-node, single-cell
// simulation naturally has.
type GhostlessLocalCells []*particle.Particle

// LocalParticles returns every particle in the slice.
func (c GhostlessLocalCells) LocalParticles() []*particle.Particle { return c }

// GhostParticles is always empty: there is no other node to mirror.
func (c GhostlessLocalCells) GhostParticles() []*particle.Particle { return nil }

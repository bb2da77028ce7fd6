// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rattle implements the distributed RATTLE constraint solver: the
// position-correction and velocity-correction fixed-point iterations that
// force rigid particle pairs back onto their bond-length constraint after
// an unconstrained integrator move. It consumes, rather than defines, the
// surrounding MD machinery through the interfaces below — particle
// storage, halo exchange and MPI collectives are an external
// collaborator's responsibility.
package rattle

import "github.com/cpmech/gofem/particle"

// CellProvider enumerates the local and ghost particles owned by this
// node: every bond is traversed only from a local particle, and the
// partner may resolve to either set.
type CellProvider interface {
	LocalParticles() []*particle.Particle
	GhostParticles() []*particle.Particle
}

// Lookup resolves a bond partner id to a particle, local or ghost. A nil
// result is the rigid-bond-broken condition.
type Lookup interface {
	Find(id int) *particle.Particle
}

// Geometry produces the minimum-image displacement from b to a under
// whatever periodicity the collaborator enforces.
type Geometry interface {
	MinimumImage(a, b particle.Vec3) particle.Vec3
}

// HaloExchanger performs the two collective operations the solver needs
// once per iteration. CollectGhostForce sums each ghost's accumulated
// correction into its owner's copy and must zero the ghost copy afterwards
// (so that a second accumulation pass never double-counts).
// UpdateGhostPositions copies each owner's current position into every
// mirroring ghost.
type HaloExchanger interface {
	CollectGhostForce() error
	UpdateGhostPositions() error
}

// Reducer performs the solver's single cross-node synchronization point:
// logical-OR the local flag across every node and return the same reduced
// value to all of them.
type Reducer interface {
	ORReduceBroadcast(local bool) (bool, error)
}

// VerletHook lets the solver report, after every position-correction
// iteration, whether any local particle crossed the Verlet skin threshold,
// and, once the position phase converges, collectively announce the OR of
// every node's flag. The velocity phase does not use it.
type VerletHook interface {
	SetRebuild(rebuild bool)
	AnnounceRebuildVerletList() error
}

// ErrorSink is the solver's runtime-error channel. Errors are always also
// returned as Go error values; Post additionally notifies a process-wide
// sink so that every node learns about a failure that occurred on only one
// of them, before any node attempts the next collective call.
type ErrorSink interface {
	Post(err error)
}

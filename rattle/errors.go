// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import "github.com/cpmech/gosl/utl"

// BrokenRigidBondError reports that a rigid-bond partner id could not be
// resolved to a local or ghost particle. The offending phase returns
// immediately without completing its pass.
type BrokenRigidBondError struct {
	ParticleID int
	PartnerID  int
}

func (e *BrokenRigidBondError) Error() string {
	return utl.Sf("rigid bond broken between particles %d and %d (partner not stored on this node)", e.ParticleID, e.PartnerID)
}

// NonConvergenceError reports that a phase exhausted MaxIterations. A
// position-phase failure is typically posted while the caller continues;
// a velocity-phase failure is typically treated as fatal, but both are
// reported identically here and it is the caller's decision what to do
// with either one.
type NonConvergenceError struct {
	Phase      string // "position" or "velocity"
	Iterations int
}

func (e *NonConvergenceError) Error() string {
	return utl.Sf("RATTLE %s correction failed to converge after %d iterations", e.Phase, e.Iterations)
}

// Stop decides whether a distributed run should halt, agreeing across every
// node before any of them acts on only its own local error. A caller
// driving a multi-rank run should wrap every collective-adjacent step with
// Stop so that one rank's failure is never acted upon (e.g. by skipping
// the next halo call) while its peers still expect to participate in it.
func Stop(reduce Reducer, err error) bool {
	stop, rerr := reduce.ORReduceBroadcast(err != nil)
	if rerr != nil {
		return true
	}
	return stop
}

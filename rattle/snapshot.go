// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

// SnapshotOldPositions copies p -> p_old for every local and ghost
// particle. It must be called once per MD step, before the unconstrained
// integrator move, while ghosts still mirror their owners' current p. No
// synchronization is performed here: the halo exchange that keeps ghosts
// current is the caller's responsibility between steps.
func (s *Solver) SnapshotOldPositions() {
	if !s.Cfg.Enabled {
		return
	}
	for _, p := range s.Cells.LocalParticles() {
		p.POld = p.P
	}
	for _, p := range s.Cells.GhostParticles() {
		p.POld = p.P
	}
}

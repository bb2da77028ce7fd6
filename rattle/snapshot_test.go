// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import (
	"testing"

	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Taking a snapshot twice in a row is idempotent: the second call only
// re-copies the (now identical) current position.
func TestSnapshotOldPositionsIdempotent(tst *testing.T) {
	utl.TTitle("snapshot idempotence")

	s, a, b := dumbbell(
		particle.Vec3{}, particle.Vec3{},
		particle.Vec3{-0.1, 0, 0}, particle.Vec3{1.1, 0, 0},
		particle.Vec3{}, particle.Vec3{},
		1.0, 1e-6, 1e-6, 500,
	)

	s.SnapshotOldPositions()
	firstOld1, firstOld2 := a.POld, b.POld

	s.SnapshotOldPositions()
	chk.Vector(tst, "p1.p_old unchanged", 1e-15, a.POld[:], firstOld1[:])
	chk.Vector(tst, "p2.p_old unchanged", 1e-15, b.POld[:], firstOld2[:])
	chk.Vector(tst, "p1.p_old == p1.p", 1e-15, a.POld[:], a.P[:])
	chk.Vector(tst, "p2.p_old == p2.p", 1e-15, b.POld[:], b.P[:])
}

// A disabled solver never touches particle state.
func TestSnapshotOldPositionsDisabled(tst *testing.T) {
	utl.TTitle("snapshot disabled")

	s, a, _ := dumbbell(
		particle.Vec3{9, 9, 9}, particle.Vec3{},
		particle.Vec3{-0.1, 0, 0}, particle.Vec3{1.1, 0, 0},
		particle.Vec3{}, particle.Vec3{},
		1.0, 1e-6, 1e-6, 500,
	)
	s.Cfg.Enabled = false

	s.SnapshotOldPositions()
	chk.Vector(tst, "p1.p_old untouched", 1e-15, a.POld[:], []float64{9, 9, 9})
}

// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topology_test

import (
	"testing"

	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gofem/topology"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// A displacement spanning more than half the box length wraps to the
// shorter image on the other side.
func TestMinimumImageWrapsAcrossPeriodicBoundary(tst *testing.T) {
	utl.TTitle("minimum image wrap")

	box := topology.NewConstBox(10, 10, 10)
	d := box.MinimumImage(particle.Vec3{9, 9, 9}, particle.Vec3{0, 0, 0})
	chk.Vector(tst, "wrapped displacement", 1e-15, d[:], []float64{-1, -1, -1})
}

// A non-periodic axis (length <= 0) is never wrapped.
func TestMinimumImageNonPeriodicAxisUnwrapped(tst *testing.T) {
	utl.TTitle("minimum image non-periodic axis")

	box := topology.NewConstBox(10, 0, 0)
	d := box.MinimumImage(particle.Vec3{9, 9, 9}, particle.Vec3{0, 0, 0})
	chk.Vector(tst, "mixed wrap", 1e-15, d[:], []float64{-1, 9, 9})
}

// rampFunc is a fun.Func whose value grows linearly with time, standing in
// for a barostat driving one box length (an NPT-style breathing box).
type rampFunc struct {
	rate float64
}

func (r rampFunc) F(t float64, x []float64) float64      { return r.rate * t }
func (r rampFunc) G(t float64, x []float64) float64      { return r.rate }
func (r rampFunc) H(t float64, x []float64) float64      { return 0 }
func (r rampFunc) Grad(t float64, x []float64) []float64 { return nil }

// A box driven by a time-varying fun.Func wraps differently at different
// simulation times, once SetTime advances it — the minimum-image routine
// evaluates each length function fresh on every call rather than caching a
// length at construction time.
func TestBoxBreathesWithTime(tst *testing.T) {
	utl.TTitle("breathing box")

	box := &topology.Box{Lx: rampFunc{rate: 10}, Ly: &fun.Cte{C: 0}, Lz: &fun.Cte{C: 0}}

	box.SetTime(0)
	d0 := box.MinimumImage(particle.Vec3{9, 0, 0}, particle.Vec3{0, 0, 0})
	chk.Scalar(tst, "d0.x at t=0 (Lx=0, non-periodic)", 1e-15, d0[0], 9)

	box.SetTime(1)
	d1 := box.MinimumImage(particle.Vec3{9, 0, 0}, particle.Vec3{0, 0, 0})
	chk.Scalar(tst, "d1.x at t=1 (Lx=10)", 1e-15, d1[0], -1)
}

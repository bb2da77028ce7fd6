// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topology provides the default, in-process implementation of the
// collaborator interfaces that package rattle consumes: cell enumeration,
// particle lookup and minimum-image geometry.
package topology

import (
	"math"

	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gosl/fun"
)

// Box is a rectangular periodic box. Lengths may vary in time (e.g. an NPT
// barostat breathing the box) by supplying a fun.Func per axis instead of a
// constant; a constant box uses fun.Cte.
type Box struct {
	Lx, Ly, Lz fun.Func // box lengths along each axis, as functions of time
	t          float64  // current simulation time, set by SetTime
}

// NewConstBox returns a Box with fixed lengths lx,ly,lz. Lengths <= 0 along
// an axis mean that axis is not periodic.
func NewConstBox(lx, ly, lz float64) *Box {
	return &Box{
		Lx: &fun.Cte{C: lx},
		Ly: &fun.Cte{C: ly},
		Lz: &fun.Cte{C: lz},
	}
}

// SetTime updates the time at which the box lengths are evaluated; the
// integrator calls this once per step before the solver runs.
func (box *Box) SetTime(t float64) {
	box.t = t
}

// lengths evaluates the three box lengths at the box's current time.
func (b *Box) lengths() particle.Vec3 {
	return particle.Vec3{b.Lx.F(b.t, nil), b.Ly.F(b.t, nil), b.Lz.F(b.t, nil)}
}

// MinimumImage returns the shortest displacement from b to a under periodic
// boundary conditions.
func (box *Box) MinimumImage(a, b particle.Vec3) particle.Vec3 {
	l := box.lengths()
	d := a.Sub(b)
	for i := 0; i < 3; i++ {
		if l[i] <= 0 {
			continue
		}
		d[i] -= l[i] * math.Round(d[i]/l[i])
	}
	return d
}

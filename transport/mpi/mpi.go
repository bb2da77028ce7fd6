// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpi implements halo exchange, global reduction and
// Verlet-rebuild announcement on top of github.com/cpmech/gosl/mpi, using
// the same collective primitives (AllReduceSum, IntAllReduceMax) a
// finite-element assembly loop would use to synchronize state across
// ranks.
package mpi

import (
	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gofem/topology"

	"github.com/cpmech/gosl/mpi"
)

// Transport is a HaloExchanger + Reducer + VerletHook backed by a dense,
// globally-known id space: every rank knows the full set of participating
// particle ids up front (as a real domain-decomposition library would
// communicate once at setup time), and ghost/owner reconciliation is done
// with a sum-reduction trick: at any given id slot, only the owning rank's
// local copy (or a ghost's accumulated contribution) is nonzero, so
// AllReduceSum over the dense array reproduces "sum ghost copies into
// owner" (forces) or "copy owner into every ghost" (positions, since
// non-owners contribute zero).
type Transport struct {
	sys     *topology.System
	ids     []int
	index   map[int]int // global id -> slot in buf/work
	buf     []float64   // 3*len(ids)
	work    []float64   // AllReduceSum workspace
	ibuf    []int       // 1 slot, for the Verlet-rebuild OR-reduce
	iwork   []int
	rebuild bool
}

// NewTransport builds a Transport over every particle (local and ghost)
// currently registered in sys. Call it once after the System's local and
// ghost cells have been populated for a stage.
func NewTransport(sys *topology.System) *Transport {
	t := &Transport{sys: sys, index: make(map[int]int)}
	add := func(p *particle.Particle) {
		if _, ok := t.index[p.Identity]; ok {
			return
		}
		t.index[p.Identity] = len(t.ids)
		t.ids = append(t.ids, p.Identity)
	}
	for _, p := range sys.AllLocal() {
		add(p)
	}
	for _, p := range sys.AllGhost() {
		add(p)
	}
	n := 3 * len(t.ids)
	t.buf = make([]float64, n)
	t.work = make([]float64, n)
	t.ibuf = make([]int, 1)
	t.iwork = make([]int, 1)
	return t
}

func (t *Transport) zero() {
	for i := range t.buf {
		t.buf[i] = 0
	}
}

func (t *Transport) put(id int, v particle.Vec3) {
	i := 3 * t.index[id]
	t.buf[i], t.buf[i+1], t.buf[i+2] = v[0], v[1], v[2]
}

func (t *Transport) get(id int) particle.Vec3 {
	i := 3 * t.index[id]
	return particle.Vec3{t.buf[i], t.buf[i+1], t.buf[i+2]}
}

// CollectGhostForce sums every ghost's F into its owner's F and zeroes the
// ghost copies, across all ranks.
func (t *Transport) CollectGhostForce() error {
	t.zero()
	for _, p := range t.sys.AllLocal() {
		t.put(p.Identity, p.F)
	}
	for _, p := range t.sys.AllGhost() {
		i := 3 * t.index[p.Identity]
		t.buf[i] += p.F[0]
		t.buf[i+1] += p.F[1]
		t.buf[i+2] += p.F[2]
	}
	mpi.AllReduceSum(t.buf, t.work)
	for _, p := range t.sys.AllLocal() {
		p.F = t.get(p.Identity)
	}
	for _, p := range t.sys.AllGhost() {
		p.F = particle.Vec3{}
	}
	return nil
}

// UpdateGhostPositions copies each owner's current position into every
// ghost mirror, across all ranks.
func (t *Transport) UpdateGhostPositions() error {
	t.zero()
	for _, p := range t.sys.AllLocal() {
		t.put(p.Identity, p.P)
	}
	mpi.AllReduceSum(t.buf, t.work)
	for _, p := range t.sys.AllGhost() {
		p.P = t.get(p.Identity)
	}
	return nil
}

// ORReduceBroadcast reduces local across all ranks with logical OR and
// returns the same value to every rank (an all-reduce over max on 0/1,
// since gosl/mpi has no direct boolean-OR collective).
func (t *Transport) ORReduceBroadcast(local bool) (bool, error) {
	if local {
		t.ibuf[0] = 1
	} else {
		t.ibuf[0] = 0
	}
	mpi.IntAllReduceMax(t.ibuf, t.iwork)
	return t.ibuf[0] > 0, nil
}

// SetRebuild records this rank's Verlet-skin-breach flag for the next
// AnnounceRebuildVerletList call.
func (t *Transport) SetRebuild(rebuild bool) {
	t.rebuild = rebuild
}

// AnnounceRebuildVerletList broadcasts the OR of every rank's rebuild flag
// and stores the collective decision back into t.rebuild.
func (t *Transport) AnnounceRebuildVerletList() error {
	decision, err := t.ORReduceBroadcast(t.rebuild)
	if err != nil {
		return err
	}
	t.rebuild = decision
	return nil
}

// Rebuild reports the last collectively-announced Verlet rebuild decision.
func (t *Transport) Rebuild() bool {
	return t.rebuild
}

// Rank returns this process's MPI rank, or 0 if MPI is not active.
func Rank() int {
	if mpi.IsOn() {
		return mpi.Rank()
	}
	return 0
}

// Size returns the number of MPI processes, or 1 if MPI is not active.
func Size() int {
	if mpi.IsOn() {
		return mpi.Size()
	}
	return 1
}

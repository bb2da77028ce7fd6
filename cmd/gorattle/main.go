// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gorattle runs one RATTLE position+velocity correction pass over a small
// hard-coded two-particle dumbbell, demonstrating the solver wired to the
// real MPI collectives. Launch it bare for a one-process run, or under
// mpirun/mpiexec for a distributed one — bond topology assembly,
// neighbor-list construction and everything else that picks the
// configuration apart across nodes is out of this solver's scope and is
// not attempted here.
package main

import (
	"flag"

	"github.com/cpmech/gofem/inp"
	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gofem/rattle"
	"github.com/cpmech/gofem/topology"
	"github.com/cpmech/gofem/transport/local"
	gompi "github.com/cpmech/gofem/transport/mpi"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {
	utl.Tsilent = false
	defer func() {
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				utl.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	maxit := flag.Int("maxit", 500, "SHAKE_MAX_ITERATIONS")
	ptol := flag.Float64("ptol", 1e-6, "position tolerance")
	vtol := flag.Float64("vtol", 1e-6, "velocity tolerance")
	flag.Parse()

	if inp.LogErrCond(*maxit <= 0, "maxit must be positive, got %d", *maxit) {
		utl.Panic("invalid arguments")
	}

	utl.PfWhite("\ngorattle -- distributed RATTLE constraint solver\n\n")

	if err := inp.InitLogFile(".", "gorattle"); err != nil {
		utl.Panic("could not open log file: %v", err)
	}
	defer inp.FlushLog()

	sep, err := run(*maxit, *ptol, *vtol)
	if err != nil {
		utl.PfRed("ERROR: %v\n", err)
		return
	}
	utl.Pf("final separation  = %v\n", sep)
}

// run builds a stretched two-particle rigid bond with an inward radial
// velocity and corrects it, returning the final squared bond length. It
// stops, rather than proceeding to the next phase, once every node agrees
// (via Stop) that a node has hit an unrecoverable error.
func run(maxit int, ptol, vtol float64) (sep float64, err error) {
	reg := particle.Registry{{Kind: particle.RigidBond, Arity: 1, Params: particle.RigidBondParams{D2: 1.0, PTol: ptol, VTol: vtol}}}

	// The bond is stored once, on p1 only — it is traversed from its local
	// endpoint and never from p2's side.
	p1 := &particle.Particle{Identity: 1, Mass: 1, P: particle.Vec3{-0.1, 0, 0}, POld: particle.Vec3{0, 0, 0}, BL: []int{0, 2}}
	p2 := &particle.Particle{Identity: 2, Mass: 1, P: particle.Vec3{1.1, 0, 0}, POld: particle.Vec3{1, 0, 0}}
	p1.V = particle.Vec3{0.5, 0, 0}
	p2.V = particle.Vec3{-0.5, 0, 0}

	sys := topology.NewSystem(topology.NewConstBox(0, 0, 0))
	sys.AddLocal(p1)
	sys.AddLocal(p2)

	var transport interface {
		rattle.HaloExchanger
		rattle.Reducer
		rattle.VerletHook
	}
	if mpi.IsOn() && mpi.Size() > 1 {
		transport = gompi.NewTransport(sys)
	} else {
		transport = new(local.Transport)
	}

	cfg := rattle.Config{Enabled: true, MassEnabled: true, MaxIterations: maxit}
	cfg.SetDefault()

	s := &rattle.Solver{
		Cfg:      cfg,
		Registry: reg,
		Cells:    sys,
		Lookup:   sys,
		Geom:     sys,
		Halo:     transport,
		Reduce:   transport,
		Verlet:   transport,
		Rank:     gompi.Rank(),
	}

	// p_old is pre-seeded above to the pre-stretch configuration, as if
	// SnapshotOldPositions had already run before an (unmodeled) integrator
	// move stretched the bond away from its target length.
	if cerr := s.CorrectPositions(); cerr != nil {
		inp.LogErr(cerr, "position correction")
		if rattle.Stop(transport, cerr) {
			return 0, cerr
		}
		utl.PfMag("position correction: %v (no node requested a stop, continuing)\n", cerr)
	}
	if cerr := s.CorrectVelocities(); cerr != nil {
		inp.LogErr(cerr, "velocity correction")
		if rattle.Stop(transport, cerr) {
			return 0, cerr
		}
		utl.PfMag("velocity correction: %v (no node requested a stop, continuing)\n", cerr)
	}
	s.LogBondLengths()

	return p1.P.Sub(p2.P).Len2(), nil
}

// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import "github.com/cpmech/gofem/particle"

// Config carries the recognized configuration options for one solver
// instance: defaults are assigned once via SetDefault, then derived fields
// (none, here) would be computed in a PostProcess step if ever needed.
type Config struct {
	Enabled       bool    // BOND_CONSTRAINT_ENABLED; false => every entry point is a no-op
	MassEnabled   bool    // MASS_ENABLED
	MaxIterations int     // SHAKE_MAX_ITERATIONS, positive
	Skin          float64 // Verlet skin
}

// SetDefault assigns the defaults used when a field is left at its zero
// value; callers typically build a Config literal and then call this only
// for fields they did not set.
func (c *Config) SetDefault() {
	if c.MaxIterations == 0 {
		c.MaxIterations = 500
	}
	if c.Skin == 0 {
		c.Skin = 0.4
	}
}

// Solver drives the two RATTLE fixed-point iterations against a
// collaborator-supplied particle store. Its lifetime spans one MD run; its
// per-call state (iteration counts) lives on the stack of each Correct*
// call so that concurrent calls on independent Solvers never interfere.
type Solver struct {
	Cfg      Config
	Registry particle.Registry
	Cells    CellProvider
	Lookup   Lookup
	Geom     Geometry
	Halo     HaloExchanger
	Reduce   Reducer
	Verlet   VerletHook
	Errs     ErrorSink
	Rank     int // for diagnostics only
}

// post reports err to the configured sink, if any, and returns it unchanged
// so callers can write `return s.post(err)`.
func (s *Solver) post(err error) error {
	if err != nil && s.Errs != nil {
		s.Errs.Post(err)
	}
	return err
}

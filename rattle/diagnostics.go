// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rattle

import (
	"log"
	"math"

	"github.com/cpmech/gofem/particle"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// LogBondLengths logs the current squared length of every rigid bond
// walked from a local particle, one line per bond, prefixed with this
// node's rank. It also reports the largest tolerance residual across all
// local bonds, the way an iterative solver reports its largest residual
// at the end of a run.
func (s *Solver) LogBondLengths() {
	if !s.Cfg.Enabled {
		return
	}
	var residuals []float64
	for _, p1 := range s.Cells.LocalParticles() {
		particle.Walk(p1.BL, s.Registry, func(b particle.Bond) bool {
			p2 := s.Lookup.Find(b.PartnerID)
			if p2 == nil {
				return true // diagnostics never abort on a broken bond
			}
			r := s.Geom.MinimumImage(p1.P, p2.P)
			len2 := r.Len2()
			log.Printf("%d: bond (%d %d): %f", s.Rank, p1.Identity, p2.Identity, len2)
			residuals = append(residuals, math.Abs(0.5*(b.Rigid.D2-len2)/b.Rigid.D2))
			return true
		})
	}
	if len(residuals) > 0 {
		utl.Pforan("rank %d: largest bond-tolerance residual = %v\n", s.Rank, la.VecLargest(residuals, 1))
	}
}

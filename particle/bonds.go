// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

// Kind identifies the variant of a bonded interaction.
type Kind int

const (
	// RigidBond holds a pair of particles at a fixed squared distance.
	RigidBond Kind = iota
	// OtherBonded stands in for every non-rigid bonded interaction kind
	// (angle, dihedral, harmonic, ...) that the solver does not act on.
	OtherBonded
)

// RigidBondParams is the RIGID_BOND payload: {d2, p_tol, v_tol}.
type RigidBondParams struct {
	D2   float64 // target squared bond length
	PTol float64 // position tolerance, fraction of D2
	VTol float64 // velocity tolerance, absolute
}

// BondedIA is one entry of bonded_ia_params, looked up by interaction_id.
type BondedIA struct {
	Kind   Kind
	Arity  int // number of partner ids following interaction_id in bl
	Params RigidBondParams
}

// Registry maps interaction_id to its BondedIA record.
type Registry []BondedIA

// Get returns the record for iaID, or panics if iaID is out of range — an
// unknown interaction id indicates a corrupt bond list, not a runtime
// condition the solver can recover from.
func (r Registry) Get(iaID int) *BondedIA {
	return &r[iaID]
}

// Bond is one typed, already-resolved entry yielded by Walk: a rigid pair
// with its partner id. Walk never yields non-rigid interactions, so IsRigid
// is always true on a Bond it produces.
type Bond struct {
	IsRigid   bool
	PartnerID int
	Rigid     RigidBondParams
}

// Walk iterates the flat bond list bl against reg, yielding one Bond per
// encoded rigid interaction and structurally skipping non-rigid ones — the
// cursor arithmetic needed to step over each interaction's partner ids is
// hidden inside here so callers never see bl cursor bookkeeping.
func Walk(bl []int, reg Registry, yield func(Bond) bool) {
	k := 0
	for k < len(bl) {
		ia := reg.Get(bl[k])
		k++
		if ia.Kind == RigidBond {
			partner := bl[k]
			k++
			if !yield(Bond{IsRigid: true, PartnerID: partner, Rigid: ia.Params}) {
				return
			}
			continue
		}
		k += ia.Arity
	}
}

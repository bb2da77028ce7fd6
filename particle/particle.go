// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package particle holds the per-particle storage consumed by the RATTLE
// constraint solver: positions, velocities, forces and the flat bond list.
// Ownership of these slots is described in full in package rattle.
package particle

// Vec3 is a 3-component Cartesian vector; used for p, p_old, v, f and l_p_old.
type Vec3 [3]float64

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns s*a.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// Dot returns a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Len2 returns |a|².
func (a Vec3) Len2() float64 {
	return a.Dot(a)
}

// Particle is one degree-of-freedom carrier in the cloud. Only the fields
// the constraint solver touches are modelled here; everything else (type,
// charge, ...) is the collaborator's business and lives outside this
// package.
type Particle struct {
	Identity int     // stable integer id, diagnostics only
	P        Vec3    // current position
	POld     Vec3    // previous-step position; scratch for force-stash during phase II
	V        Vec3    // current velocity
	F        Vec3    // force; repurposed as the correction vector during solver iterations
	LPOld    Vec3    // last-Verlet-rebuild position, read-only for the skin check
	Mass     float64 // per-particle mass (ignored when MassEnabled is false)
	BL       []int   // flat bond list: (interaction_id, partner ids...)*
	Ghost    bool    // true if this is a read-through mirror of a remote owner
}

// EffMass returns o.Mass when massEnabled, or 1 otherwise — the solver always
// combines two particles' masses, so "1" here and "2" in the combined
// denominator reproduce the equal-mass substitution used when mass
// weighting is turned off.
func (o *Particle) EffMass(massEnabled bool) float64 {
	if !massEnabled {
		return 1
	}
	return o.Mass
}

// Package quotient collapses a finite space along an equivalence relation.
//
// ByRelation validates the relation (reflexivity, symmetry, transitivity,
// agreement with the carrier's own equality), partitions the carrier into
// classes by breadth-first saturation, and equips the set of classes with
// the final topology of the class-membership map (builder.Final with a
// single leg). The projection is returned as a certified continuity.Map.
//
// Generated builds the quotient by the smallest equivalence relation
// identifying a list of point pairs, computed with union-find over carrier
// indices; coequalizers and pushouts use it.
//
// Classes compare as sets: two classes are equal when they hold the same
// points under the source witness.
package quotient

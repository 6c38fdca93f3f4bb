// Package group implements Group, a sorted duplicate-free slice of
// labels interpreted as a set of allowed labels for one incidence, and
// GroupType, the multiplicity attached to a Group inside a Part
// (either a fixed count or a Star wildcard).
//
// Every constructor returns a Group already in normal form; there is
// no way to build a Group with duplicate or unsorted entries through
// this package's API.
package group

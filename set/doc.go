// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package set provides the node identifier type, set algebra over nodes,
// and the Order capability used throughout the causal graph model.
//
// Node is an opaque, totally ordered, hashable identifier. Internally it
// is a fixed-width integer, following the convention of the teacher
// package's NI type.
package set

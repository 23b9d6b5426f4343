// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package graph implements the directed causal graph, the bidirected
// confounding graph, and the combined semi-Markovian Model that
// the identification algorithm operates over.
package graph

// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package form implements the symbolic probability expression tree used
// to represent identification estimands, along with a fixed-point
// rewrite simplifier.
//
// A Form is a closed five-case variant: Marginal, Product, Quotient, P
// (a joint/conditional probability term), and Hedge (the
// non-identifiability sentinel). Forms are immutable; every
// transformation returns a new Form.
package form

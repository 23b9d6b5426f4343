// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package pqp is a name-based façade over the causal identification
// engine: callers build a model with string variable names, then ask
// for the identifying estimand of an effect. Internally it delegates to
// the set, form, graph and id packages, which work in terms of small
// integer node ids.
package pqp

// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package id implements the Shpitser & Pearl ID algorithm for
// identifying causal effects in a semi-Markovian model, producing a
// symbolic estimand or the Hedge non-identifiability sentinel.
package id

// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package pqp

import (
	"fmt"
	"strings"

	"github.com/leo-ware/pqp/graph"
	"github.com/leo-ware/pqp/id"
	"github.com/leo-ware/pqp/set"
)

// ModelWrapper accumulates a causal model keyed by caller-chosen
// variable names and answers identification queries against it. The
// zero value is not usable; use NewModelWrapper.
type ModelWrapper struct {
	builder *graph.ModelBuilder
	names   map[string]set.Node
}

// NewModelWrapper returns an empty model.
func NewModelWrapper() *ModelWrapper {
	return &ModelWrapper{
		builder: graph.NewModelBuilder(),
		names:   make(map[string]set.Node),
	}
}

func (w *ModelWrapper) getOrAddVar(name string) set.Node {
	if n, ok := w.names[name]; ok {
		return n
	}
	n := set.Node(len(w.names))
	w.names[name] = n
	w.builder.AddNode(n)
	return n
}

// AddEffect registers cause and effect and records that cause is a
// direct cause of effect. The underlying edge store is keyed by
// parents, so this is recorded as AddDirectedEdge(effect, cause): the
// edge direction convention fixed at the graph layer (parents(n) is
// the set recorded under n) makes this the correct way to get "cause
// is a parent of effect" out of a parents-keyed edge map.
func (w *ModelWrapper) AddEffect(cause, effect string) {
	causeN := w.getOrAddVar(cause)
	effectN := w.getOrAddVar(effect)
	w.builder.AddDirectedEdge(effectN, causeN)
}

// AddConfounding registers a and b and records a latent confounder
// between them.
func (w *ModelWrapper) AddConfounding(a, b string) {
	aN := w.getOrAddVar(a)
	bN := w.getOrAddVar(b)
	w.builder.AddConfoundedEdge(aN, bN)
}

func (w *ModelWrapper) lookup(names []string) (set.NodeSet, error) {
	s := make(set.NodeSet, len(names))
	for _, name := range names {
		n, ok := w.names[name]
		if !ok {
			return nil, fmt.Errorf("pqp: unknown variable %q", name)
		}
		s.Add(n)
	}
	return s, nil
}

// IDResult is the outcome of a query: the estimand rendered to JSON
// (per §4.H's grammar) and a string listing the query's names in the
// shape built by renderQueryString: the y names before the bar, the x
// names after it, and each z name wrapped in do(...).
type IDResult struct {
	EstimandJSON string
	QueryString  string
}

// ID identifies P(y | do(x), z): y is the outcome set, x the
// intervention set, and z a set of variables additionally conditioned
// on. Every name in y, x and z must already have been registered by a
// prior AddEffect/AddConfounding call, or ID returns an error.
func (w *ModelWrapper) ID(y, x, z []string) (IDResult, error) {
	yN, err := w.lookup(y)
	if err != nil {
		return IDResult{}, err
	}
	xN, err := w.lookup(x)
	if err != nil {
		return IDResult{}, err
	}
	zN, err := w.lookup(z)
	if err != nil {
		return IDResult{}, err
	}

	model := w.builder.Build().Cond(zN)
	estimand := id.ID(model, yN, xN)

	reversed := make(map[set.Node]string, len(w.names))
	for name, n := range w.names {
		reversed[n] = name
	}

	return IDResult{
		EstimandJSON: renderEstimandJSON(estimand, reversed),
		QueryString:  renderQueryString(y, x, z),
	}, nil
}

// renderQueryString builds "P(y1, y2, ... | x1, ..., do(z1), ...)". If
// y is empty it returns just "P(": the x and z names and the closing
// parenthesis are all omitted, matching the source's literal
// string-building behavior.
func renderQueryString(y, x, z []string) string {
	var sb strings.Builder
	sb.WriteString("P(")
	if len(y) == 0 {
		return sb.String()
	}

	for _, each := range y {
		sb.WriteString(each)
		sb.WriteString(", ")
	}
	sb.WriteString("| ")
	for _, each := range x {
		sb.WriteString(each)
		sb.WriteString(", ")
	}
	for _, each := range z {
		sb.WriteString("do(")
		sb.WriteString(each)
		sb.WriteString("), ")
	}

	s := sb.String()
	s = s[:len(s)-2] + ")"
	return s
}

// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package pqp_test

import (
	"strings"
	"testing"

	"github.com/leo-ware/pqp"
)

func backdoorWrapper() *pqp.ModelWrapper {
	w := pqp.NewModelWrapper()
	w.AddEffect("x0", "x1")
	w.AddEffect("x0", "x2")
	w.AddEffect("x1", "x2")
	return w
}

func TestIDBackdoorNamed(t *testing.T) {
	w := backdoorWrapper()
	res, err := w.ID([]string{"x2"}, []string{"x1"}, nil)
	if err != nil {
		t.Fatalf("ID returned error: %v", err)
	}

	if !strings.Contains(res.EstimandJSON, `"type": "Marginal"`) {
		t.Errorf("EstimandJSON = %s, want a Marginal at the root", res.EstimandJSON)
	}
	if strings.Contains(res.EstimandJSON, `\`) {
		t.Errorf("EstimandJSON = %s, should have no backslashes", res.EstimandJSON)
	}
	if !strings.Contains(res.EstimandJSON, `"x0"`) {
		t.Errorf("EstimandJSON = %s, want variable names substituted back in", res.EstimandJSON)
	}

	want := "P(x2, | x1)"
	if res.QueryString != want {
		t.Errorf("QueryString = %q, want %q", res.QueryString, want)
	}
}

func TestIDBowGraphIsHedgeNamed(t *testing.T) {
	w := pqp.NewModelWrapper()
	w.AddEffect("x0", "x1")
	w.AddConfounding("x0", "x1")

	res, err := w.ID([]string{"x1"}, []string{"x0"}, nil)
	if err != nil {
		t.Fatalf("ID returned error: %v", err)
	}
	if res.EstimandJSON != `{"type": "Hedge"}` {
		t.Errorf("EstimandJSON = %s, want the Hedge sentinel", res.EstimandJSON)
	}
}

func TestIDUnknownNameErrors(t *testing.T) {
	w := backdoorWrapper()
	if _, err := w.ID([]string{"nope"}, []string{"x1"}, nil); err == nil {
		t.Errorf("ID with an unregistered name should return an error")
	}
}

func TestIDConditioningSet(t *testing.T) {
	w := backdoorWrapper()
	res, err := w.ID([]string{"x2"}, []string{"x1"}, []string{"x0"})
	if err != nil {
		t.Fatalf("ID returned error: %v", err)
	}
	want := "P(x2, | x1, do(x0))"
	if res.QueryString != want {
		t.Errorf("QueryString = %q, want %q", res.QueryString, want)
	}
}

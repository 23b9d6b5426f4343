// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package pqp

import (
	"fmt"
	"strings"

	"github.com/leo-ware/pqp/form"
	"github.com/leo-ware/pqp/set"
)

// renderEstimandJSON walks f, substituting internal node ids back to
// their registered names, and renders the result to JSON per the §4.H
// grammar. The escape characters fmt's %q verb introduces around
// quoted names are stripped before return, an artifact of the source
// renderer preserved for bit-compatibility.
func renderEstimandJSON(f form.Form, names map[set.Node]string) string {
	return strings.ReplaceAll(renderForm(f, names), `\`, "")
}

func renderForm(f form.Form, names map[set.Node]string) string {
	switch f.Tag {
	case form.TagMarginal:
		sub := quotedNames(f.Over.Slice(), names)
		return fmt.Sprintf(`{"type": "Marginal", "sub": [%s], "exp": %s}`,
			sub, renderForm(*f.Body, names))
	case form.TagQuotient:
		return fmt.Sprintf(`{"type": "Quotient", "numer": %s, "denom": %s}`,
			renderForm(*f.Numer, names), renderForm(*f.Denom, names))
	case form.TagProduct:
		parts := make([]string, len(f.Factors))
		for i, factor := range f.Factors {
			parts[i] = renderForm(factor, names)
		}
		return fmt.Sprintf(`{"type": "Product", "exprs": [%s]}`, strings.Join(parts, ", "))
	case form.TagP:
		return fmt.Sprintf(`{"type": "P", "vars": [%s], "given": [%s]}`,
			quotedNames(f.Vars, names), quotedNames(f.Given, names))
	default: // TagHedge
		return `{"type": "Hedge"}`
	}
}

func quotedNames(ns []set.Node, names map[set.Node]string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%q", names[n])
	}
	return strings.Join(parts, ", ")
}

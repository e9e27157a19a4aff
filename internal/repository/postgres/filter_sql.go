package postgres

import (
	"fmt"
	"strings"

	"conferencecentral/internal/query"
)

// renderSpec turns a validated query.Spec into a WHERE fragment (without the
// keyword), an ORDER BY column list, and the placeholder arguments, numbering
// placeholders from firstArg. An empty conditions list yields an empty where
// fragment.
//
// Array columns follow the membership semantics of the filter engine: an
// equality clause matches when any element equals the value, any other
// operator matches when any element satisfies it.
func renderSpec(spec *query.Spec, firstArg int) (where string, orderBy string, args []any) {
	parts := make([]string, 0, len(spec.Conditions))
	args = make([]any, 0, len(spec.Conditions))
	n := firstArg
	for _, cond := range spec.Conditions {
		switch {
		case cond.Array && cond.Op == query.OpEQ:
			parts = append(parts, fmt.Sprintf("$%d = ANY(%s)", n, cond.Column))
		case cond.Array:
			parts = append(parts, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM unnest(%s) AS elem WHERE elem %s $%d)",
				cond.Column, cond.Op, n))
		default:
			parts = append(parts, fmt.Sprintf("%s %s $%d", cond.Column, cond.Op, n))
		}
		args = append(args, cond.Value)
		n++
	}
	return strings.Join(parts, " AND "), strings.Join(spec.OrderBy, ", "), args
}

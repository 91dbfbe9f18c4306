package persistence

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type condition struct {
	column string
	op     string
	value  any
}

// Predicate is a conjunction of column comparisons. The zero value matches every row.
type Predicate struct {
	conds []condition
}

// All matches every row.
func All() Predicate {
	return Predicate{}
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Predicate {
	return Predicate{conds: []condition{{column: column, op: "=", value: value}}}
}

// Ne matches rows where column differs from value.
func Ne(column string, value any) Predicate {
	return Predicate{conds: []condition{{column: column, op: "<>", value: value}}}
}

// And combines predicates; every condition must hold.
func And(preds ...Predicate) Predicate {
	var out Predicate
	for _, p := range preds {
		out.conds = append(out.conds, p.conds...)
	}
	return out
}

func (p Predicate) IsZero() bool {
	return len(p.conds) == 0
}

// build renders the WHERE body with placeholders numbered from start.
func (p Predicate) build(start int) (string, []any) {
	if p.IsZero() {
		return "", nil
	}

	parts := make([]string, 0, len(p.conds))
	args := make([]any, 0, len(p.conds))
	for i, c := range p.conds {
		parts = append(parts, fmt.Sprintf("%s %s $%d", pgx.Identifier{c.column}.Sanitize(), c.op, start+i))
		args = append(args, c.value)
	}
	return strings.Join(parts, " AND "), args
}

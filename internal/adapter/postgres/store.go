package postgres

import (
	"fmt"
	"strings"
)

// setClause accumulates the assignments of a partial UPDATE.
type setClause struct {
	sets []string
	args []any
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.sets = append(s.sets, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// setIf adds column when v is not nil.
func setIf[T any](s *setClause, column string, v *T) {
	if v != nil {
		s.add(column, *v)
	}
}

func (s *setClause) empty() bool { return len(s.sets) == 0 }

// update renders "UPDATE table SET ... WHERE id = $n AND active RETURNING returning".
func (s *setClause) update(table string, id any, returning string) (string, []any) {
	args := append(s.args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s, updated_at = now() WHERE id = $%d AND active RETURNING %s`,
		table, strings.Join(s.sets, ", "), len(args), returning)
	return query, args
}

// qualify prefixes every column of a comma separated list with alias.
func qualify(alias, columns string) string {
	cols := strings.Split(columns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}

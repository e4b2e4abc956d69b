package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// PostgreSQL error codes inspected by services.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

// IsNotNullViolation reports whether err is a NOT NULL constraint violation.
func IsNotNullViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgNotNullViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes LIKE wildcards so s matches as a literal substring under
// the default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// setBuilder accumulates "col = $n" clauses for partial updates.
type setBuilder struct {
	sets []string
	args []interface{}
}

func (b *setBuilder) add(col string, v interface{}) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

// build returns the UPDATE statement for table keyed by id, refreshing updated_at.
func (b *setBuilder) build(table string, id int, returning string) (string, []interface{}) {
	sets := append(b.sets, "updated_at = NOW()")
	args := append(b.args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning)
	return q, args
}

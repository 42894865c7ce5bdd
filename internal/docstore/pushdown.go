package docstore

import (
	"regexp"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var plainField = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// pushDown narrows tx with the parts of q that SQL evaluates the same way
// apply does: == and in on the id or on string and number fields. The
// default order and the limit go along when nothing is left for Go.
// The returned query holds what still has to run in process.
func pushDown(tx *gorm.DB, q Query) (*gorm.DB, Query) {
	rest := Query{OrderBy: q.OrderBy, Limit: q.Limit}
	for _, f := range q.Filters {
		cond, ok := sqlCondition(f)
		if !ok {
			rest.Filters = append(rest.Filters, f)
			continue
		}
		tx = tx.Where(cond)
	}

	tx = tx.Order("created_at ASC, id ASC")
	if len(rest.Filters) == 0 && len(rest.OrderBy) == 0 {
		if q.Limit > 0 {
			tx = tx.Limit(q.Limit)
		}
		return tx, Query{}
	}
	return tx, rest
}

func sqlCondition(f Filter) (clause.Expression, bool) {
	if f.Field != FieldID && !plainField.MatchString(f.Field) {
		return nil, false
	}
	v := normalize(f.Value)

	switch f.Op {
	case OpEq:
		if !sqlComparable(f.Field, v) {
			return nil, false
		}
		return fieldEquals(f.Field, v), true
	case OpIn:
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			return nil, false
		}
		exprs := make([]clause.Expression, 0, len(list))
		for _, item := range list {
			if !sqlComparable(f.Field, item) {
				return nil, false
			}
			exprs = append(exprs, fieldEquals(f.Field, item))
		}
		if f.Field == FieldID {
			return clause.IN{Column: clause.Column{Name: "id"}, Values: list}, true
		}
		return clause.Or(exprs...), true
	}
	return nil, false
}

func fieldEquals(field string, v any) clause.Expression {
	if field == FieldID {
		return clause.Eq{Column: clause.Column{Name: "id"}, Value: v}
	}
	return datatypes.JSONQuery("data").Equals(v, field)
}

// sqlComparable reports whether SQL equality agrees with compare for v.
// Booleans and timestamps stay in Go; ids only match strings.
func sqlComparable(field string, v any) bool {
	switch x := v.(type) {
	case float64:
		return field != FieldID
	case string:
		_, err := time.Parse(time.RFC3339Nano, x)
		return err != nil
	}
	return false
}

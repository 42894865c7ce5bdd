package docstore

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

type Op string

const (
	OpEq  Op = "=="
	OpNe  Op = "!="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpIn  Op = "in"
)

// FieldID addresses the document id in filters and ordering.
const FieldID = "__id__"

type Filter struct {
	Field string
	Op    Op
	Value any
}

type Order struct {
	Field string
	Desc  bool
}

// Query narrows and orders a collection. The zero value selects everything
// in creation order.
type Query struct {
	Filters []Filter
	OrderBy []Order
	Limit   int
}

// Where starts a query with one filter.
func Where(field string, op Op, value any) Query {
	return Query{}.Where(field, op, value)
}

func (q Query) Where(field string, op Op, value any) Query {
	q.Filters = append(slices.Clone(q.Filters), Filter{Field: field, Op: op, Value: value})
	return q
}

func (q Query) Order(field string, desc bool) Query {
	q.OrderBy = append(slices.Clone(q.OrderBy), Order{Field: field, Desc: desc})
	return q
}

func (q Query) Take(n int) Query {
	q.Limit = n
	return q
}

// apply filters, sorts and limits docs in place order.
func (q Query) apply(docs []Document) []Document {
	filters := make([]Filter, len(q.Filters))
	for i, f := range q.Filters {
		f.Value = normalize(f.Value)
		filters[i] = f
	}

	out := docs[:0]
	for _, d := range docs {
		if matchesAll(d, filters) {
			out = append(out, d)
		}
	}

	slices.SortStableFunc(out, func(a, b Document) int {
		for _, o := range q.OrderBy {
			c, _ := compare(fieldValue(a, o.Field), fieldValue(b, o.Field))
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func matchesAll(d Document, filters []Filter) bool {
	for _, f := range filters {
		if !matches(d, f) {
			return false
		}
	}
	return true
}

func matches(d Document, f Filter) bool {
	v := fieldValue(d, f.Field)

	if f.Op == OpIn {
		list, ok := f.Value.([]any)
		if !ok {
			return false
		}
		for _, item := range list {
			if c, ok := compare(v, item); ok && c == 0 {
				return true
			}
		}
		return false
	}

	c, ok := compare(v, f.Value)
	switch f.Op {
	case OpEq:
		return ok && c == 0
	case OpNe:
		return !ok || c != 0
	case OpLt:
		return ok && c < 0
	case OpLte:
		return ok && c <= 0
	case OpGt:
		return ok && c > 0
	case OpGte:
		return ok && c >= 0
	}
	return false
}

func fieldValue(d Document, field string) any {
	if field == FieldID {
		return d.ID
	}
	return d.Fields[field]
}

// normalize gives filter values the same shape stored fields have after a
// JSON round trip (numbers become float64, times become RFC 3339 strings).
func normalize(v any) any {
	switch v.(type) {
	case nil, string, bool, float64:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

// compare orders two JSON values of the same kind. ok is false when the
// kinds differ. Strings that both parse as timestamps compare as times.
func compare(a, b any) (int, bool) {
	switch x := a.(type) {
	case nil:
		if b == nil {
			return 0, true
		}
		return -1, false
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y), true
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0, true
			case !x:
				return -1, true
			default:
				return 1, true
			}
		}
	case string:
		if y, ok := b.(string); ok {
			if tx, err := time.Parse(time.RFC3339Nano, x); err == nil {
				if ty, err := time.Parse(time.RFC3339Nano, y); err == nil {
					return tx.Compare(ty), true
				}
			}
			return strings.Compare(x, y), true
		}
	}
	if b == nil {
		return 1, false
	}
	return 0, false
}

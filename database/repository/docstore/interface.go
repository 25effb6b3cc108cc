package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Update and Delete for an unknown identifier.
var ErrNotFound = errors.New("document not found")

// IsNotFound reports whether err means the addressed document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Document is a stored document: its store-assigned identifier and its fields.
type Document struct {
	ID   string
	Data map[string]any
}

// Operator is a filter comparison.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Filter restricts results to documents whose Field compares to Value.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Order sorts results by Field.
type Order struct {
	Field     string
	Direction Direction
}

// Query is the resolved form of an ordered list of constraints.
type Query struct {
	Filters []Filter
	Orders  []Order
	Limit   int // 0 means no limit
}

// Constraint is one filter, sort or limit clause applied to a Query.
type Constraint func(*Query)

// Where adds an equality or range filter.
func Where(field string, op Operator, value any) Constraint {
	return func(q *Query) { q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: value}) }
}

// OrderBy adds a sort clause. Earlier clauses take precedence.
func OrderBy(field string, dir Direction) Constraint {
	return func(q *Query) { q.Orders = append(q.Orders, Order{Field: field, Direction: dir}) }
}

// Limit caps the number of results.
func Limit(n int) Constraint {
	return func(q *Query) { q.Limit = n }
}

// Build applies constraints in order.
func Build(constraints ...Constraint) Query {
	var q Query
	for _, c := range constraints {
		if c != nil {
			c(&q)
		}
	}
	return q
}

// Store is a hosted document store addressed by collection name and document ID.
type Store interface {
	Add(ctx context.Context, collection string, data map[string]any) (string, error)
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
	Update(ctx context.Context, collection, id string, data map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

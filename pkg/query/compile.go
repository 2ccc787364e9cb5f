package query

import (
	"fmt"
	"strings"

	"recipe-api/domain"
)

// Columns maps the logical field names used in filters and sorting to SQL
// expressions. Only mapped fields can be filtered or sorted on.
type Columns map[string]string

func (c Columns) column(field string) (string, bool) {
	col, ok := c[field]
	return col, ok
}

// Compile turns f into a WHERE fragment and its arguments. An empty fragment
// means no restriction.
func Compile(f Filter, columns Columns) (string, []any, error) {
	if IsAll(f) {
		return "", nil, nil
	}

	switch v := f.(type) {
	case Equals:
		col, ok := columns.column(v.Field)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", domain.ErrInvalidFilter, v.Field)
		}
		return "LOWER(" + col + ") = ?", []any{strings.ToLower(v.Value)}, nil
	case Contains:
		col, ok := columns.column(v.Field)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", domain.ErrInvalidFilter, v.Field)
		}
		return "LOWER(" + col + `) LIKE ? ESCAPE '\'`, []any{likePattern(v.Value)}, nil
	case And:
		return compileGroup(v, " AND ", columns)
	case Or:
		return compileGroup(v, " OR ", columns)
	default:
		return "", nil, fmt.Errorf("%w: %T", domain.ErrInvalidFilter, f)
	}
}

func compileGroup(children []Filter, sep string, columns Columns) (string, []any, error) {
	parts := make([]string, 0, len(children))
	var args []any
	for _, child := range children {
		sql, childArgs, err := Compile(child, columns)
		if err != nil {
			return "", nil, err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	switch len(parts) {
	case 0:
		return "", nil, nil
	case 1:
		return parts[0], args, nil
	default:
		return "(" + strings.Join(parts, sep) + ")", args, nil
	}
}

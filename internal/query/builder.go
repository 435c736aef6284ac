// Package query turns validated filter, sort and pagination values into
// SQL fragments with bound arguments. Values never enter the SQL text;
// every one flows through a ? placeholder.
package query

import (
	"strings"

	"advocates/internal/domain"
)

// searchColumns are the fields a free-text search matches against.
// Specialties is a JSON column and is matched as text.
var searchColumns = []string{
	"LOWER(first_name)",
	"LOWER(last_name)",
	"LOWER(city)",
	"LOWER(degree)",
	"LOWER(CAST(specialties AS CHAR))",
}

// sortColumns maps the validated sort field to its physical column.
// Built once; the validator guarantees only allow-listed fields arrive.
var sortColumns = map[domain.SortField]string{
	domain.SortByFirstName:  "first_name",
	domain.SortByLastName:   "last_name",
	domain.SortByCity:       "city",
	domain.SortByDegree:     "degree",
	domain.SortByExperience: "years_of_experience",
	domain.SortByCreatedAt:  "created_at",
}

// Predicates is an assembled WHERE clause plus its bound arguments. The
// same predicate set backs both the count and the data query.
type Predicates struct {
	clauses []string
	args    []any
}

// Build composes the predicate set for a filter. Active predicates are
// AND-combined; the search predicate is an OR-disjunction of
// case-insensitive substring matches.
func Build(f domain.AdvocateFilters) Predicates {
	var p Predicates

	if s := strings.TrimSpace(f.Search); s != "" {
		needle := "%" + strings.ToLower(s) + "%"
		parts := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			parts[i] = col + " LIKE ?"
			p.args = append(p.args, needle)
		}
		p.clauses = append(p.clauses, "("+strings.Join(parts, " OR ")+")")
	}

	if f.City != "" {
		p.clauses = append(p.clauses, "city = ?")
		p.args = append(p.args, f.City)
	}

	if f.Degree != "" {
		p.clauses = append(p.clauses, "degree = ?")
		p.args = append(p.args, f.Degree)
	}

	if f.MinExperience != nil {
		p.clauses = append(p.clauses, "years_of_experience >= ?")
		p.args = append(p.args, *f.MinExperience)
	}

	if f.MaxExperience != nil {
		p.clauses = append(p.clauses, "years_of_experience <= ?")
		p.args = append(p.args, *f.MaxExperience)
	}

	return p
}

// Where renders the clause with a leading " WHERE ", or "" when no
// predicate is active.
func (p Predicates) Where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// Args returns the bound arguments in clause order.
func (p Predicates) Args() []any {
	return p.args
}

// OrderBy renders the ORDER BY clause for a sort spec. Every ordering
// gets a secondary id tie-break so equal primary values still paginate
// deterministically.
func OrderBy(s domain.SortSpec) string {
	col, ok := sortColumns[s.Field]
	if !ok {
		col = sortColumns[domain.SortByLastName]
	}
	dir := "ASC"
	if s.Direction == domain.SortDesc {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir + ", id ASC"
}

// LimitOffset returns the bound limit and derived offset for a page.
func LimitOffset(p domain.PageSpec) (limit, offset int) {
	return p.Limit, p.Offset()
}

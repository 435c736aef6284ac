// Package validate parses raw query parameters into typed, range-checked
// values. Each endpoint has one entry point that either returns a fully
// populated struct with defaults applied or fails with the first
// violation, attributed to the offending parameter.
package validate

import (
	"net/url"
	"strconv"
	"strings"

	"advocates/internal/domain"
	"advocates/internal/domain/apperr"
	"advocates/internal/sanitize"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxPage      = 1000
	MinLimit     = 1
	MaxLimit     = 100
	MaxExpYears  = 50
)

// ListParams is the validated input of the listing endpoint. Optional
// strings are "" when absent; experience bounds are nil when absent.
type ListParams struct {
	Page          int
	Limit         int
	Search        string
	City          string
	Degree        string
	MinExperience *int
	MaxExperience *int
	SortBy        domain.SortField
	SortOrder     domain.SortDirection
}

// Filters converts the validated params to the domain filter set.
func (p ListParams) Filters() domain.AdvocateFilters {
	return domain.AdvocateFilters{
		Search:        p.Search,
		City:          p.City,
		Degree:        p.Degree,
		MinExperience: p.MinExperience,
		MaxExperience: p.MaxExperience,
	}
}

// Sort returns the validated sort spec.
func (p ListParams) Sort() domain.SortSpec {
	return domain.SortSpec{Field: p.SortBy, Direction: p.SortOrder}
}

// PageSpec returns the validated pagination spec.
func (p ListParams) PageSpec() domain.PageSpec {
	return domain.PageSpec{Page: p.Page, Limit: p.Limit}
}

// sortFields is the allow-list of sortable fields. Unknown sortBy values
// fall back to lastName instead of erroring; existing clients send
// legacy field names and the listing stayed lenient for them.
var sortFields = map[string]domain.SortField{
	"firstName":         domain.SortByFirstName,
	"lastName":          domain.SortByLastName,
	"city":              domain.SortByCity,
	"degree":            domain.SortByDegree,
	"yearsOfExperience": domain.SortByExperience,
	"createdAt":         domain.SortByCreatedAt,
}

// List validates the listing endpoint parameters. Repeated keys take the
// first occurrence. Structural checks run before cross-field checks so
// error attribution is deterministic.
func List(q url.Values) (ListParams, error) {
	out := ListParams{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    domain.SortByLastName,
		SortOrder: domain.SortAsc,
	}

	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return out, apperr.NewInvalidParameter("page", "page must be a positive integer")
		}
		if n > MaxPage {
			return out, apperr.NewInvalidParameter("page", "page must be at most 1000")
		}
		out.Page = n
	}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return out, apperr.NewInvalidParameter("limit", "limit must be an integer")
		}
		// Out-of-range limits are rejected, not clamped.
		if n < MinLimit || n > MaxLimit {
			return out, apperr.NewInvalidParameter("limit", "limit must be between 1 and 100")
		}
		out.Limit = n
	}

	out.Search = sanitize.SearchTerm(q.Get("search"))

	if raw := strings.TrimSpace(q.Get("city")); raw != "" {
		city, err := sanitize.City(raw)
		if err != nil {
			return out, err
		}
		out.City = city
	}

	if raw := q.Get("degree"); strings.TrimSpace(raw) != "" {
		out.Degree = sanitize.String(raw, sanitize.Options{MaxLength: sanitize.MaxTextLen})
	}

	var err error
	if out.MinExperience, err = experienceBound(q, "minExperience"); err != nil {
		return out, err
	}
	if out.MaxExperience, err = experienceBound(q, "maxExperience"); err != nil {
		return out, err
	}
	if out.MinExperience != nil && out.MaxExperience != nil && *out.MinExperience > *out.MaxExperience {
		e := apperr.NewInvalidParameter("minExperience", "Minimum experience cannot be greater than maximum experience")
		e.Field = "minExperience"
		return out, e
	}

	if raw := strings.TrimSpace(q.Get("sortBy")); raw != "" {
		if field, ok := sortFields[raw]; ok {
			out.SortBy = field
		}
	}

	if raw := strings.TrimSpace(q.Get("sortOrder")); raw != "" {
		switch raw {
		case "asc":
			out.SortOrder = domain.SortAsc
		case "desc":
			out.SortOrder = domain.SortDesc
		default:
			return out, apperr.NewInvalidParameter("sortOrder", `sortOrder must be either "asc" or "desc"`)
		}
	}

	return out, nil
}

func experienceBound(q url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, apperr.NewInvalidParameter(name, name+" must be a non-negative integer")
	}
	if n > MaxExpYears {
		return nil, apperr.NewInvalidParameter(name, name+" must be at most 50")
	}
	return &n, nil
}

// ID validates the single-record identifier.
func ID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperr.NewInvalidParameter("id", "Advocate ID is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NewInvalidParameter("id", "Invalid advocate ID format")
	}
	return id, nil
}

// CityParam validates the by-city endpoint parameter.
func CityParam(q url.Values) (string, error) {
	raw := q.Get("city")
	if strings.TrimSpace(raw) == "" {
		return "", apperr.NewInvalidParameter("city", "City parameter is required")
	}
	return sanitize.City(raw)
}

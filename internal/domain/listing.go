package domain

// AdvocateFilters holds the validated filter values for a listing query.
// Experience bounds are pointers so an explicit 0 stays distinct from absent.
type AdvocateFilters struct {
	Search        string
	City          string
	Degree        string
	MinExperience *int
	MaxExperience *int
}

// SortField enumerates the columns a listing may be ordered by.
type SortField string

const (
	SortByFirstName  SortField = "firstName"
	SortByLastName   SortField = "lastName"
	SortByCity       SortField = "city"
	SortByDegree     SortField = "degree"
	SortByExperience SortField = "yearsOfExperience"
	SortByCreatedAt  SortField = "createdAt"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec captures ordering preferences for a listing.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// PageSpec captures pagination preferences. Page is 1-based.
type PageSpec struct {
	Page  int
	Limit int
}

// Offset derives the row offset for the current page.
func (p PageSpec) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block of a listing envelope.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// AdvocatePage is one page of results plus pagination metadata.
type AdvocatePage struct {
	Data       []Advocate `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewAdvocatePage assembles the response envelope from row data and the
// total count. totalPages is ceil(total/limit); an empty table yields 0 pages.
func NewAdvocatePage(data []Advocate, total int, page PageSpec) AdvocatePage {
	if data == nil {
		data = []Advocate{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	return AdvocatePage{
		Data: data,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page.Page < totalPages,
			HasPrev:    page.Page > 1,
		},
	}
}

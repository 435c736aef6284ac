package domain

import "time"

// Advocate is a single directory record. The API never writes advocates;
// rows are seeded out of band and treated as immutable here.
type Advocate struct {
	ID                int64      `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	City              string     `json:"city"`
	Degree            string     `json:"degree"`
	Specialties       []string   `json:"specialties"`
	YearsOfExperience int        `json:"yearsOfExperience"`
	PhoneNumber       int64      `json:"phoneNumber"`
	CreatedAt         *time.Time `json:"createdAt"`
}

// DirectoryStats summarizes the whole advocate table.
type DirectoryStats struct {
	Total   int      `json:"total"`
	Cities  []string `json:"cities"`
	Degrees []string `json:"degrees"`
}

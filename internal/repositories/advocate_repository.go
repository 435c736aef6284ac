package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"advocates/internal/domain"
	"advocates/internal/query"
)

// AdvocateStore is the record-store capability the pipeline consumes.
// The MySQL implementation below is the only production one; tests swap
// in doubles.
type AdvocateStore interface {
	Count(ctx context.Context, preds query.Predicates) (int, error)
	Find(ctx context.Context, preds query.Predicates, sort domain.SortSpec, limit, offset int) ([]domain.Advocate, error)
	GetByID(ctx context.Context, id int64) (domain.Advocate, error)
	ListByCity(ctx context.Context, city string) ([]domain.Advocate, error)
	Stats(ctx context.Context) (domain.DirectoryStats, error)
}

const advocateColumns = `id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number, created_at`

// AdvocateRepository wraps read access to the advocates table.
type AdvocateRepository struct {
	DB *sql.DB
}

// Count runs the count query for a predicate set.
func (r AdvocateRepository) Count(ctx context.Context, preds query.Predicates) (int, error) {
	var total int
	q := `SELECT COUNT(*) FROM advocates` + preds.Where()
	if err := r.DB.QueryRowContext(ctx, q, preds.Args()...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Find runs the data query for the same predicate set, ordered and paged.
func (r AdvocateRepository) Find(ctx context.Context, preds query.Predicates, sort domain.SortSpec, limit, offset int) ([]domain.Advocate, error) {
	q := `SELECT ` + advocateColumns + ` FROM advocates` + preds.Where() + query.OrderBy(sort) + ` LIMIT ? OFFSET ?`
	args := append(append([]any{}, preds.Args()...), limit, offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Advocate{}
	for rows.Next() {
		a, err := scanAdvocate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID loads one advocate. sql.ErrNoRows passes through for the
// service layer to translate.
func (r AdvocateRepository) GetByID(ctx context.Context, id int64) (domain.Advocate, error) {
	q := `SELECT ` + advocateColumns + ` FROM advocates WHERE id = ?`
	row := r.DB.QueryRowContext(ctx, q, id)
	return scanAdvocate(row)
}

// ListByCity loads all advocates with an exact city match, ordered for
// stable output.
func (r AdvocateRepository) ListByCity(ctx context.Context, city string) ([]domain.Advocate, error) {
	q := `SELECT ` + advocateColumns + ` FROM advocates WHERE city = ? ORDER BY last_name ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, q, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Advocate{}
	for rows.Next() {
		a, err := scanAdvocate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Stats aggregates directory-wide counts and distinct values.
func (r AdvocateRepository) Stats(ctx context.Context) (domain.DirectoryStats, error) {
	stats := domain.DirectoryStats{Cities: []string{}, Degrees: []string{}}

	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM advocates`).Scan(&stats.Total); err != nil {
		return stats, err
	}

	var err error
	if stats.Cities, err = r.distinct(ctx, "city"); err != nil {
		return stats, err
	}
	if stats.Degrees, err = r.distinct(ctx, "degree"); err != nil {
		return stats, err
	}
	return stats, nil
}

func (r AdvocateRepository) distinct(ctx context.Context, column string) ([]string, error) {
	// column is one of two compile-time constants, never user input
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT `+column+` FROM advocates ORDER BY `+column+` ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAdvocate maps one raw row. The specialties column holds JSON; a
// value that is not a JSON string array maps to an empty list instead of
// failing the whole query.
func scanAdvocate(row rowScanner) (domain.Advocate, error) {
	var (
		a           domain.Advocate
		specialties []byte
		createdAt   sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.City, &a.Degree, &specialties, &a.YearsOfExperience, &a.PhoneNumber, &createdAt); err != nil {
		return a, err
	}

	a.Specialties = []string{}
	if len(specialties) > 0 {
		var list []string
		if err := json.Unmarshal(specialties, &list); err == nil && list != nil {
			a.Specialties = list
		}
	}

	if createdAt.Valid {
		t := createdAt.Time
		a.CreatedAt = &t
	}
	return a, nil
}

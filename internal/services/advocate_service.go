package services

import (
	"context"
	"database/sql"
	"errors"

	"advocates/internal/domain"
	"advocates/internal/domain/apperr"
	"advocates/internal/query"
	"advocates/internal/repositories"
	"advocates/internal/validate"

	"go.uber.org/zap"
)

// AdvocateService runs the request-to-query pipeline over an injected
// store. It holds no request state; one value serves all requests.
type AdvocateService struct {
	Store repositories.AdvocateStore
	Log   *zap.Logger
}

// List executes the filtered, sorted, paginated listing: one count query
// and one data query over the same predicate set, assembled into the
// pagination envelope.
func (s AdvocateService) List(ctx context.Context, params validate.ListParams) (domain.AdvocatePage, error) {
	preds := query.Build(params.Filters())
	page := params.PageSpec()

	total, err := s.Store.Count(ctx, preds)
	if err != nil {
		return domain.AdvocatePage{}, s.storeFailure("count advocates", err)
	}

	limit, offset := query.LimitOffset(page)
	data, err := s.Store.Find(ctx, preds, params.Sort(), limit, offset)
	if err != nil {
		return domain.AdvocatePage{}, s.storeFailure("list advocates", err)
	}

	return domain.NewAdvocatePage(data, total, page), nil
}

// GetByID loads a single advocate, translating a missing row into the
// only 404 of the system.
func (s AdvocateService) GetByID(ctx context.Context, id int64) (domain.Advocate, error) {
	a, err := s.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Advocate{}, apperr.NewNotFound("Advocate", id)
		}
		return domain.Advocate{}, s.storeFailure("get advocate", err)
	}
	return a, nil
}

// ListByCity returns all advocates in an exact-match city. An unknown
// city is an empty list, never a 404.
func (s AdvocateService) ListByCity(ctx context.Context, city string) ([]domain.Advocate, error) {
	data, err := s.Store.ListByCity(ctx, city)
	if err != nil {
		return nil, s.storeFailure("list advocates by city", err)
	}
	if data == nil {
		data = []domain.Advocate{}
	}
	return data, nil
}

// Stats aggregates directory totals and distinct values.
func (s AdvocateService) Stats(ctx context.Context) (domain.DirectoryStats, error) {
	stats, err := s.Store.Stats(ctx)
	if err != nil {
		return stats, s.storeFailure("advocate stats", err)
	}
	return stats, nil
}

// storeFailure logs the underlying store error server-side and returns a
// generic Database error; driver text never reaches the caller.
func (s AdvocateService) storeFailure(op string, err error) error {
	if e, ok := apperr.As(err); ok {
		return e
	}
	if s.Log != nil {
		s.Log.Error("store operation failed", zap.String("op", op), zap.Error(err))
	}
	return apperr.NewDatabase("Database operation failed", err)
}

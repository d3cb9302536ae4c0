package service

import (
	"context"
	"fmt"
	"time"

	"daytrack/internal/modules/record/domain"
	recordout "daytrack/internal/modules/record/port/out"
	apperrors "daytrack/internal/platform/errors"
)

type RecordService struct {
	store recordout.Store
}

func NewRecordService(store recordout.Store) *RecordService {
	return &RecordService{store: store}
}

// Upsert writes the full set of measurement fields for a date and returns
// the stored row. All six fields are replaced with exactly what was passed,
// so a nil field erases a previously recorded value for that date.
func (s *RecordService) Upsert(ctx context.Context, date time.Time, fields domain.Fields) (domain.DailyRecord, error) {
	if date.IsZero() {
		return domain.DailyRecord{}, fmt.Errorf("%w: date is required", apperrors.ErrInvalidInput)
	}
	date = domain.NormalizeDate(date)
	if err := s.store.Upsert(ctx, date, fields); err != nil {
		return domain.DailyRecord{}, err
	}
	return s.store.FindByDate(ctx, date)
}

func (s *RecordService) GetByDate(ctx context.Context, date time.Time) (domain.DailyRecord, error) {
	if date.IsZero() {
		return domain.DailyRecord{}, fmt.Errorf("%w: date is required", apperrors.ErrInvalidInput)
	}
	return s.store.FindByDate(ctx, domain.NormalizeDate(date))
}

func (s *RecordService) List(ctx context.Context, descending bool) ([]domain.DailyRecord, error) {
	return s.store.List(ctx, descending)
}

func (s *RecordService) ListRange(ctx context.Context, start, end time.Time) ([]domain.DailyRecord, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrInvalidInput)
	}
	start = domain.NormalizeDate(start)
	end = domain.NormalizeDate(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date is after end date", apperrors.ErrInvalidInput)
	}
	return s.store.ListRange(ctx, start, end)
}

func (s *RecordService) ListYearMonth(ctx context.Context, year, month int) ([]domain.DailyRecord, error) {
	if year < 1 {
		return nil, fmt.Errorf("%w: year is required", apperrors.ErrInvalidInput)
	}
	if month < 0 || month > 12 {
		return nil, fmt.Errorf("%w: month must be 1-12 or omitted", apperrors.ErrInvalidInput)
	}
	return s.store.ListYearMonth(ctx, year, month)
}

func (s *RecordService) Series(ctx context.Context, metric domain.Metric) ([]domain.SeriesPoint, error) {
	if err := metric.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.store.Series(ctx, metric)
}

func (s *RecordService) Update(ctx context.Context, id int64, fields domain.Fields) error {
	if id < 1 {
		return fmt.Errorf("%w: record id is required", apperrors.ErrInvalidInput)
	}
	if fields.Empty() {
		return fmt.Errorf("%w: no fields to update", apperrors.ErrInvalidInput)
	}
	return s.store.Update(ctx, id, fields)
}

func (s *RecordService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: record id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Delete(ctx, id)
}

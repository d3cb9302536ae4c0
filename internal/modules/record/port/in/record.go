package in

import (
	"context"
	"time"

	"daytrack/internal/modules/record/dto"
)

type Usecase interface {
	Upsert(ctx context.Context, input dto.UpsertInput) (dto.RecordOutput, error)
	GetByDate(ctx context.Context, date time.Time) (dto.RecordOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.RecordOutput, error)
	ListRange(ctx context.Context, input dto.RangeInput) ([]dto.RecordOutput, error)
	ListYearMonth(ctx context.Context, input dto.YearMonthInput) ([]dto.RecordOutput, error)
	Series(ctx context.Context, metric string) ([]dto.SeriesPointOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) error
	Delete(ctx context.Context, id int64) error
}

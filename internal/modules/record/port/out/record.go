package out

import (
	"context"
	"time"

	"daytrack/internal/modules/record/domain"
)

type Store interface {
	Upsert(ctx context.Context, date time.Time, fields domain.Fields) error
	FindByDate(ctx context.Context, date time.Time) (domain.DailyRecord, error)
	List(ctx context.Context, descending bool) ([]domain.DailyRecord, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.DailyRecord, error)
	ListYearMonth(ctx context.Context, year, month int) ([]domain.DailyRecord, error)
	Series(ctx context.Context, metric domain.Metric) ([]domain.SeriesPoint, error)
	Update(ctx context.Context, id int64, fields domain.Fields) error
	Delete(ctx context.Context, id int64) error
}

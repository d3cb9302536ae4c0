package in

import (
	"context"
	"time"

	"daytrack/internal/modules/record/dto"
	recordin "daytrack/internal/modules/record/port/in"
)

type CLIHandler struct {
	usecase recordin.Usecase
}

func NewCLIHandler(usecase recordin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Upsert(ctx context.Context, date time.Time, fields dto.FieldsInput) (dto.RecordOutput, error) {
	return h.usecase.Upsert(ctx, dto.UpsertInput{Date: date, Fields: fields})
}

func (h CLIHandler) GetByDate(ctx context.Context, date time.Time) (dto.RecordOutput, error) {
	return h.usecase.GetByDate(ctx, date)
}

func (h CLIHandler) List(ctx context.Context, descending bool) ([]dto.RecordOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Descending: descending})
}

func (h CLIHandler) ListRange(ctx context.Context, start, end time.Time) ([]dto.RecordOutput, error) {
	return h.usecase.ListRange(ctx, dto.RangeInput{Start: start, End: end})
}

func (h CLIHandler) ListYearMonth(ctx context.Context, year, month int) ([]dto.RecordOutput, error) {
	return h.usecase.ListYearMonth(ctx, dto.YearMonthInput{Year: year, Month: month})
}

func (h CLIHandler) Series(ctx context.Context, metric string) ([]dto.SeriesPointOutput, error) {
	return h.usecase.Series(ctx, metric)
}

func (h CLIHandler) Update(ctx context.Context, id int64, fields dto.FieldsInput) error {
	return h.usecase.Update(ctx, dto.UpdateInput{ID: id, Fields: fields})
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

package in

import (
	"context"
	"time"

	"daytrack/internal/modules/record/dto"
	recordin "daytrack/internal/modules/record/port/in"
)

// TUIHandler exposes the record operations the terminal UI binds to.
type TUIHandler struct {
	usecase recordin.Usecase
}

func NewTUIHandler(usecase recordin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Upsert(ctx context.Context, input dto.UpsertInput) (dto.RecordOutput, error) {
	return h.usecase.Upsert(ctx, input)
}

func (h TUIHandler) GetByDate(ctx context.Context, date time.Time) (dto.RecordOutput, error) {
	return h.usecase.GetByDate(ctx, date)
}

func (h TUIHandler) List(ctx context.Context, input dto.ListInput) ([]dto.RecordOutput, error) {
	return h.usecase.List(ctx, input)
}

func (h TUIHandler) ListYearMonth(ctx context.Context, input dto.YearMonthInput) ([]dto.RecordOutput, error) {
	return h.usecase.ListYearMonth(ctx, input)
}

func (h TUIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

package usecase

import (
	"context"
	"time"

	"daytrack/internal/modules/record/domain"
	"daytrack/internal/modules/record/dto"
	recordin "daytrack/internal/modules/record/port/in"
	"daytrack/internal/modules/record/service"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Upsert(ctx context.Context, input dto.UpsertInput) (dto.RecordOutput, error) {
	record, err := i.svc.Upsert(ctx, input.Date, toFields(input.Fields))
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(record), nil
}

func (i *Interactor) GetByDate(ctx context.Context, date time.Time) (dto.RecordOutput, error) {
	record, err := i.svc.GetByDate(ctx, date)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(record), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.RecordOutput, error) {
	records, err := i.svc.List(ctx, input.Descending)
	if err != nil {
		return nil, err
	}
	return toOutputs(records), nil
}

func (i *Interactor) ListRange(ctx context.Context, input dto.RangeInput) ([]dto.RecordOutput, error) {
	records, err := i.svc.ListRange(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}
	return toOutputs(records), nil
}

func (i *Interactor) ListYearMonth(ctx context.Context, input dto.YearMonthInput) ([]dto.RecordOutput, error) {
	records, err := i.svc.ListYearMonth(ctx, input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	return toOutputs(records), nil
}

func (i *Interactor) Series(ctx context.Context, metric string) ([]dto.SeriesPointOutput, error) {
	points, err := i.svc.Series(ctx, domain.Metric(metric))
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeriesPointOutput, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SeriesPointOutput{Date: p.Date, Value: p.Value})
	}
	return out, nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) error {
	return i.svc.Update(ctx, input.ID, toFields(input.Fields))
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	return i.svc.Delete(ctx, id)
}

func toFields(f dto.FieldsInput) domain.Fields {
	return domain.Fields{
		SleepTime:      f.SleepTime,
		Weight:         f.Weight,
		Rating:         f.Rating,
		Steps:          f.Steps,
		CaloriesIntake: f.CaloriesIntake,
		Note:           f.Note,
	}
}

func toOutput(r domain.DailyRecord) dto.RecordOutput {
	return dto.RecordOutput{
		ID:             r.ID,
		Date:           r.Date,
		SleepTime:      r.SleepTime,
		Weight:         r.Weight,
		Rating:         r.Rating,
		Steps:          r.Steps,
		CaloriesIntake: r.CaloriesIntake,
		Note:           r.Note,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toOutputs(records []domain.DailyRecord) []dto.RecordOutput {
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toOutput(r))
	}
	return out
}

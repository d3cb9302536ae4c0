package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"daytrack/internal/modules/chart/service"
	recorddto "daytrack/internal/modules/record/dto"
	apperrors "daytrack/internal/platform/errors"
)

type fakeSeries struct {
	points []recorddto.SeriesPointOutput
}

func (f *fakeSeries) Upsert(context.Context, recorddto.UpsertInput) (recorddto.RecordOutput, error) {
	return recorddto.RecordOutput{}, errors.New("not implemented")
}

func (f *fakeSeries) GetByDate(context.Context, time.Time) (recorddto.RecordOutput, error) {
	return recorddto.RecordOutput{}, errors.New("not implemented")
}

func (f *fakeSeries) List(context.Context, recorddto.ListInput) ([]recorddto.RecordOutput, error) {
	return nil, nil
}

func (f *fakeSeries) ListRange(context.Context, recorddto.RangeInput) ([]recorddto.RecordOutput, error) {
	return nil, nil
}

func (f *fakeSeries) ListYearMonth(context.Context, recorddto.YearMonthInput) ([]recorddto.RecordOutput, error) {
	return nil, nil
}

func (f *fakeSeries) Series(context.Context, string) ([]recorddto.SeriesPointOutput, error) {
	return f.points, nil
}

func (f *fakeSeries) Update(context.Context, recorddto.UpdateInput) error { return nil }

func (f *fakeSeries) Delete(context.Context, int64) error { return nil }

func TestRenderJoinsSeriesAndAxis(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := make([]recorddto.SeriesPointOutput, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, recorddto.SeriesPointOutput{Date: start.AddDate(0, 0, i), Value: 64.0 + float64(i)})
	}
	svc := service.NewChartService(&fakeSeries{points: points})

	out, err := svc.Render(context.Background(), "weight")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.NoData {
		t.Fatal("series with points should not be marked no-data")
	}
	if len(out.Points) != 10 || len(out.MajorTicks) != 10 {
		t.Fatalf("expected 10 points and 10 ticks, got %d/%d", len(out.Points), len(out.MajorTicks))
	}
	if out.MajorUnit != "day" || out.LabelRotation != 45 {
		t.Fatalf("unexpected axis plan: %+v", out)
	}
	if out.Title == "" {
		t.Fatal("chart should carry a metric title")
	}
}

func TestRenderRejectsUnknownMetric(t *testing.T) {
	t.Parallel()
	svc := service.NewChartService(&fakeSeries{})
	if _, err := svc.Render(context.Background(), "mood"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown metric should be invalid input, got %v", err)
	}
}

func TestRenderEmptySeries(t *testing.T) {
	t.Parallel()
	svc := service.NewChartService(&fakeSeries{})
	out, err := svc.Render(context.Background(), "steps")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !out.NoData {
		t.Fatal("empty series should be marked no-data")
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"daytrack/internal/modules/chart/domain"
	"daytrack/internal/modules/chart/dto"
	recorddomain "daytrack/internal/modules/record/domain"
	recordin "daytrack/internal/modules/record/port/in"
	apperrors "daytrack/internal/platform/errors"
)

// ChartService joins a metric series from the record module with the axis
// plan derived from its date span.
type ChartService struct {
	records recordin.Usecase
}

func NewChartService(records recordin.Usecase) *ChartService {
	return &ChartService{records: records}
}

func (s *ChartService) Render(ctx context.Context, metric string) (dto.ChartOutput, error) {
	m := recorddomain.Metric(metric)
	if err := m.Validate(); err != nil {
		return dto.ChartOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	series, err := s.records.Series(ctx, metric)
	if err != nil {
		return dto.ChartOutput{}, err
	}

	points := make([]dto.PointOutput, 0, len(series))
	dates := make([]time.Time, 0, len(series))
	for _, p := range series {
		points = append(points, dto.PointOutput{Date: p.Date, Value: p.Value})
		dates = append(dates, p.Date)
	}

	plan := domain.BuildTickPlan(dates)
	out := dto.ChartOutput{
		Metric:        metric,
		Title:         m.Label(),
		NoData:        plan.NoData,
		Points:        points,
		MajorUnit:     string(plan.MajorUnit),
		MajorInterval: plan.MajorInterval,
		LabelFormat:   plan.LabelFormat,
		LabelRotation: plan.LabelRotation,
		MinorTicks:    plan.Minor,
	}
	for _, tick := range plan.Major {
		out.MajorTicks = append(out.MajorTicks, dto.TickOutput{Date: tick.Date, Label: tick.Label})
	}
	return out, nil
}

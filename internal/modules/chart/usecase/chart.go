package usecase

import (
	"context"

	"daytrack/internal/modules/chart/dto"
	chartin "daytrack/internal/modules/chart/port/in"
	"daytrack/internal/modules/chart/service"
)

type Interactor struct {
	charts *service.ChartService
}

func NewInteractor(charts *service.ChartService) chartin.Usecase {
	return &Interactor{charts: charts}
}

func (i *Interactor) Render(ctx context.Context, metric string) (dto.ChartOutput, error) {
	return i.charts.Render(ctx, metric)
}

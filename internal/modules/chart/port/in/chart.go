package in

import (
	"context"

	"daytrack/internal/modules/chart/dto"
)

type Usecase interface {
	// Render assembles the series and axis plan for one metric.
	Render(ctx context.Context, metric string) (dto.ChartOutput, error)
}

package in

import (
	"context"

	"daytrack/internal/modules/chart/dto"
	chartin "daytrack/internal/modules/chart/port/in"
)

type CLIHandler struct {
	usecase chartin.Usecase
}

func NewCLIHandler(usecase chartin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Render(ctx context.Context, metric string) (dto.ChartOutput, error) {
	return h.usecase.Render(ctx, metric)
}

package in

import (
	"context"
	"io"

	"daytrack/internal/modules/exchange/dto"
	exchangein "daytrack/internal/modules/exchange/port/in"
)

type CLIHandler struct {
	usecase exchangein.Usecase
}

func NewCLIHandler(usecase exchangein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ImportCSV(ctx context.Context, r io.Reader) (dto.ImportReport, error) {
	return h.usecase.ImportCSV(ctx, r)
}

func (h CLIHandler) ExportCSV(ctx context.Context, w io.Writer, selection dto.Selection) (int, error) {
	return h.usecase.ExportCSV(ctx, w, selection)
}

func (h CLIHandler) ExportJSON(ctx context.Context, w io.Writer, selection dto.Selection) (int, error) {
	return h.usecase.ExportJSON(ctx, w, selection)
}

func (h CLIHandler) TemplateCSV() string {
	return h.usecase.TemplateCSV()
}

func (h CLIHandler) ConvertLegacyCSV(r io.Reader, w io.Writer, year int) (int, error) {
	return h.usecase.ConvertLegacyCSV(r, w, year)
}

package usecase

import (
	"context"
	"io"

	"daytrack/internal/modules/exchange/dto"
	exchangein "daytrack/internal/modules/exchange/port/in"
	"daytrack/internal/modules/exchange/service"
)

type Interactor struct {
	importer *service.ImportService
	exporter *service.ExportService
}

func NewInteractor(importer *service.ImportService, exporter *service.ExportService) exchangein.Usecase {
	return &Interactor{importer: importer, exporter: exporter}
}

func (i *Interactor) ImportCSV(ctx context.Context, r io.Reader) (dto.ImportReport, error) {
	return i.importer.ImportCSV(ctx, r)
}

func (i *Interactor) ExportCSV(ctx context.Context, w io.Writer, selection dto.Selection) (int, error) {
	return i.exporter.ExportCSV(ctx, w, selection)
}

func (i *Interactor) ExportJSON(ctx context.Context, w io.Writer, selection dto.Selection) (int, error) {
	return i.exporter.ExportJSON(ctx, w, selection)
}

func (i *Interactor) TemplateCSV() string {
	return i.importer.TemplateCSV()
}

func (i *Interactor) ConvertLegacyCSV(r io.Reader, w io.Writer, year int) (int, error) {
	return i.importer.ConvertLegacyCSV(r, w, year)
}

package in

import (
	"context"
	"io"

	"daytrack/internal/modules/exchange/dto"
)

type Usecase interface {
	// ImportCSV ingests a template or full-export CSV stream, upserting one
	// record per row.
	ImportCSV(ctx context.Context, r io.Reader) (dto.ImportReport, error)
	// ExportCSV writes the selected records as a full-export CSV and returns
	// the row count.
	ExportCSV(ctx context.Context, w io.Writer, selection dto.Selection) (int, error)
	// ExportJSON writes the selected records as a JSON array and returns the
	// element count.
	ExportJSON(ctx context.Context, w io.Writer, selection dto.Selection) (int, error)
	// TemplateCSV returns the import-template content.
	TemplateCSV() string
	// ConvertLegacyCSV rewrites a legacy offset-based sleep export into the
	// template layout, anchoring month-day dates to the given year. Returns
	// the number of converted rows.
	ConvertLegacyCSV(r io.Reader, w io.Writer, year int) (int, error)
}

package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"daytrack/internal/modules/exchange/domain"
	"daytrack/internal/modules/exchange/dto"
	recorddto "daytrack/internal/modules/record/dto"
	recordin "daytrack/internal/modules/record/port/in"
	apperrors "daytrack/internal/platform/errors"
	"daytrack/internal/platform/parse"
)

// ExportService writes stored records out as full-export CSV or JSON.
type ExportService struct {
	records recordin.Usecase
}

func NewExportService(records recordin.Usecase) *ExportService {
	return &ExportService{records: records}
}

func (s *ExportService) ExportCSV(ctx context.Context, w io.Writer, selection dto.Selection) (int, error) {
	records, err := s.collect(ctx, selection)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(domain.FullExportHeader()); err != nil {
		return 0, fmt.Errorf("write export header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write(exportRow(r)); err != nil {
			return 0, fmt.Errorf("write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush export csv: %w", err)
	}
	return len(records), nil
}

func (s *ExportService) ExportJSON(ctx context.Context, w io.Writer, selection dto.Selection) (int, error) {
	records, err := s.collect(ctx, selection)
	if err != nil {
		return 0, err
	}

	out := make([]exportRecord, 0, len(records))
	for _, r := range records {
		out = append(out, exportRecord{
			ID:             r.ID,
			Date:           r.Date.Format(parse.DateLayout),
			SleepTime:      r.SleepTime,
			Weight:         r.Weight,
			Rating:         r.Rating,
			Steps:          r.Steps,
			CaloriesIntake: r.CaloriesIntake,
			Note:           r.Note,
			CreatedAt:      r.CreatedAt.Format(parse.TimestampLayout),
			UpdatedAt:      r.UpdatedAt.Format(parse.TimestampLayout),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return 0, fmt.Errorf("encode export json: %w", err)
	}
	return len(out), nil
}

func (s *ExportService) collect(ctx context.Context, selection dto.Selection) ([]recorddto.RecordOutput, error) {
	switch selection.Mode {
	case dto.ModeAll:
		return s.records.List(ctx, recorddto.ListInput{})
	case dto.ModeYear:
		if selection.Year < 1 {
			return nil, fmt.Errorf("%w: export year must be positive", apperrors.ErrInvalidInput)
		}
		start := time.Date(selection.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(selection.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return s.records.ListRange(ctx, recorddto.RangeInput{Start: start, End: end})
	case dto.ModeRange:
		return s.records.ListRange(ctx, recorddto.RangeInput{Start: selection.Start, End: selection.End})
	default:
		return nil, fmt.Errorf("%w: unknown export mode %q", apperrors.ErrInvalidInput, selection.Mode)
	}
}

// exportRecord is the JSON shape of one record. Pointer fields keep empty
// metrics as explicit nulls in the output.
type exportRecord struct {
	ID             int64    `json:"id"`
	Date           string   `json:"date"`
	SleepTime      *string  `json:"sleep_time"`
	Weight         *float64 `json:"weight"`
	Rating         *int     `json:"rating"`
	Steps          *int     `json:"steps"`
	CaloriesIntake *int     `json:"calories_intake"`
	Note           *string  `json:"note"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func exportRow(r recorddto.RecordOutput) []string {
	row := []string{
		strconv.FormatInt(r.ID, 10),
		r.Date.Format(parse.DateLayout),
		"", "", "", "", "", "",
		r.CreatedAt.Format(parse.TimestampLayout),
		r.UpdatedAt.Format(parse.TimestampLayout),
	}
	if r.SleepTime != nil {
		row[2] = *r.SleepTime
	}
	if r.Weight != nil {
		row[3] = strconv.FormatFloat(*r.Weight, 'f', 2, 64)
	}
	if r.Rating != nil {
		row[4] = strconv.Itoa(*r.Rating)
	}
	if r.Steps != nil {
		row[5] = strconv.Itoa(*r.Steps)
	}
	if r.CaloriesIntake != nil {
		row[6] = strconv.Itoa(*r.CaloriesIntake)
	}
	if r.Note != nil {
		row[7] = *r.Note
	}
	return row
}

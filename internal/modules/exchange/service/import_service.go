package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"daytrack/internal/modules/exchange/domain"
	"daytrack/internal/modules/exchange/dto"
	recorddto "daytrack/internal/modules/record/dto"
	recordin "daytrack/internal/modules/record/port/in"
	"daytrack/internal/platform/parse"
)

// ImportService turns CSV rows into record upserts. Every row is handled in
// isolation: a cell that fails to parse degrades to an empty field, a row
// whose upsert fails is counted and the import moves on.
type ImportService struct {
	records recordin.Usecase
	log     *zap.Logger
}

func NewImportService(records recordin.Usecase, log *zap.Logger) *ImportService {
	return &ImportService{records: records, log: log}
}

func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (dto.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return dto.ImportReport{}, fmt.Errorf("read csv header: %w", err)
	}
	// Spreadsheet exports often prefix the file with a UTF-8 BOM, which
	// would otherwise corrupt the first header cell.
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	dialect := domain.DetectDialect(header)
	index := dialect.Index(header)

	var report dto.ImportReport
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.Failed++
			s.log.Warn("unreadable csv row", zap.Error(err))
			continue
		}

		raw := index.Extract(record)
		dateText := strings.TrimSpace(raw.Date)
		if dateText == "" {
			continue
		}
		date, err := parse.Date(dateText)
		if err != nil {
			// A row without a usable date cannot target any record; it is
			// skipped without counting toward either total.
			continue
		}

		sleep, _ := parse.SleepTime(raw.SleepTime)
		weight, _ := parse.OptionalFloat(raw.Weight)
		rating, _ := parse.OptionalInt(raw.Rating)
		steps, _ := parse.OptionalInt(raw.Steps)
		calories, _ := parse.OptionalInt(raw.Calories)

		_, err = s.records.Upsert(ctx, recorddto.UpsertInput{
			Date: date,
			Fields: recorddto.FieldsInput{
				SleepTime:      sleep,
				Weight:         weight,
				Rating:         rating,
				Steps:          steps,
				CaloriesIntake: calories,
				Note:           parse.OptionalText(raw.Note),
			},
		})
		if err != nil {
			report.Failed++
			s.log.Error("import row failed", zap.String("date", dateText), zap.Error(err))
			continue
		}
		report.Imported++
	}
	return report, nil
}

// TemplateCSV returns the hand-editable import template.
func (s *ImportService) TemplateCSV() string {
	return domain.TemplateCSV()
}

// ConvertLegacyCSV rewrites a legacy D,S,W export whose S column holds
// signed fractional-hour offsets and whose D column holds MM-DD dates. The
// output is a template-dialect file ready for ImportCSV.
func (s *ImportService) ConvertLegacyCSV(r io.Reader, w io.Writer, year int) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read legacy header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	index := domain.DialectTemplate.Index(header)

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"D", "S", "W", "R", "P", "C", "N"}); err != nil {
		return 0, fmt.Errorf("write template header: %w", err)
	}

	converted := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return converted, fmt.Errorf("read legacy row: %w", err)
		}
		raw := index.Extract(record)

		date := strings.TrimSpace(raw.Date)
		if date != "" && len(date) == len("01-02") {
			date = fmt.Sprintf("%d-%s", year, date)
		}
		row := []string{
			date,
			domain.ConvertSleepOffset(raw.SleepTime),
			strings.TrimSpace(raw.Weight),
			"", "", "", "",
		}
		if err := writer.Write(row); err != nil {
			return converted, fmt.Errorf("write template row: %w", err)
		}
		converted++
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return converted, fmt.Errorf("flush template csv: %w", err)
	}
	return converted, nil
}

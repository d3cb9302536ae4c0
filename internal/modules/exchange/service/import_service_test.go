package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"daytrack/internal/modules/exchange/service"
	recorddto "daytrack/internal/modules/record/dto"
)

// fakeRecords satisfies the record usecase port and captures the calls the
// exchange services make against it.
type fakeRecords struct {
	upserts   []recorddto.UpsertInput
	failDate  string
	rows      []recorddto.RecordOutput
	lastRange recorddto.RangeInput
}

func (f *fakeRecords) Upsert(_ context.Context, in recorddto.UpsertInput) (recorddto.RecordOutput, error) {
	if f.failDate != "" && in.Date.Format("2006-01-02") == f.failDate {
		return recorddto.RecordOutput{}, errors.New("store unavailable")
	}
	f.upserts = append(f.upserts, in)
	return recorddto.RecordOutput{Date: in.Date}, nil
}

func (f *fakeRecords) GetByDate(context.Context, time.Time) (recorddto.RecordOutput, error) {
	return recorddto.RecordOutput{}, errors.New("not implemented")
}

func (f *fakeRecords) List(context.Context, recorddto.ListInput) ([]recorddto.RecordOutput, error) {
	return f.rows, nil
}

func (f *fakeRecords) ListRange(_ context.Context, in recorddto.RangeInput) ([]recorddto.RecordOutput, error) {
	f.lastRange = in
	return f.rows, nil
}

func (f *fakeRecords) ListYearMonth(context.Context, recorddto.YearMonthInput) ([]recorddto.RecordOutput, error) {
	return f.rows, nil
}

func (f *fakeRecords) Series(context.Context, string) ([]recorddto.SeriesPointOutput, error) {
	return nil, nil
}

func (f *fakeRecords) Update(context.Context, recorddto.UpdateInput) error { return nil }

func (f *fakeRecords) Delete(context.Context, int64) error { return nil }

func TestImportTemplateCSV(t *testing.T) {
	t.Parallel()
	records := &fakeRecords{failDate: "2024-01-04"}
	svc := service.NewImportService(records, zap.NewNop())

	// BOM on the first header cell, one row without a date, one row with an
	// unparseable weight, one row whose upsert fails.
	input := "\ufeff" + strings.Join([]string{
		"D,S,W,R,P,C,N",
		"2024-01-01,23:30,65.5,8,8000,2000,早睡",
		",22:00,64.0,7,7000,1900,no date",
		"2024-01-03,23:15,heavy,9,9000,2100,",
		"2024-01-04,23:00,65.0,6,6000,1800,boom",
	}, "\n") + "\n"

	report, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Imported != 2 || report.Failed != 1 {
		t.Fatalf("expected 2 imported and 1 failed, got %+v", report)
	}
	if len(records.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(records.upserts))
	}

	first := records.upserts[0]
	if first.Fields.SleepTime == nil || *first.Fields.SleepTime != "23:30:00" {
		t.Fatalf("sleep time should be normalized to HH:MM:SS, got %v", first.Fields.SleepTime)
	}
	if first.Fields.Rating == nil || *first.Fields.Rating != 8 {
		t.Fatalf("unexpected rating: %v", first.Fields.Rating)
	}
	if first.Fields.Note == nil || *first.Fields.Note != "早睡" {
		t.Fatalf("unexpected note: %v", first.Fields.Note)
	}

	badWeight := records.upserts[1]
	if !badWeight.Date.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", badWeight.Date)
	}
	if badWeight.Fields.Weight != nil {
		t.Fatalf("unparseable weight should degrade to empty, got %v", badWeight.Fields.Weight)
	}
	if badWeight.Fields.Note != nil {
		t.Fatalf("blank note should stay empty, got %v", badWeight.Fields.Note)
	}
}

func TestImportFullExportCSV(t *testing.T) {
	t.Parallel()
	records := &fakeRecords{}
	svc := service.NewImportService(records, zap.NewNop())

	input := strings.Join([]string{
		"ID,日期,入睡时间,体重(kg),评分,步数,卡路里摄入,备注,创建时间,更新时间",
		"3,2024-02-10,22:45:00,64.80,9,9000,1900,散步,2024-02-10 21:00:00,2024-02-11 08:00:00",
		"4,not-a-date,22:00:00,64.00,7,7000,1800,,2024-02-11 21:00:00,2024-02-11 21:00:00",
	}, "\n") + "\n"

	report, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	// The unparseable date is skipped outright, not counted as a failure.
	if report.Imported != 1 || report.Failed != 0 {
		t.Fatalf("expected 1 imported and 0 failed, got %+v", report)
	}

	got := records.upserts[0]
	if got.Fields.Weight == nil || *got.Fields.Weight != 64.8 {
		t.Fatalf("unexpected weight: %v", got.Fields.Weight)
	}
	if got.Fields.Steps == nil || *got.Fields.Steps != 9000 {
		t.Fatalf("unexpected steps: %v", got.Fields.Steps)
	}
}

func TestConvertLegacyCSV(t *testing.T) {
	t.Parallel()
	svc := service.NewImportService(&fakeRecords{}, zap.NewNop())

	input := strings.Join([]string{
		"D,S,W",
		"01-05,-0.43,65.5",
		"01-06,0.5,",
		"01-07,,64.8",
	}, "\n") + "\n"

	var out strings.Builder
	converted, err := svc.ConvertLegacyCSV(strings.NewReader(input), &out, 2023)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if converted != 3 {
		t.Fatalf("expected 3 converted rows, got %d", converted)
	}

	want := strings.Join([]string{
		"D,S,W,R,P,C,N",
		"2023-01-05,23:34,65.5,,,,",
		"2023-01-06,00:30,,,,,",
		"2023-01-07,,64.8,,,,",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
}

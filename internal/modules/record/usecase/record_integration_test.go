package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	recordout "daytrack/internal/modules/record/adapter/out"
	"daytrack/internal/modules/record/dto"
	recordin "daytrack/internal/modules/record/port/in"
	"daytrack/internal/modules/record/service"
	"daytrack/internal/modules/record/usecase"
	apperrors "daytrack/internal/platform/errors"
)

// stepClock advances one second per call so updated_at is strictly
// monotonic across operations.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func newTestUsecase(t *testing.T) (context.Context, recordin.Usecase) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "daytrack.db")
	clk := &stepClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store, err := recordout.NewSQLiteStore(dbPath, clk, zap.NewNop())
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	return context.Background(), usecase.NewInteractor(service.NewRecordService(store))
}

func TestUpsertOverwritesSameDate(t *testing.T) {
	t.Parallel()
	ctx, uc := newTestUsecase(t)

	first, err := uc.Upsert(ctx, dto.UpsertInput{
		Date: day("2024-01-05"),
		Fields: dto.FieldsInput{
			SleepTime: ptr("23:30:00"),
			Weight:    ptr(65.5),
			Rating:    ptr(8),
			Note:      ptr("slept early"),
		},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := uc.Upsert(ctx, dto.UpsertInput{
		Date: day("2024-01-05"),
		Fields: dto.FieldsInput{
			Weight: ptr(66.2),
			Steps:  ptr(8000),
			// sleep, rating, calories, note deliberately absent: the upsert
			// path overwrites them with null.
		},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := uc.List(ctx, dto.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row for the date, got %d", len(all))
	}
	got := all[0]
	if got.Weight == nil || *got.Weight != 66.2 {
		t.Fatalf("weight should hold the second value, got %v", got.Weight)
	}
	if got.Steps == nil || *got.Steps != 8000 {
		t.Fatalf("steps should hold the second value, got %v", got.Steps)
	}
	if got.SleepTime != nil || got.Rating != nil || got.Note != nil {
		t.Fatalf("absent fields should erase stored values, got %+v", got)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updated_at should grow: %s then %s", first.UpdatedAt, second.UpdatedAt)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at should be fixed at first insert: %s then %s", first.CreatedAt, second.CreatedAt)
	}
}

func TestRangeAndYearMonthQueries(t *testing.T) {
	t.Parallel()
	ctx, uc := newTestUsecase(t)

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-01-05", "2024-02-10"} {
		if _, err := uc.Upsert(ctx, dto.UpsertInput{Date: day(d), Fields: dto.FieldsInput{Weight: ptr(64.0)}}); err != nil {
			t.Fatalf("seed %s: %v", d, err)
		}
	}

	ranged, err := uc.ListRange(ctx, dto.RangeInput{Start: day("2024-01-01"), End: day("2024-01-31")})
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("expected 2 rows in January, got %d", len(ranged))
	}
	if !ranged[0].Date.Equal(day("2024-01-01")) || !ranged[1].Date.Equal(day("2024-01-05")) {
		t.Fatalf("range should be ascending and inclusive, got %s %s", ranged[0].Date, ranged[1].Date)
	}

	empty, err := uc.ListRange(ctx, dto.RangeInput{Start: day("2025-01-01"), End: day("2025-12-31")})
	if err != nil {
		t.Fatalf("list empty range: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no rows, got %d", len(empty))
	}

	if _, err := uc.ListRange(ctx, dto.RangeInput{Start: day("2024-02-01"), End: day("2024-01-01")}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("inverted range should be invalid input, got %v", err)
	}

	year, err := uc.ListYearMonth(ctx, dto.YearMonthInput{Year: 2024})
	if err != nil {
		t.Fatalf("list year: %v", err)
	}
	if len(year) != 3 {
		t.Fatalf("expected 3 rows in 2024, got %d", len(year))
	}

	december, err := uc.ListYearMonth(ctx, dto.YearMonthInput{Year: 2023, Month: 12})
	if err != nil {
		t.Fatalf("list december: %v", err)
	}
	if len(december) != 1 || !december[0].Date.Equal(day("2023-12-31")) {
		t.Fatalf("unexpected december rows: %+v", december)
	}
}

func TestSeriesSkipsNullCells(t *testing.T) {
	t.Parallel()
	ctx, uc := newTestUsecase(t)

	seeds := []dto.UpsertInput{
		{Date: day("2024-03-02"), Fields: dto.FieldsInput{Weight: ptr(65.0), SleepTime: ptr("23:30:00")}},
		{Date: day("2024-03-01"), Fields: dto.FieldsInput{Weight: ptr(64.5)}},
		{Date: day("2024-03-03"), Fields: dto.FieldsInput{Rating: ptr(7)}},
	}
	for _, in := range seeds {
		if _, err := uc.Upsert(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.Date, err)
		}
	}

	weights, err := uc.Series(ctx, "weight")
	if err != nil {
		t.Fatalf("weight series: %v", err)
	}
	if len(weights) != 2 {
		t.Fatalf("expected 2 weight points, got %d", len(weights))
	}
	if !weights[0].Date.Equal(day("2024-03-01")) || weights[0].Value != 64.5 {
		t.Fatalf("series should be ascending by date, got %+v", weights[0])
	}

	sleep, err := uc.Series(ctx, "sleep_time")
	if err != nil {
		t.Fatalf("sleep series: %v", err)
	}
	if len(sleep) != 1 || sleep[0].Value != 23.5 {
		t.Fatalf("sleep series should chart fractional hours, got %+v", sleep)
	}

	if _, err := uc.Series(ctx, "note"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("non-chartable column should be invalid input, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx, uc := newTestUsecase(t)

	created, err := uc.Upsert(ctx, dto.UpsertInput{
		Date:   day("2024-04-01"),
		Fields: dto.FieldsInput{Weight: ptr(70.0), Rating: ptr(5)},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := uc.Update(ctx, dto.UpdateInput{ID: created.ID, Fields: dto.FieldsInput{Rating: ptr(9)}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := uc.GetByDate(ctx, day("2024-04-01"))
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Rating == nil || *got.Rating != 9 {
		t.Fatalf("rating should be updated, got %v", got.Rating)
	}
	if got.Weight == nil || *got.Weight != 70.0 {
		t.Fatalf("partial update must not touch weight, got %v", got.Weight)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("update should refresh updated_at")
	}

	if err := uc.Update(ctx, dto.UpdateInput{ID: created.ID}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty update should be invalid input, got %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.GetByDate(ctx, day("2024-04-01")); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("deleted record should be gone, got %v", err)
	}
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("deleting twice should report not found, got %v", err)
	}
}

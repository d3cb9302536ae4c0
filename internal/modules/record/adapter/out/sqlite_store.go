package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"daytrack/internal/modules/record/domain"
	recordout "daytrack/internal/modules/record/port/out"
	"daytrack/internal/platform/clock"
	apperrors "daytrack/internal/platform/errors"
	"daytrack/internal/platform/parse"

	_ "modernc.org/sqlite"
)

// SQLiteStore owns the daily_records table. Connections are acquired from
// the database/sql pool per call; no session state spans operations and no
// operation groups with another into a transaction.
type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
	log   *zap.Logger
}

func NewSQLiteStore(dbPath string, clk clock.Clock, log *zap.Logger) (recordout.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStore{db: db, clock: clk, log: log}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS daily_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL UNIQUE,
  sleep_time TEXT,
  weight REAL,
  rating INTEGER,
  steps INTEGER,
  calories_intake INTEGER,
  note TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create daily_records table: %w", err)
	}
	return nil
}

// Upsert inserts the row for date or overwrites all six measurement fields
// of the existing one, nils included. created_at survives the overwrite;
// updated_at is refreshed on both paths.
func (s *SQLiteStore) Upsert(ctx context.Context, date time.Time, fields domain.Fields) error {
	const stmt = `
INSERT INTO daily_records (date, sleep_time, weight, rating, steps, calories_intake, note, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
  sleep_time=excluded.sleep_time,
  weight=excluded.weight,
  rating=excluded.rating,
  steps=excluded.steps,
  calories_intake=excluded.calories_intake,
  note=excluded.note,
  updated_at=excluded.updated_at;
`
	now := s.clock.Now().Format(domain.TimestampLayout)
	_, err := s.db.ExecContext(ctx, stmt,
		date.Format(domain.DateLayout),
		fields.SleepTime,
		fields.Weight,
		fields.Rating,
		fields.Steps,
		fields.CaloriesIntake,
		fields.Note,
		now,
		now,
	)
	if err != nil {
		s.log.Error("upsert daily record failed",
			zap.String("date", date.Format(domain.DateLayout)),
			zap.Error(err))
		return fmt.Errorf("upsert daily record: %w", err)
	}
	return nil
}

const selectColumns = `id, date, sleep_time, weight, rating, steps, calories_intake, note, created_at, updated_at`

func (s *SQLiteStore) FindByDate(ctx context.Context, date time.Time) (domain.DailyRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM daily_records WHERE date = ?`,
		date.Format(domain.DateLayout))
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DailyRecord{}, apperrors.ErrNotFound
	}
	if err != nil {
		s.log.Error("find daily record failed",
			zap.String("date", date.Format(domain.DateLayout)),
			zap.Error(err))
		return domain.DailyRecord{}, fmt.Errorf("find daily record: %w", err)
	}
	return record, nil
}

func (s *SQLiteStore) List(ctx context.Context, descending bool) ([]domain.DailyRecord, error) {
	order := "ASC"
	if descending {
		order = "DESC"
	}
	return s.queryRecords(ctx,
		`SELECT `+selectColumns+` FROM daily_records ORDER BY date `+order)
}

func (s *SQLiteStore) ListRange(ctx context.Context, start, end time.Time) ([]domain.DailyRecord, error) {
	return s.queryRecords(ctx,
		`SELECT `+selectColumns+` FROM daily_records WHERE date >= ? AND date <= ? ORDER BY date ASC`,
		start.Format(domain.DateLayout), end.Format(domain.DateLayout))
}

// ListYearMonth returns the rows of one month, or of the whole year when
// month is zero. Bounds are half-open on text dates, which sorts correctly
// for the ISO layout.
func (s *SQLiteStore) ListYearMonth(ctx context.Context, year, month int) ([]domain.DailyRecord, error) {
	var start, end string
	switch {
	case month == 0:
		start = fmt.Sprintf("%04d-01-01", year)
		end = fmt.Sprintf("%04d-01-01", year+1)
	case month == 12:
		start = fmt.Sprintf("%04d-12-01", year)
		end = fmt.Sprintf("%04d-01-01", year+1)
	default:
		start = fmt.Sprintf("%04d-%02d-01", year, month)
		end = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}
	return s.queryRecords(ctx,
		`SELECT `+selectColumns+` FROM daily_records WHERE date >= ? AND date < ? ORDER BY date ASC`,
		start, end)
}

// Series extracts one column as (date, value) pairs, skipping null cells.
// The column name comes from the validated Metric set, never from free text.
func (s *SQLiteStore) Series(ctx context.Context, metric domain.Metric) ([]domain.SeriesPoint, error) {
	if err := metric.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	column := string(metric)
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, `+column+` FROM daily_records WHERE `+column+` IS NOT NULL ORDER BY date ASC`)
	if err != nil {
		s.log.Error("series query failed", zap.String("metric", column), zap.Error(err))
		return nil, fmt.Errorf("series %s: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	var points []domain.SeriesPoint
	for rows.Next() {
		var dateText string
		point := domain.SeriesPoint{}
		if metric == domain.MetricSleepTime {
			var value string
			if err := rows.Scan(&dateText, &value); err != nil {
				return nil, fmt.Errorf("scan series row: %w", err)
			}
			hours, err := parse.SleepHours(value)
			if err != nil {
				// A row written outside this tool can hold junk; drop it
				// rather than fail the whole series.
				s.log.Warn("skipping malformed sleep_time cell",
					zap.String("date", dateText), zap.String("value", value))
				continue
			}
			point.Value = hours
		} else {
			if err := rows.Scan(&dateText, &point.Value); err != nil {
				return nil, fmt.Errorf("scan series row: %w", err)
			}
		}
		point.Date, err = time.Parse(domain.DateLayout, dateText)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateText, err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series rows: %w", err)
	}
	return points, nil
}

// Update overwrites only the fields present in the partial, leaving the rest
// of the row untouched. This is the field-level edit path, not the upsert.
func (s *SQLiteStore) Update(ctx context.Context, id int64, fields domain.Fields) error {
	set := make([]string, 0, 7)
	args := make([]any, 0, 8)
	if fields.SleepTime != nil {
		set = append(set, "sleep_time = ?")
		args = append(args, *fields.SleepTime)
	}
	if fields.Weight != nil {
		set = append(set, "weight = ?")
		args = append(args, *fields.Weight)
	}
	if fields.Rating != nil {
		set = append(set, "rating = ?")
		args = append(args, *fields.Rating)
	}
	if fields.Steps != nil {
		set = append(set, "steps = ?")
		args = append(args, *fields.Steps)
	}
	if fields.CaloriesIntake != nil {
		set = append(set, "calories_intake = ?")
		args = append(args, *fields.CaloriesIntake)
	}
	if fields.Note != nil {
		set = append(set, "note = ?")
		args = append(args, *fields.Note)
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: no fields to update", apperrors.ErrInvalidInput)
	}
	set = append(set, "updated_at = ?")
	args = append(args, s.clock.Now().Format(domain.TimestampLayout), id)

	result, err := s.db.ExecContext(ctx,
		`UPDATE daily_records SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		s.log.Error("update daily record failed", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("update daily record: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM daily_records WHERE id = ?`, id)
	if err != nil {
		s.log.Error("delete daily record failed", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete daily record: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...any) ([]domain.DailyRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error("query daily records failed", zap.Error(err))
		return nil, fmt.Errorf("query daily records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.DailyRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily records: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.DailyRecord, error) {
	var (
		record               domain.DailyRecord
		dateText             string
		sleepTime, note      sql.NullString
		weight               sql.NullFloat64
		rating, steps, kcals sql.NullInt64
		createdAt, updatedAt string
	)
	if err := row.Scan(&record.ID, &dateText, &sleepTime, &weight, &rating, &steps, &kcals, &note, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DailyRecord{}, err
		}
		return domain.DailyRecord{}, fmt.Errorf("scan daily record: %w", err)
	}

	var err error
	record.Date, err = time.Parse(domain.DateLayout, dateText)
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("parse stored date %q: %w", dateText, err)
	}
	record.CreatedAt, err = time.Parse(domain.TimestampLayout, createdAt)
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	record.UpdatedAt, err = time.Parse(domain.TimestampLayout, updatedAt)
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}

	if sleepTime.Valid {
		record.SleepTime = &sleepTime.String
	}
	if weight.Valid {
		record.Weight = &weight.Float64
	}
	if rating.Valid {
		v := int(rating.Int64)
		record.Rating = &v
	}
	if steps.Valid {
		v := int(steps.Int64)
		record.Steps = &v
	}
	if kcals.Valid {
		v := int(kcals.Int64)
		record.CaloriesIntake = &v
	}
	if note.Valid {
		record.Note = &note.String
	}
	return record, nil
}

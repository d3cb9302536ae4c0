package domain_test

import (
	"testing"

	"daytrack/internal/modules/exchange/domain"
)

func TestDetectDialect(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		header []string
		want   domain.Dialect
	}{
		{"template", []string{"D", "S", "W", "R", "P", "C", "N"}, domain.DialectTemplate},
		{"template with padding", []string{" D", "S ", "W", "R", "P", "C", "N"}, domain.DialectTemplate},
		{"full export", domain.FullExportHeader(), domain.DialectFullExport},
		{"short header", []string{"D", "S", "W"}, domain.DialectFullExport},
		{"unknown header", []string{"date", "sleep", "weight", "r", "p", "c", "n"}, domain.DialectFullExport},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.DetectDialect(tc.header); got != tc.want {
				t.Fatalf("DetectDialect(%v) = %v, want %v", tc.header, got, tc.want)
			}
		})
	}
}

func TestIndexFollowsHeaderOrder(t *testing.T) {
	t.Parallel()

	// Full exports map by name, so an id-less or reordered file still
	// resolves the data columns.
	header := []string{"日期", "体重(kg)", "入睡时间", "备注"}
	index := domain.DialectFullExport.Index(header)
	if index.Date != 0 || index.Weight != 1 || index.SleepTime != 2 || index.Note != 3 {
		t.Fatalf("unexpected mapping: %+v", index)
	}
	if index.Rating != -1 || index.Steps != -1 || index.Calories != -1 {
		t.Fatalf("absent columns should map to -1: %+v", index)
	}

	raw := index.Extract([]string{"2024-01-05", "65.5", "23:30"})
	if raw.Date != "2024-01-05" || raw.Weight != "65.5" || raw.SleepTime != "23:30" {
		t.Fatalf("unexpected extraction: %+v", raw)
	}
	if raw.Note != "" {
		t.Fatalf("cell past the record end should read empty, got %q", raw.Note)
	}
}

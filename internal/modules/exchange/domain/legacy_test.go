package domain_test

import (
	"testing"

	"daytrack/internal/modules/exchange/domain"
)

func TestConvertSleepOffset(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want string
	}{
		{"-0.07", "23:56"},
		{"-0.28", "23:43"},
		{"-0.33", "23:40"},
		{"-0.43", "23:34"},
		{"-0.83", "23:10"},
		{"-1.0", "23:00"},
		{"0", "00:00"},
		{"0.5", "00:30"},
		{"1.0", "01:00"},
		{"1.25", "01:15"},
		{"", ""},
		{"   ", ""},
		{"late", ""},
	}
	for _, tc := range cases {
		if got := domain.ConvertSleepOffset(tc.raw); got != tc.want {
			t.Errorf("ConvertSleepOffset(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

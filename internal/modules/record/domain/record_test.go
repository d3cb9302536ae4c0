package domain_test

import (
	"testing"
	"time"

	"daytrack/internal/modules/record/domain"
)

func TestMetricValidate(t *testing.T) {
	t.Parallel()
	for _, m := range domain.Metrics() {
		if err := m.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", m, err)
		}
	}
	if err := domain.Metric("note").Validate(); err == nil {
		t.Fatalf("note is not chartable and should fail")
	}
	if err := domain.Metric("weight; DROP TABLE daily_records").Validate(); err == nil {
		t.Fatalf("arbitrary column text should fail")
	}
}

func TestFieldsEmpty(t *testing.T) {
	t.Parallel()
	if !(domain.Fields{}).Empty() {
		t.Fatalf("zero fields should be empty")
	}
	w := 65.5
	if (domain.Fields{Weight: &w}).Empty() {
		t.Fatalf("fields with weight should not be empty")
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, 3, 9, 17, 45, 12, 999, time.FixedZone("x", 3600))
	got := domain.NormalizeDate(in)
	if got.Format(domain.DateLayout) != "2024-03-09" {
		t.Fatalf("unexpected date %s", got)
	}
	if h, m, s := got.Clock(); h+m+s != 0 {
		t.Fatalf("time-of-day should be stripped, got %s", got)
	}
}

func TestValidateRating(t *testing.T) {
	t.Parallel()
	if err := domain.ValidateRating(nil); err != nil {
		t.Fatalf("absent rating is fine: %v", err)
	}
	ok := 10
	if err := domain.ValidateRating(&ok); err != nil {
		t.Fatalf("10 is in range: %v", err)
	}
	bad := 11
	if err := domain.ValidateRating(&bad); err == nil {
		t.Fatalf("11 should be rejected")
	}
}

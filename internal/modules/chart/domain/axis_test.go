package domain_test

import (
	"testing"
	"time"

	"daytrack/internal/modules/chart/domain"
)

func days(start string, count int) []time.Time {
	first, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	out := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, first.AddDate(0, 0, i))
	}
	return out
}

func TestBuildTickPlanShortSpan(t *testing.T) {
	t.Parallel()
	plan := domain.BuildTickPlan(days("2024-03-01", 10))

	if plan.NoData {
		t.Fatal("plan should carry data")
	}
	if plan.MajorUnit != domain.UnitDay || plan.MajorInterval != 1 {
		t.Fatalf("short span should tick every day, got %s/%d", plan.MajorUnit, plan.MajorInterval)
	}
	if plan.LabelRotation != 45 {
		t.Fatalf("labels should rotate 45 degrees, got %d", plan.LabelRotation)
	}
	if len(plan.Major) != 10 {
		t.Fatalf("expected 10 major ticks, got %d", len(plan.Major))
	}
	if plan.Major[0].Label != "03-01" || plan.Major[9].Label != "03-10" {
		t.Fatalf("unexpected labels: %s .. %s", plan.Major[0].Label, plan.Major[9].Label)
	}
	if len(plan.Minor) != 0 {
		t.Fatalf("daily plans need no minors, got %d", len(plan.Minor))
	}
}

func TestBuildTickPlanThinsPastAMonth(t *testing.T) {
	t.Parallel()
	plan := domain.BuildTickPlan(days("2024-03-01", 36))

	if plan.MajorUnit != domain.UnitDay || plan.MajorInterval != 2 {
		t.Fatalf("spans past 30 days should tick every other day, got %s/%d", plan.MajorUnit, plan.MajorInterval)
	}
	if len(plan.Major) != 18 {
		t.Fatalf("expected 18 major ticks, got %d", len(plan.Major))
	}
	if plan.Major[1].Label != "03-03" {
		t.Fatalf("second tick should skip a day, got %s", plan.Major[1].Label)
	}
}

func TestBuildTickPlanLongSpan(t *testing.T) {
	t.Parallel()
	series := days("2024-01-15", 120)
	plan := domain.BuildTickPlan(series)

	if plan.MajorUnit != domain.UnitMonth {
		t.Fatalf("long span should tick monthly, got %s", plan.MajorUnit)
	}
	// 2024-01-15 .. 2024-05-13: month starts within range are Feb-May.
	if len(plan.Major) != 4 {
		t.Fatalf("expected 4 month ticks, got %d", len(plan.Major))
	}
	if plan.Major[0].Label != "2024-02" || plan.Major[3].Label != "2024-05" {
		t.Fatalf("unexpected month labels: %s .. %s", plan.Major[0].Label, plan.Major[3].Label)
	}
	if len(plan.Minor) != 120 {
		t.Fatalf("every day should get a minor tick, got %d", len(plan.Minor))
	}
}

func TestBuildTickPlanEmptySeries(t *testing.T) {
	t.Parallel()
	plan := domain.BuildTickPlan(nil)
	if !plan.NoData {
		t.Fatal("empty series should produce a no-data plan")
	}
	if len(plan.Major) != 0 || len(plan.Minor) != 0 {
		t.Fatalf("no-data plan should carry no ticks: %+v", plan)
	}
}

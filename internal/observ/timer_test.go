package observ_test

import (
	"strings"
	"testing"
	"time"

	"cxlint/internal/observ"
)

func TestTimerPhases(t *testing.T) {
	timer := observ.NewTimer()

	idx := timer.Begin("lex")
	time.Sleep(time.Millisecond)
	timer.End(idx, "one file")

	report := timer.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("got %d phases", len(report.Phases))
	}
	p := report.Phases[0]
	if p.Name != "lex" || p.Note != "one file" {
		t.Errorf("phase = %+v", p)
	}
	if p.DurationMS <= 0 {
		t.Errorf("duration = %v", p.DurationMS)
	}
	if report.TotalMS < p.DurationMS {
		t.Errorf("total %v < phase %v", report.TotalMS, p.DurationMS)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	timer := observ.NewTimer()
	timer.End(3, "nope") // не должно паниковать
	if got := timer.Report(); len(got.Phases) != 0 {
		t.Errorf("phases = %d", len(got.Phases))
	}
}

func TestTimerSummary(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("load")
	timer.End(idx, "")

	s := timer.Summary()
	if !strings.Contains(s, "load") || !strings.Contains(s, "total") {
		t.Errorf("summary:\n%s", s)
	}
}

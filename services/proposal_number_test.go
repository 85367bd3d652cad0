package services

import (
	"testing"
	"time"
)

func TestGenerateProposalNumber(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		expect string
	}{
		{"epoch", time.Unix(0, 0), "PROP-0"},
		{"utc", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), "PROP-1709294400"},
		{"sub_second_ignored", time.Unix(1700000000, 999_000_000), "PROP-1700000000"},
		{"zone_independent", time.Date(2024, time.March, 1, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600)), "PROP-1709294400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateProposalNumber(tt.now)
			if got != tt.expect {
				t.Errorf("GenerateProposalNumber(%v) = %q, want %q", tt.now, got, tt.expect)
			}
		})
	}
}

func TestGenerateProposalNumber_SameSecondCollides(t *testing.T) {
	a := GenerateProposalNumber(time.Unix(1700000000, 1))
	b := GenerateProposalNumber(time.Unix(1700000000, 500))
	if a != b {
		t.Errorf("expected same-second numbers to match, got %q and %q", a, b)
	}
}

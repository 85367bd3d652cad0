package templates

import (
	"context"
	"strings"
	"testing"

	"quotedesk/services"
)

func TestNonEmpty(t *testing.T) {
	got := nonEmpty("a", "", "b", "")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("nonEmpty() = %v, want [a b]", got)
	}
	if got := nonEmpty("", ""); len(got) != 0 {
		t.Errorf("nonEmpty() of blanks = %v, want empty", got)
	}
}

func TestJoinParts(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"", "", ""},
		{"x", "", "x"},
		{"", "y", "y"},
		{"x", "y", "x | y"},
	}
	for _, tt := range tests {
		if got := joinParts(tt.a, tt.b); got != tt.want {
			t.Errorf("joinParts(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestProposalPrint_EscapesAndSkipsBlankLines(t *testing.T) {
	data := &services.ProposalExportData{
		Proposal: services.Proposal{
			Number:     "PROP-7",
			ClientName: `Acme "<b>"`,
			Status:     services.StatusSent,
			Notes:      "pay in 30 days",
		},
		HasCompany: true,
		Company:    services.Company{Name: "Fervid", Phone: "555-0100"},
		IssuedDate: "01/02/2026",
	}

	var sb strings.Builder
	if err := ProposalPrint(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	body := sb.String()

	for _, want := range []string{
		"<title>Proposal PROP-7</title>",
		"Acme &#34;&lt;b&gt;&#34;",
		`data-status="sent"`,
		"<h1>Fervid</h1>",
		"<p>555-0100</p>",
		"<p>pay in 30 days</p>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "<p></p>") {
		t.Error("blank optional field rendered an empty paragraph")
	}
	if strings.Contains(body, `class="logo"`) {
		t.Error("logo rendered without a logo URL")
	}
}

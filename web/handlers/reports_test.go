package handlers

import (
	"errors"
	"testing"

	"github.com/lacsuuuu/ergin-hardware/apperrors"
)

func TestParseReportRange(t *testing.T) {
	r, err := parseReportRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("parseReportRange(valid) error = %v", err)
	}
	if r.Start.Format(reportDateLayout) != "2024-01-01" || r.End.Format(reportDateLayout) != "2024-01-31" {
		t.Errorf("range = %v..%v, want 2024-01-01..2024-01-31", r.Start, r.End)
	}

	// Single-day ranges are inclusive on both ends
	if _, err := parseReportRange("2024-01-15", "2024-01-15"); err != nil {
		t.Errorf("parseReportRange(same day) error = %v, want nil", err)
	}
}

func TestParseReportRangeRejections(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"missing start", "", "2024-01-31"},
		{"missing end", "2024-01-01", ""},
		{"malformed start", "01/01/2024", "2024-01-31"},
		{"malformed end", "2024-01-01", "Jan 31"},
		{"inverted range", "2024-02-01", "2024-01-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseReportRange(tc.start, tc.end)
			if err == nil {
				t.Fatal("parseReportRange() = nil, want validation error")
			}

			var appErr *apperrors.Error
			if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation {
				t.Errorf("error = %v, want kind %q", err, apperrors.KindValidation)
			}
		})
	}
}

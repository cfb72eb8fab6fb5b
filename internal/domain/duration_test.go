package domain

import (
	"errors"
	"testing"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"PT1H2M10S", 3730},
		{"PT45S", 45},
		{"PT2M", 120},
		{"PT1H", 3600},
		{"PT1H10S", 3610},
		{"PT0S", 0},
		// all groups absent is a zero-length video, not an error
		{"PT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseISODuration(tt.token)
			if err != nil {
				t.Fatalf("ParseISODuration(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseISODuration(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseISODurationMalformed(t *testing.T) {
	for _, token := range []string{"garbage", "", "1H2M"} {
		if _, err := ParseISODuration(token); !errors.Is(err, ErrMalformedDuration) {
			t.Errorf("ParseISODuration(%q) error = %v, want ErrMalformedDuration", token, err)
		}
	}
}

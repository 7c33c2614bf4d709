package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0m"},
		{"negative", -5, "0m"},
		{"infinite", math.Inf(1), "0m"},
		{"under a minute rounds", 29, "0m"},
		{"minutes", 125, "2m"},
		{"hours", 3*3600 + 15*60, "3h 15m"},
		{"days", 2*86400 + 3600 + 60, "2d 1h 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.seconds))
		})
	}
}

func TestActivityTitle(t *testing.T) {
	assert.Equal(t, "Woodcutting", activityTitle(domain.ActivityWoodcutting))
}

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkgate/enterprise-api/internal/service"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name string
		cur  float64
		prev float64
		want float64
	}{
		{"positive prior growth", 150, 100, 50},
		{"positive prior decline", 80, 100, -20},
		{"positive prior flat", 100, 100, 0},
		{"zero prior positive current", 80, 0, 100},
		{"zero prior zero current", 0, 0, 0},
		{"negative prior zero current", 0, -50, -100},
		{"negative prior positive current", 50, -100, 150},
		{"negative prior deeper decline", -150, -100, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.GrowthRate(tt.cur, tt.prev)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

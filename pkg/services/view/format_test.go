package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in       int64
		expected string
	}{
		{in: 0, expected: "0"},
		{in: 7, expected: "7"},
		{in: 500, expected: "500"},
		{in: 1000, expected: "1,000"},
		{in: 1234567, expected: "1,234,567"},
		{in: -9876543, expected: "-9,876,543"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatThousands(tt.in))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234,568", FormatMoney(1234567.89))
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$-500", FormatMoney(-500.2))
}

func TestFormatMoneyCompact(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{in: 950, expected: "$950"},
		{in: 1500, expected: "$1.5K"},
		{in: 1500000, expected: "$1.5M"},
		{in: 2345678, expected: "$2.3M"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoneyCompact(tt.in))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "5%", FormatPercent(5))
	assert.Equal(t, "12.4%", FormatPercent(12.4))
	assert.Equal(t, "0%", FormatPercent(0))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "87.2", FormatScore(87.23))
	assert.Equal(t, "100.0", FormatScore(100))
}

package utils

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{9000, "$90.00"},
		{8750, "$87.50"},
		{22500, "$225.00"},
		{196800, "$1,968.00"},
		{123456789, "$1,234,567.89"},
		{-1050, "-$10.50"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.cents); got != tt.want {
			t.Errorf("FormatUSD(%d) = %s, want %s", tt.cents, got, tt.want)
		}
	}
}

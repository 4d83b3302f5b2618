package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessRate(t *testing.T) {
	cases := []struct {
		name    string
		success int64
		total   int64
		want    int
	}{
		{"no transactions", 0, 0, 0},
		{"all failed", 0, 5, 0},
		{"seven of ten", 7, 10, 70},
		{"one of three rounds down", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"all succeeded", 10, 10, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, successRate(tc.success, tc.total))
		})
	}
}

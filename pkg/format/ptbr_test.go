package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nutrimilho/estoque-api/pkg/format"
)

func TestQuantity_MilharesPtBR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"313", "313"},
		{"20685", "20.685"},
		{"1250", "1.250"},
		{"1000000", "1.000.000"},
		{"0.5", "0,5"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, format.Quantity(decimal.RequireFromString(tc.in)))
		})
	}
}

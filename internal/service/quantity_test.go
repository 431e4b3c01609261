package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingMagnitude(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"150g", "150"},
		{"2.5kg", "2.5"},
		{"  150g", "150"},
		{"150 g", "150"},
		{"0.75", "0.75"},
		{"12", "12"},
		{"two cups", "0"},
		{"", "0"},
		{"   ", "0"},
		{"g150", "0"},
		{"-5g", "0"},     // sign is not part of a magnitude
		{".5g", "0"},     // no leading digit
		{"3.l", "3"},     // decimal point without digits stops at the integer
		{"1.2.3", "1.2"}, // only the first decimal form
	}
	for _, tc := range cases {
		got := ParseLeadingMagnitude(tc.in)
		assert.Equal(t, tc.want, got.String(), "input %q", tc.in)
	}
}

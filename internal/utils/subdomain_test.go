package utils

import (
	"strings"
	"testing"
)

func TestIsValidSubdomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"mysite", true},
		{"my-site", true},
		{"site42", true},
		{"a", true},
		{strings.Repeat("a", 63), true},
		{"", false},
		{strings.Repeat("a", 64), false},
		{"-leading", false},
		{"trailing-", false},
		{"UpperCase", false},
		{"has.dot", false},
		{"has space", false},
		{"пример", false},
	}
	for _, tc := range cases {
		if got := IsValidSubdomain(tc.in); got != tc.want {
			t.Errorf("IsValidSubdomain(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

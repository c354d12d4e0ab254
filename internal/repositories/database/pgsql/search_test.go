package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain term untouched", "ahmed", "ahmed"},
		{"percent is literal", "100%", `100\%`},
		{"underscore is literal", "C_001", `C\_001`},
		{"backslash escaped first", `a\b`, `a\\b`},
		{"mixed wildcards", `%_\`, `\%\_\\`},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeLike(tc.in))
		})
	}
}

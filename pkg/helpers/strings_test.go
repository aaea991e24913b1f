package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase words", in: "jane doe", want: "Jane Doe"},
		{name: "already cased", in: "Jane Doe", want: "Jane Doe"},
		{name: "all caps", in: "JANE DOE", want: "Jane Doe"},
		{name: "single word", in: "rex", want: "Rex"},
		{name: "empty", in: "", want: ""},
		{name: "double space preserved", in: "jane  doe", want: "Jane  Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestLowerTrim(t *testing.T) {
	assert.Equal(t, "jane@example.com", LowerTrim("  Jane@Example.COM  "))
	assert.Equal(t, "", LowerTrim("   "))
}

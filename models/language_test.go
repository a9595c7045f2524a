package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "supported hindi", lang: "hi", want: "hi"},
		{name: "supported tamil", lang: "ta", want: "ta"},
		{name: "empty falls back", lang: "", want: DefaultLanguage},
		{name: "unsupported falls back", lang: "fr", want: DefaultLanguage},
		{name: "case sensitive", lang: "HI", want: DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLanguage(tt.lang))
		})
	}
}

func TestIsAwarenessCategory(t *testing.T) {
	assert.True(t, IsAwarenessCategory("banking"))
	assert.True(t, IsAwarenessCategory("general"))
	assert.False(t, IsAwarenessCategory(""))
	assert.False(t, IsAwarenessCategory("Banking"))
	assert.False(t, IsAwarenessCategory("crypto"))
}

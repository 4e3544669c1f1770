package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in       string
		expected bool
	}{
		{"resize", true},
		{"eol_clear", true},
		{"_private", true},
		{"Update2", true},
		{"", false},
		{"2fast", false},
		{"set-title", false},
		{"mode change", false},
		{"nvim::resize", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsIdentifier(tt.in))
		})
	}
}

func TestToKebabCase(t *testing.T) {
	assert.Equal(t, "", ToKebabCase(""))
	assert.Equal(t, "marker", ToKebabCase("Marker"))
	assert.Equal(t, "map-name", ToKebabCase("MapName"))
	assert.Equal(t, "xml-parser", ToKebabCase("XMLParser"))
	assert.Equal(t, "log2-file", ToKebabCase("Log2File"))
}

func TestGetVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	v, err := GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.4.2-dirty"
	v, err = GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "1.4.2-dirty", v)

	Version = "nightly"
	_, err = GetVersion()
	assert.Error(t, err)
}

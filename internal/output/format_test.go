package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatTable, true},
		{FormatYAML, true},
		{FormatJSON, true},
		{OutputFormat("dir"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		valid bool
	}{
		{"table", FormatTable, true},
		{"TABLE", FormatTable, true},
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"JSON", FormatJSON, true},
		{"xml", OutputFormat("xml"), false},
		{"", OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseOutputFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.Valid())
		})
	}
}

func TestOutputFormatString(t *testing.T) {
	assert.Equal(t, "table", FormatTable.String())
	assert.Equal(t, "json", FormatJSON.String())
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"table", "yaml", "json"}, ValidFormats())
}

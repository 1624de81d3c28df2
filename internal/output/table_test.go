package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tbl := NewTable("CODE", "MODEL").
		Row("de", "de_core_news_lg").
		Row("en", "en_core_web_lg")

	out := tbl.String()

	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "de_core_news_lg")
	assert.Contains(t, out, "en_core_web_lg")
}

func TestTable_Empty(t *testing.T) {
	tbl := NewTable("CODE")
	assert.Equal(t, 0, tbl.Len())
	assert.Contains(t, tbl.String(), "CODE")
}

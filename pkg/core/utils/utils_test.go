package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dealStub struct {
	AcquisitionPrice float64 `json:"acquisition_price"`
	ARV              float64 `json:"arv"`
	HoldingMonths    int     `json:"holding_months"`
}

func TestParseDealString_HJSON(t *testing.T) {
	// Comments and unquoted keys, the way analysts actually write the files.
	content := `{
  # courthouse estimate
  acquisition_price: 50000
  arv: 150000
  holding_months: 6
}`
	var d dealStub
	require.NoError(t, ParseDealString(content, &d))
	assert.Equal(t, 50000.0, d.AcquisitionPrice)
	assert.Equal(t, 150000.0, d.ARV)
	assert.Equal(t, 6, d.HoldingMonths)
}

func TestParseDealString_PlainJSON(t *testing.T) {
	var d dealStub
	require.NoError(t, ParseDealString(`{"acquisition_price": 42000, "arv": 99000}`, &d))
	assert.Equal(t, 42000.0, d.AcquisitionPrice)
}

func TestParseDealString_Errors(t *testing.T) {
	var d dealStub
	assert.Error(t, ParseDealString("", &d))
	assert.Error(t, ParseDealString("   \n ", &d))
	assert.Error(t, ParseDealString("{unterminated", &d))
}

func TestParseDealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.hjson")
	require.NoError(t, os.WriteFile(path, []byte("{arv: 120000}"), 0o644))

	var d dealStub
	require.NoError(t, ParseDealFile(path, &d))
	assert.Equal(t, 120000.0, d.ARV)

	err := ParseDealFile(filepath.Join(t.TempDir(), "missing.hjson"), &d)
	assert.ErrorContains(t, err, "read deal file")
}

func TestValidateMarkdown(t *testing.T) {
	assert.True(t, ValidateMarkdown("# Report\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"))
	assert.True(t, ValidateMarkdown(""))
}

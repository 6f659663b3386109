package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/csim/domain"
)

func sampleResponse() *domain.CompareResponse {
	return &domain.CompareResponse{
		InputA: &domain.FileInfo{
			Path:           "testdata/a.c",
			Bytes:          120,
			TokenCount:     42,
			NodeCount:      17,
			SequenceLength: 59,
		},
		InputB: &domain.FileInfo{
			Path:           "testdata/b.c",
			Bytes:          131,
			TokenCount:     44,
			NodeCount:      17,
			SequenceLength: 61,
		},
		Distance:    6,
		Similarity:  0.9016,
		Verdict:     domain.VerdictHighlySimilar,
		Duration:    12,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Version:     "test",
	}
}

func TestFormatCompareResponseText(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatter()

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormatText, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Structural Similarity Report")
	assert.Contains(t, out, "testdata/a.c (120 bytes)")
	assert.Contains(t, out, "testdata/b.c (131 bytes)")
	assert.Contains(t, out, "Edit distance: 6")
	assert.Contains(t, out, "Similarity: 90.2%")
	assert.Contains(t, out, "Highly Similar")
	assert.NotContains(t, out, "tokens", "details are hidden by default")
}

func TestFormatCompareResponseTextWithDetails(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatterWithDetails(true)

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormatText, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A tokens: 42")
	assert.Contains(t, out, "B tokens: 44")
	assert.Contains(t, out, "A sequence length: 59")
}

func TestFormatCompareResponseTextColor(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatterWithOptions(false, true)

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormatText, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, ColorRed+"Highly Similar"+ColorReset)

	buf.Reset()
	plain := NewCompareFormatterWithOptions(false, false)
	require.NoError(t, plain.FormatCompareResponse(sampleResponse(), domain.OutputFormatText, &buf))
	assert.NotContains(t, buf.String(), ColorReset)
}

func TestFormatCompareResponseJSON(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatter()

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormatJSON, &buf)
	require.NoError(t, err)

	var decoded domain.CompareResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 6, decoded.Distance)
	assert.Equal(t, 0.9016, decoded.Similarity)
	assert.Equal(t, domain.VerdictHighlySimilar, decoded.Verdict)
	assert.Equal(t, "testdata/a.c", decoded.InputA.Path)
}

func TestFormatCompareResponseYAML(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatter()

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormatYAML, &buf)
	require.NoError(t, err)

	var decoded domain.CompareResponse
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 6, decoded.Distance)
	assert.Equal(t, domain.VerdictHighlySimilar, decoded.Verdict)
}

func TestFormatCompareResponseCSV(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatter()

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormatCSV, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "record", records[0][0])
	assert.Equal(t, "input_a", records[1][0])
	assert.Equal(t, "testdata/a.c", records[1][1])
	assert.Equal(t, "input_b", records[2][0])
	assert.Equal(t, "summary", records[3][0])
	assert.Equal(t, "6", records[3][6])
	assert.Equal(t, "0.9016", records[3][7])
	assert.Equal(t, "highly-similar", records[3][8])
}

func TestFormatCompareResponseUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatter()

	err := formatter.FormatCompareResponse(sampleResponse(), domain.OutputFormat("html"), &buf)
	assert.Error(t, err)
}

func TestFormatCompareResponseInlineSource(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCompareFormatter()

	response := sampleResponse()
	response.InputA.Path = ""

	err := formatter.FormatCompareResponse(response, domain.OutputFormatText, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "inline source (120 bytes)")
}

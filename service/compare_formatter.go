package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/internal/constants"
)

// CompareFormatterImpl implements the domain.CompareFormatter interface
type CompareFormatterImpl struct {
	utils   *FormatUtils
	details bool
	color   bool
}

// NewCompareFormatter creates a new comparison result formatter
func NewCompareFormatter() *CompareFormatterImpl {
	return &CompareFormatterImpl{utils: NewFormatUtils()}
}

// NewCompareFormatterWithDetails creates a formatter whose text reports
// include per-input token and sequence statistics
func NewCompareFormatterWithDetails(details bool) *CompareFormatterImpl {
	return &CompareFormatterImpl{utils: NewFormatUtils(), details: details}
}

// NewCompareFormatterWithOptions creates a formatter with per-input
// statistics and ANSI-colored verdicts toggled independently. Color only
// makes sense when the text report goes to a terminal.
func NewCompareFormatterWithOptions(details, color bool) *CompareFormatterImpl {
	return &CompareFormatterImpl{utils: NewFormatUtils(), details: details, color: color}
}

// FormatCompareResponse formats a comparison result according to the specified format
func (f *CompareFormatterImpl) FormatCompareResponse(response *domain.CompareResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText:
		return f.formatAsText(response, writer, f.details)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatCSV:
		return f.formatAsCSV(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *CompareFormatterImpl) formatAsText(response *domain.CompareResponse, writer io.Writer, details bool) error {
	var out string

	out += f.utils.FormatMainHeader("Structural Similarity Report")

	out += f.utils.FormatSectionHeader("Inputs")
	out += f.utils.FormatLabelWithIndent(SectionPadding, "A", f.describeInput(response.InputA))
	out += f.utils.FormatLabelWithIndent(SectionPadding, "B", f.describeInput(response.InputB))
	out += "\n"

	if details {
		out += f.utils.FormatSectionHeader("Details")
		out += f.formatInputDetails("A", response.InputA)
		out += f.formatInputDetails("B", response.InputB)
		out += "\n"
	}

	out += f.utils.FormatSectionHeader("Result")
	out += f.utils.FormatLabelWithIndent(SectionPadding, "Edit distance", response.Distance)
	out += f.utils.FormatLabelWithIndent(SectionPadding, "Similarity", f.utils.FormatPercentage(response.Similarity))
	out += f.utils.FormatLabelWithIndent(SectionPadding, "Verdict", f.verdictName(response.Verdict))
	if response.Duration > 0 {
		out += f.utils.FormatLabelWithIndent(SectionPadding, "Duration", f.utils.FormatDuration(response.Duration))
	}

	if _, err := io.WriteString(writer, out); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *CompareFormatterImpl) describeInput(info *domain.FileInfo) string {
	if info == nil {
		return "(none)"
	}
	path := info.Path
	if path == "" {
		path = "inline source"
	}
	return fmt.Sprintf("%s (%d bytes)", path, info.Bytes)
}

func (f *CompareFormatterImpl) formatInputDetails(label string, info *domain.FileInfo) string {
	if info == nil {
		return ""
	}
	var out string
	out += f.utils.FormatLabelWithIndent(SectionPadding, label+" tokens", info.TokenCount)
	out += f.utils.FormatLabelWithIndent(SectionPadding, label+" tree nodes", info.NodeCount)
	out += f.utils.FormatLabelWithIndent(SectionPadding, label+" sequence length", info.SequenceLength)
	return out
}

// verdictName maps the verdict onto its display name, colored when the
// formatter renders for a terminal.
func (f *CompareFormatterImpl) verdictName(verdict domain.Verdict) string {
	name := verdict.String()
	if display, ok := constants.SimilarityVerdictNames[verdict.Band()]; ok {
		name = display
	}
	if f.color {
		return fmt.Sprintf("%s%s%s", f.utils.GetVerdictColor(verdict), name, ColorReset)
	}
	return name
}

// formatAsCSV writes a header row, one row per input, and a summary row.
func (f *CompareFormatterImpl) formatAsCSV(response *domain.CompareResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)

	records := [][]string{
		{"record", "path", "bytes", "tokens", "nodes", "sequence_length", "distance", "similarity", "verdict"},
		f.inputRecord("input_a", response.InputA),
		f.inputRecord("input_b", response.InputB),
		{
			"summary", "", "", "", "", "",
			strconv.Itoa(response.Distance),
			strconv.FormatFloat(response.Similarity, 'f', 4, 64),
			response.Verdict.String(),
		},
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return domain.NewOutputError("failed to write CSV", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.NewOutputError("failed to flush CSV", err)
	}
	return nil
}

func (f *CompareFormatterImpl) inputRecord(name string, info *domain.FileInfo) []string {
	if info == nil {
		return []string{name, "", "", "", "", "", "", "", ""}
	}
	return []string{
		name,
		info.Path,
		strconv.Itoa(info.Bytes),
		strconv.Itoa(info.TokenCount),
		strconv.Itoa(info.NodeCount),
		strconv.Itoa(info.SequenceLength),
		"", "", "",
	}
}

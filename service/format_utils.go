package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/csim/domain"
)

// EncodeJSON renders v as two-space-indented JSON.
func EncodeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data), nil
}

// WriteJSON streams v to w as two-space-indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// WriteYAML streams v to w as YAML, indent 2.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// Layout constants shared by the text report.
const (
	HeaderWidth    = 40
	SectionPadding = 2
)

// ANSI escape sequences for verdict coloring.
const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[31m"
	ColorYellow = "\x1b[33m"
	ColorGreen  = "\x1b[32m"
	ColorCyan   = "\x1b[36m"
	ColorBold   = "\x1b[1m"
)

// FormatUtils renders the shared pieces of the text report.
type FormatUtils struct{}

// NewFormatUtils returns a FormatUtils.
func NewFormatUtils() *FormatUtils {
	return &FormatUtils{}
}

// FormatMainHeader renders the report title with its underline.
func (f *FormatUtils) FormatMainHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(title + "\n")
	builder.WriteString(strings.Repeat("=", HeaderWidth) + "\n\n")
	return builder.String()
}

// FormatSectionHeader renders an upper-cased section title.
func (f *FormatUtils) FormatSectionHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(strings.ToUpper(title) + "\n")
	builder.WriteString(strings.Repeat("-", len(title)) + "\n")
	return builder.String()
}

// FormatLabelWithIndent renders an indented "label: value" line.
func (f *FormatUtils) FormatLabelWithIndent(indent int, label string, value interface{}) string {
	return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", indent), label, value)
}

// FormatPercentage formats a ratio in [0,1] as a percentage
func (f *FormatUtils) FormatPercentage(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FormatDuration renders a millisecond duration.
func (f *FormatUtils) FormatDuration(durationMs int64) string {
	return fmt.Sprintf("%dms", durationMs)
}

// GetVerdictColor returns the color used to render a verdict band
func (f *FormatUtils) GetVerdictColor(verdict domain.Verdict) string {
	switch verdict {
	case domain.VerdictHighlySimilar:
		return ColorRed
	case domain.VerdictModeratelySimilar:
		return ColorYellow
	case domain.VerdictLowSimilarity:
		return ColorCyan
	default:
		return ColorGreen
	}
}

// FormatVerdictWithColor wraps the verdict name in its band color.
func (f *FormatUtils) FormatVerdictWithColor(verdict domain.Verdict) string {
	return fmt.Sprintf("%s%s%s", f.GetVerdictColor(verdict), verdict.String(), ColorReset)
}

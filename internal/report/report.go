// Package report renders editor lists, validation results and failure
// diagnoses for the terminal or for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/edfind/internal/advisor"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/validate"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatTable produces human-readable text output.
	FormatTable Format = "table"
	// FormatJSON produces indented JSON.
	FormatJSON Format = "json"
	// FormatYAML produces YAML.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML.
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat returns the format named s. Empty and "text" select the table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "text":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Reporter formats and writes reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// editorList wraps editors so every format has a top-level object; TOML
// cannot encode a bare array.
type editorList struct {
	Editors []editor.Config `json:"editors" yaml:"editors" toml:"editors"`
}

// Editors writes the editor list.
func (r *Reporter) Editors(editors []editor.Config) error {
	if editors == nil {
		editors = []editor.Config{}
	}
	if r.format != FormatTable {
		return r.encode(editorList{Editors: editors})
	}

	if len(editors) == 0 {
		fmt.Fprintln(r.out, color.YellowString("No editors found."))
		return nil
	}

	rows := make([][]string, 0, len(editors))
	for _, e := range editors {
		marker := ""
		if e.IsDefault {
			marker = "*"
		}
		source := "config"
		if e.IsAutoDiscovered {
			source = "discovered"
		}
		rows = append(rows, []string{marker, e.ID, e.DisplayName, source, e.ExecutablePath})
	}
	r.table([]string{"", "ID", "NAME", "SOURCE", "PATH"}, rows)
	return nil
}

// table writes left-aligned columns. Padding is applied before coloring so
// escape codes do not skew widths.
func (r *Reporter) table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	line := func(cells []string, style func(...any) string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				parts[i] = cell
			} else {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			}
			if style != nil && cell != "" {
				parts[i] = style(parts[i])
			}
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	fmt.Fprintln(r.out, line(header, bold))
	for _, row := range rows {
		var style func(...any) string
		if row[0] == "*" {
			style = green
		}
		fmt.Fprintln(r.out, line(row, style))
	}
}

// validationReport is the machine-readable form of a validation.
type validationReport struct {
	Path       string          `json:"path" yaml:"path" toml:"path"`
	Status     string          `json:"status" yaml:"status" toml:"status"`
	Message    string          `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Code       validate.Code   `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	Suggestion string          `json:"suggestion,omitempty" yaml:"suggestion,omitempty" toml:"suggestion,omitempty"`
	Diagnosis  *advisor.Report `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty" toml:"diagnosis,omitempty"`
}

// Validation writes the outcome of validating path. diag is the advisor's
// report for an Invalid result and may be nil.
func (r *Reporter) Validation(path string, res validate.Result, diag *advisor.Report) error {
	vr := validationReport{Path: path, Diagnosis: diag}
	switch res := res.(type) {
	case validate.Invalid:
		vr.Status = "invalid"
		vr.Message = res.Reason
		vr.Code = res.Code
		vr.Suggestion = res.Suggestion
	case validate.Warning:
		vr.Status = "warning"
		vr.Message = res.Message
	default:
		vr.Status = "valid"
	}

	if r.format != FormatTable {
		return r.encode(vr)
	}

	switch vr.Status {
	case "valid":
		fmt.Fprintln(r.out, color.GreenString("✓ %s is a valid editor", path))
	case "warning":
		fmt.Fprintln(r.out, color.YellowString("⚠ %s", vr.Message))
	default:
		fmt.Fprintln(r.out, color.RedString("✗ %s", vr.Message))
		if diag != nil {
			r.diagnosisText(*diag)
		} else if vr.Suggestion != "" {
			fmt.Fprintf(r.out, "  suggestion: %s\n", vr.Suggestion)
		}
	}
	return nil
}

// Diagnosis writes an advisor report.
func (r *Reporter) Diagnosis(rep advisor.Report) error {
	if r.format != FormatTable {
		return r.encode(rep)
	}
	fmt.Fprintln(r.out, color.RedString("✗ %s", rep.Diagnosis.Message))
	r.diagnosisText(rep)
	return nil
}

func (r *Reporter) diagnosisText(rep advisor.Report) {
	gray := color.New(color.FgHiBlack).SprintFunc()

	d := rep.Diagnosis
	fmt.Fprintf(r.out, "  %s\n", gray(fmt.Sprintf("[%s, %s, %s]", d.Type, d.Category, d.Severity)))
	if d.Technical != "" {
		fmt.Fprintf(r.out, "  details: %s\n", d.Technical)
	}
	if len(d.Causes) > 0 {
		fmt.Fprintln(r.out, "  possible causes:")
		for _, c := range d.Causes {
			fmt.Fprintf(r.out, "    • %s\n", c)
		}
	}
	if rep.Recovery.Suggestion != "" {
		fmt.Fprintf(r.out, "  suggestion: %s\n", rep.Recovery.Suggestion)
	}
}

// encode writes v in a machine-readable format.
func (r *Reporter) encode(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON report")
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML report")
		}
		return errors.Wrap(enc.Close(), "encoding YAML report")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(r.out).Encode(v), "encoding TOML report")
	default:
		return errors.Newf("format %q cannot encode data", r.format)
	}
}

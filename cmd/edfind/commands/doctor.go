package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/edfind/internal/config"
	"github.com/thoreinstein/edfind/internal/doctor"
	"github.com/thoreinstein/edfind/internal/errors"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable permission problems")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose editor and configuration issues",
	Long: `Run diagnostic checks on editor discovery and the edfind configuration.

Checks discovery support for this operating system, lists the editors found,
validates the configured editors and their permissions, and parses the
config file.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Run all checks
  edfind doctor

  # Repair executable permissions
  edfind doctor --fix

See Also: edfind discover, edfind config`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorQuiet, doctorVerbose} {
		if set {
			count++
		}
	}

	if count > 1 {
		return errors.NewUserError(errors.New("flags --json, --quiet, and --verbose are mutually exclusive"), "pick one output mode")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	h := newHost()
	cfg := loadedConfig
	configured := cfg.EditorConfigs(h.Home)
	engine := newEngine(ctx, h, cfg, true)

	perms := doctor.NewExecutablePermissionCheck(h, configured)

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewHostCheck(h))
	runner.AddCheck(doctor.NewEditorDiscoveryCheck(engine, h.Home))
	runner.AddCheck(doctor.NewConfigSyntaxCheck(h.FS, config.FileUsed()))
	runner.AddCheck(doctor.NewConfigLoadCheck(configLoadErr))
	runner.AddCheck(doctor.NewConfiguredEditorsCheck(h, configured, cfg.DefaultEditor, engine))
	runner.AddCheck(perms)

	report := runner.Run(ctx)

	var fixes []doctor.FixResult
	if doctorFix {
		for _, c := range runner.Checks() {
			if f, ok := c.(doctor.Fixer); ok && f.CanFix() {
				fixes = append(fixes, f.Fix()...)
			}
		}
	}

	if err := outputDoctorReport(cmd.OutOrStdout(), report, fixes); err != nil {
		return err
	}

	// Determine exit code based on results
	if report.HasErrors() {
		return errors.NewExitError(nil, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

// doctorOutput is the JSON form of a doctor run.
type doctorOutput struct {
	*doctor.DoctorReport
	Fixes []doctor.FixResult `json:"fixes,omitempty"`
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport, fixes []doctor.FixResult) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doctorOutput{DoctorReport: report, Fixes: fixes}); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		return nil
	}

	outputDoctorText(w, report, fixes)
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport, fixes []doctor.FixResult) {
	// In normal mode, show only errors and warnings
	// In verbose mode, show all checks
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if len(fixes) > 0 {
		fmt.Fprintln(w)
		for _, f := range fixes {
			if f.Fixed {
				fmt.Fprintf(w, "%s fixed %s: %s\n", color.GreenString("✓"), f.Path, f.Description)
			} else {
				fmt.Fprintf(w, "%s could not fix %s: %s\n", color.RedString("✗"), f.Path, f.Description)
			}
		}
	}

	// Print summary
	if hasOutput || showAll || len(fixes) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/edfind/internal/advisor"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/report"
	"github.com/thoreinstein/edfind/internal/validate"
)

var (
	validateType   string
	validateFormat string
)

func init() {
	validateCmd.Flags().StringVar(&validateType, "type", "",
		"expected editor type: vscode, cursor, windsurf, antigravity, catpaw, trae, custom")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "table",
		"output format: table, json, yaml, toml")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check that a path is a usable editor",
	Long: `Check that a path points at a usable editor executable.

An invalid path exits with code 1 and explains what went wrong. A usable
path that looks suspicious, such as a file without the execute bit or an
executable of a different editor than --type, prints a warning.`,
	Example: `  # Validate a path
  edfind validate /usr/local/bin/code

  # Expect a specific editor
  edfind validate ~/bin/cursor --type cursor

See Also: edfind discover, edfind doctor`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	var expected editor.Type
	if validateType != "" {
		t, ok := editor.ParseType(validateType)
		if !ok {
			return errors.NewUserError(errors.Newf("unknown editor type %q", validateType),
				"valid types: vscode, cursor, windsurf, antigravity, catpaw, trae, custom")
		}
		expected = t
	}

	format, err := report.ParseFormat(validateFormat)
	if err != nil {
		return errors.NewUserError(err, "valid formats: table, json, yaml, toml")
	}

	h := newHost()
	res := validate.New(h).Validate(path, expected)

	var diag *advisor.Report
	inv, invalid := res.(validate.Invalid)
	if invalid {
		rep := advisor.DiagnoseValidation(h.GOOS, path, inv)
		diag = &rep
	}

	if err := report.NewReporter(cmd.OutOrStdout(), format).Validation(path, res, diag); err != nil {
		return err
	}

	if invalid {
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

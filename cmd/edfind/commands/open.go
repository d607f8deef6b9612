package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/launch"
	"github.com/thoreinstein/edfind/internal/logging"
	"github.com/thoreinstein/edfind/internal/report"
)

var (
	openLine   int
	openColumn int
	openEditor string
)

func init() {
	openCmd.Flags().IntVarP(&openLine, "line", "l", 0,
		"line to place the cursor on")
	openCmd.Flags().IntVarP(&openColumn, "column", "c", 0,
		"column to place the cursor on (requires --line)")
	openCmd.Flags().StringVarP(&openEditor, "editor", "e", "",
		"editor id to use (default: configured default, then first found)")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a file in an editor",
	Long: `Open a file in a discovered or configured editor.

With --line (and optionally --column) the editor jumps to that position.
When the editor cannot be started, edfind explains the likely cause and how
to recover.`,
	Example: `  # Open in the default editor
  edfind open main.go

  # Jump to a position in Cursor
  edfind open main.go --line 42 --column 7 --editor cursor

See Also: edfind discover, edfind doctor`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	if openColumn > 0 && openLine <= 0 {
		return errors.NewUserError(errors.New("--column requires --line"), "pass --line as well")
	}

	target, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Wrap(err, "resolving file path")
	}

	ctx := cmd.Context()
	h := newHost()
	cfg := loadedConfig

	editors := knownEditors(ctx, h, cfg, discovery.Fast)
	chosen, err := chooseEditor(editors, openEditor)
	if err != nil {
		return err
	}

	launcher := launch.New(h,
		launch.WithStarter(newStarter()),
		launch.WithLogger(logging.FromContext(ctx)),
	)
	rep, err := launcher.OpenWithDiagnosis(ctx, chosen, launch.Target{
		Path:     target,
		Position: editor.Position{Line: openLine, Column: openColumn},
	})
	if err == nil {
		return nil
	}

	if rep != nil {
		if rerr := report.NewReporter(cmd.ErrOrStderr(), report.FormatTable).Diagnosis(*rep); rerr != nil {
			return rerr
		}
		return errors.NewExitError(nil, errors.ExitSystem)
	}
	return errors.NewSystemError(err, "Run: edfind doctor")
}

// chooseEditor picks the editor with id, or the default, or the first one.
func chooseEditor(editors []editor.Config, id string) (editor.Config, error) {
	if id != "" {
		for _, e := range editors {
			if e.ID == id {
				return e, nil
			}
		}
		return editor.Config{}, errors.NewUserError(
			errors.Wrapf(errors.ErrEditorNotFound, "%q", id),
			"list available editors with: edfind discover")
	}

	for _, e := range editors {
		if e.IsDefault {
			return e, nil
		}
	}
	if len(editors) > 0 {
		return editors[0], nil
	}
	return editor.Config{}, errors.NewUserError(errors.ErrEditorNotFound,
		"install an editor or add one under editors: in the config file")
}

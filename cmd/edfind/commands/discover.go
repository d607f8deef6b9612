package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/logging"
	"github.com/thoreinstein/edfind/internal/report"
)

var (
	discoverTier    string
	discoverFormat  string
	discoverDebug   bool
	discoverPick    bool
	discoverRefresh bool
)

// pickEditor selects one editor interactively. Replaced in tests.
var pickEditor = fuzzyPick

var errNoTerminal = errors.New("--pick needs an interactive terminal")

func init() {
	discoverCmd.Flags().StringVarP(&discoverTier, "tier", "t", "",
		"discovery tier: fast, comprehensive, smart (default from config)")
	discoverCmd.Flags().StringVarP(&discoverFormat, "format", "f", "table",
		"output format: table, json, yaml, toml")
	discoverCmd.Flags().BoolVar(&discoverDebug, "debug", false,
		"print each discovery step to stderr")
	discoverCmd.Flags().BoolVar(&discoverPick, "pick", false,
		"choose an editor interactively and print its path")
	discoverCmd.Flags().BoolVar(&discoverRefresh, "refresh", false,
		"ignore the smart tier cache")
	rootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List installed editors",
	Long: `Discover the VS Code-family editors installed on this machine.

Tiers:
  fast           probe editor commands on PATH (5s budget)
  comprehensive  also scan application directories (15s budget)
  smart          comprehensive, cached between runs (30s budget)

Editors configured under editors: in the config file are listed first.`,
	Example: `  # List editors as a table
  edfind discover

  # Machine-readable output
  edfind discover --format json

  # Show what each source found
  edfind discover --tier comprehensive --debug

  # Pick an editor and use its path
  code="$(edfind discover --pick)"

See Also: edfind validate, edfind open`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	cfg := loadedConfig

	tier := cfg.DiscoveryTier()
	if discoverTier != "" {
		t, err := discovery.ParseTier(discoverTier)
		if err != nil {
			return errors.NewUserError(err, "valid tiers: "+joinTiers())
		}
		tier = t
	}

	format, err := report.ParseFormat(discoverFormat)
	if err != nil {
		return errors.NewUserError(err, "valid formats: table, json, yaml, toml")
	}

	ctx := cmd.Context()
	h := newHost()
	engine := newEngine(ctx, h, cfg, discoverRefresh)

	var found []editor.Config
	if discoverDebug {
		found = discoverWithProgress(cmd, engine, tier)
	} else {
		found = engine.Discover(ctx, tier)
	}

	editors := mergeEditors(h, cfg, found)

	if discoverPick {
		return runPick(cmd.OutOrStdout(), editors)
	}

	return report.NewReporter(cmd.OutOrStdout(), format).Editors(editors)
}

// discoverWithProgress runs a debug discovery and blocks until it finishes.
func discoverWithProgress(cmd *cobra.Command, engine *discovery.Engine, tier discovery.Tier) []editor.Config {
	w := cmd.ErrOrStderr()
	done := make(chan []editor.Config, 1)
	engine.DiscoverDebug(cmd.Context(), tier,
		func(msg string) { fmt.Fprintf(w, "[discover] %s\n", msg) },
		func(result []editor.Config) { done <- result },
	)
	return <-done
}

func runPick(w io.Writer, editors []editor.Config) error {
	if len(editors) == 0 {
		return errors.NewUserError(errors.ErrEditorNotFound, "install an editor or add one under editors: in the config file")
	}

	idx, err := pickEditor(editors)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if errors.Is(err, errNoTerminal) {
			return errors.NewUserError(err, "run without --pick to list editors")
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Fprintln(w, editors[idx].ExecutablePath)
	return nil
}

func fuzzyPick(editors []editor.Config) (int, error) {
	if !logging.IsTerminal(os.Stdin) {
		return 0, errNoTerminal
	}
	return fuzzyfinder.Find(
		editors,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", editors[i].DisplayName, editors[i].ID)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			e := editors[i]
			source := "configured"
			if e.IsAutoDiscovered {
				source = "discovered"
			}
			return fmt.Sprintf("Name: %s\nID: %s\nPath: %s\nSource: %s\nDefault: %t",
				e.DisplayName,
				e.ID,
				e.ExecutablePath,
				source,
				e.IsDefault,
			)
		}),
	)
}

func joinTiers() string {
	names := make([]string, 0, len(discovery.Tiers()))
	for _, t := range discovery.Tiers() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

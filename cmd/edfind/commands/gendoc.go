package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/edfind/internal/errors"
)

var (
	genDocDir    string
	genDocFormat string
)

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "markdown or man")
	rootCmd.AddCommand(genDocCmd)
}

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate CLI reference documentation",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func runGenDoc(cmd *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("--dir is required"), "pass an output directory with --dir")
	}
	if err := os.MkdirAll(genDocDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	root := cmd.Root()
	var err error
	switch genDocFormat {
	case "markdown", "md":
		err = doc.GenMarkdownTreeCustom(root, genDocDir, markdownFrontMatter, markdownLink)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{Title: "EDFIND", Section: "1", Source: "edfind " + root.Version}, genDocDir)
	default:
		return errors.NewUserError(errors.Newf("unknown doc format %q", genDocFormat), "use markdown or man")
	}
	if err != nil {
		return errors.Wrapf(err, "generating %s docs", genDocFormat)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Documentation written to %s\n", genDocDir)
	return nil
}

// markdownFrontMatter titles edfind_discover.md as "edfind discover".
func markdownFrontMatter(filename string) string {
	title := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " ")
	return fmt.Sprintf("---\ntitle: %q\ndescription: %q\n---\n\n", title, "Reference for "+title)
}

func markdownLink(name string) string {
	return "/reference/" + strings.ToLower(strings.TrimSuffix(name, ".md")) + "/"
}

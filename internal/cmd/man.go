package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var manCmd = &cobra.Command{
	Use:   "man [directory]",
	Short: "Generate man pages",
	Long: `Generate documentation for comux and its subcommands into the given
directory (default: the current directory). The default format is man
pages suitable for a man1 path, e.g. /usr/local/share/man/man1;
--format markdown writes one markdown file per command instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		switch format {
		case "manpages":
			header := &doc.GenManHeader{
				Title:   "COMUX",
				Section: "1",
				Source:  "comux",
				Manual:  "Comux Manual",
			}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}
		case "markdown":
			if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
				return fmt.Errorf("failed to generate markdown docs: %w", err)
			}
		default:
			return fmt.Errorf("unknown documentation format %q (want manpages or markdown)", format)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "documentation written to %s\n", dir)
		return nil
	},
}

func init() {
	manCmd.Flags().String("format", "manpages", `documentation format: "manpages" or "markdown"`)
	rootCmd.AddCommand(manCmd)
}

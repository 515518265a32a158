package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cssel/pkg/manifest"
	"github.com/matzehuels/cssel/pkg/transcode"
)

// manifestCommand creates the manifest command for building TOML manifests.
func (c *CLI) manifestCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "manifest <file.toml>",
		Short: "Build every named selector in a TOML manifest",
		Long: `Read a TOML manifest of named selectors and combinations, build each
entry, and print the rendered strings. With --output, write a JSON
object mapping names to selectors instead.

Manifest format:

  [selectors.thumbnail]
  element = "img"
  classes = ["preview"]
  pseudo_classes = ["hover"]

  [combinations.gallery-item]
  left = "gallery"
  combinator = ">"
  right = "thumbnail"`,
		Example: `  cssel manifest selectors.toml
  cssel manifest selectors.toml --output built.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			built, err := m.Build()
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Built %d selectors", len(built)))

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				if err := transcode.Write(built, f); err != nil {
					return err
				}
				printSuccess("Manifest built")
				printFile(output)
				return nil
			}

			names := make([]string, 0, len(built))
			for name := range built {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				printKeyValue(name, built[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write a JSON name→selector map to this file")

	return cmd
}

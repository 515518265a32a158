package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cssel/pkg/transcode"
)

// buildResult is the JSON payload emitted by build --json.
type buildResult struct {
	Selector string `json:"selector"`
}

// buildCommand creates the build command for assembling a compound selector.
func (c *CLI) buildCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "build kind=value [kind=value...]",
		Short: "Build a compound selector from ordered fragments",
		Long: `Build a compound CSS selector by applying kind=value fragments in
argument order. Kinds: element, id, class, attr, pseudo-class, pseudo-element.

Fragments must follow the fixed order (element, id, class, attribute,
pseudo-class, pseudo-element); element, id and pseudo-element may each
appear at most once. Violations fail with a non-zero exit status.`,
		Example: `  # a#b.c[d]:e::f
  cssel build element=a id=b class=c attr=d pseudo-class=e pseudo-element=f

  # Repeated classes are fine
  cssel build id=main class=container class=editable

  # Attribute values pass through verbatim
  cssel build element=a 'attr=href$=".png"' pseudo-class=focus`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseFragments(args)
			if err != nil {
				return err
			}
			text, err := sel.Stringify()
			if err != nil {
				return err
			}

			c.Logger.Debug("selector built", "fragments", len(args), "selector", text)

			if jsonOut {
				return transcode.Write(buildResult{Selector: text}, cmd.OutOrStdout())
			}
			printSuccess("Selector built")
			printKeyValue("Selector", text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of styled output")

	return cmd
}

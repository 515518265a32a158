package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cssel/pkg/selector"
	"github.com/matzehuels/cssel/pkg/transcode"
)

// combineCommand creates the combine command for joining two built selectors.
func (c *CLI) combineCommand() *cobra.Command {
	var left, right []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "combine <combinator>",
		Short: "Join two built selectors with a combinator",
		Long: `Build two selectors from --left and --right fragment lists and join
them with the given combinator token. The token is passed through
verbatim; it is not checked against the four CSS combinators.`,
		Example: `  # div#main + span
  cssel combine + --left element=div --left id=main --right element=span

  # Descendant combinator (quoted space)
  cssel combine ' ' --left element=ul --right element=li`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(left) == 0 || len(right) == 0 {
				return fmt.Errorf("both --left and --right require at least one fragment")
			}

			l, err := parseFragments(left)
			if err != nil {
				return fmt.Errorf("left operand: %w", err)
			}
			r, err := parseFragments(right)
			if err != nil {
				return fmt.Errorf("right operand: %w", err)
			}

			text, err := selector.Combine(l, args[0], r).Stringify()
			if err != nil {
				return err
			}

			if jsonOut {
				return transcode.Write(buildResult{Selector: text}, cmd.OutOrStdout())
			}
			printSuccess("Selectors combined")
			printKeyValue("Selector", text)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&left, "left", nil, "left operand fragment, kind=value (repeatable)")
	cmd.Flags().StringArrayVar(&right, "right", nil, "right operand fragment, kind=value (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of styled output")

	return cmd
}

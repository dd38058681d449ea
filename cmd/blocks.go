package cmd

import (
	"github.com/chrisjonesBSU/polyply-1.0/internal/polyply"
	"github.com/spf13/cobra"
)

// blocksCmd is for listing the blocks of a force field
var blocksCmd = &cobra.Command{
	Use:                        "blocks",
	Short:                      "List the blocks in a force field",
	Run:                        polyply.BlocksCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"ls"},
}

func init() {
	blocksCmd.Flags().StringP("ff", "f", "", "force field file with blocks <YAML>")

	RootCmd.AddCommand(blocksCmd)
}

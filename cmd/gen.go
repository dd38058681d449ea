package cmd

import (
	"github.com/chrisjonesBSU/polyply-1.0/internal/polyply"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// genCmd is for building the fine-grained molecules of a list of meta-molecules
var genCmd = &cobra.Command{
	Use:                        "gen",
	Short:                      "Build fine-grained molecules from meta-molecules and a force field",
	Run:                        polyply.GenCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Build the fine-grained molecule of each meta-molecule in a file.

Every residue is matched to a block of the force field: by its resname, or, when
it has "from_itp", to the multi-residue block that it and its bonded "from_itp"
neighbors are part of. Blocks are merged into one molecule per meta-molecule
and each residue keeps a graph of its own atoms.

Blocks with different exclusion distances (nrexcl) are lowered to the smallest
one, and their atoms are tagged with "exclude" so links can restore the rest.`,
	Aliases: []string{"build", "make"},
}

// set flags
func init() {
	// Flags for specifying the paths to the input files and output file
	genCmd.Flags().StringP("ff", "f", "", "force field file with blocks <YAML>")
	genCmd.Flags().StringP("meta", "p", "", "meta-molecule file <YAML>")
	genCmd.Flags().StringP("out", "o", "", "output file name <JSON>, stdout if empty")
	genCmd.Flags().IntP("workers", "w", 1, "number of molecules to build at once")
	genCmd.Flags().Bool("shared-library", false, "lower nrexcl on the force field itself, rather than per molecule")
	genCmd.Flags().Bool("indent", true, "indent the JSON output")

	viper.BindPFlag("workers", genCmd.Flags().Lookup("workers"))
	viper.BindPFlag("shared-library", genCmd.Flags().Lookup("shared-library"))
	viper.BindPFlag("indent", genCmd.Flags().Lookup("indent"))

	RootCmd.AddCommand(genCmd)
}

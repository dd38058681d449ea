package polyply

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/chrisjonesBSU/polyply-1.0/config"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "ff", "meta" and "out"
type Flags struct {
	// path to the force field file
	ff string

	// path to the meta-molecule file
	meta string

	// the name of the file to write the output to
	out string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(ff, meta, out string) *Flags {
	return &Flags{ff: ff, meta: meta, out: out}
}

// parseCmdFlags gathers the force field, meta-molecule and output paths
// from a cobra cmd object
func parseCmdFlags(cmd *cobra.Command) (*Flags, error) {
	var err error
	fs := &Flags{}

	if fs.ff, err = cmd.Flags().GetString("ff"); err != nil || fs.ff == "" {
		return nil, fmt.Errorf("no force field file set [-f]")
	}
	if fs.meta, err = cmd.Flags().GetString("meta"); err != nil || fs.meta == "" {
		return nil, fmt.Errorf("no meta-molecule file set [-p]")
	}
	fs.out, _ = cmd.Flags().GetString("out")

	return fs, nil
}

// GenCmd takes a cobra command (with its flags) and runs Gen
func GenCmd(cmd *cobra.Command, args []string) {
	flags, err := parseCmdFlags(cmd)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	output, err := Gen(cmd.Context(), flags, config.New())
	if err != nil {
		stderr.Fatal(err)
	}
	if flags.out == "" {
		fmt.Println(string(output))
	}
}

// Gen builds the fine-grained molecule of every meta-molecule in the
// flags' meta-molecule file and writes the result as JSON.
func Gen(ctx context.Context, flags *Flags, conf *config.Config) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	ff, err := ReadForceField(flags.ff)
	if err != nil {
		return nil, err
	}
	mms, err := ReadMetaMolecules(flags.meta)
	if err != nil {
		return nil, err
	}
	if conf.Verbose {
		stderr.Printf("read %d blocks from %s and %d meta-molecules", len(ff.Blocks), ff.Name, len(mms))
	}

	var opts []Option
	if conf.SharedLibrary {
		opts = append(opts, WithSharedLibrary())
	}
	processed, err := RunSystem(ctx, NewMapToMolecule(ff, opts...), mms, conf.Workers)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	if conf.Verbose {
		for _, mm := range processed {
			stderr.Printf("%s: %d residues, %d atoms, nrexcl %d", mm.Name, mm.Len(), mm.Molecule.Len(), mm.Molecule.Nrexcl)
		}
		stderr.Printf("%s", elapsed)
	}

	return writeJSON(flags.out, ff.Name, processed, elapsed.Seconds(), conf.Indent)
}

// BlocksCmd lists the blocks of a force field
func BlocksCmd(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("ff")
	if path == "" {
		cmd.Help()
		stderr.Fatal("no force field file set [-f]")
	}

	ff, err := ReadForceField(path)
	if err != nil {
		stderr.Fatal(err)
	}
	listBlocks(os.Stdout, ff)
}

// listBlocks writes a table of the force field's blocks
func listBlocks(w io.Writer, ff *molecule.ForceField) {
	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "block\tatoms\tresidues\tnrexcl\t\n")
	for _, name := range ff.Names() {
		b := ff.Blocks[name]
		fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t\n", name, b.Len(), len(b.Resids()), b.Nrexcl)
	}
	writer.Flush()
}

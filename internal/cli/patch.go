package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/extplan/internal/fsops"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

const patchUsage = "usage: fix-libev-config <pyproject> <include> <lib>"

var patchCmd = &cobra.Command{
	Use:   "patch <pyproject> <include> <lib>",
	Short: "Print pyproject.toml with the libev locations replaced",
	Long: `Read a pyproject.toml, replace libev-includes and libev-libs in the
[tool.cassandra-driver] table with the given single directories, and print
the resulting document to stdout. The input file is not modified.`,
	Args: patchArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPatch(args, cmd.OutOrStdout())
	},
}

// patchArgs requires the three positionals; extra arguments are ignored.
func patchArgs(_ *cobra.Command, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: expected <pyproject> <include> <lib>, got %d argument(s)", ErrArguments, len(args))
	}
	return nil
}

func runPatch(args []string, stdout io.Writer) error {
	out, err := pyproject.PatchFile(fsops.NewRealFS(), args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// RunPatch is the entry point of the standalone fix-libev-config binary.
// It returns the process exit status.
func RunPatch(args []string, stdout, stderr io.Writer) int {
	if err := patchArgs(nil, args); err != nil {
		fmt.Fprintln(stderr, patchUsage)
		return ExitCode(err)
	}
	if err := runPatch(args, stdout); err != nil {
		fmt.Fprintln(stderr, FormatError(err))
		return ExitCode(err)
	}
	return ExitOK
}

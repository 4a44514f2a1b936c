package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/extplan/internal/platform"
)

var profilePython string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the detected platform profile",
	Long: `Detect and print the platform facts every planning decision is made against:
operating system family, interpreter family, platform support and byte order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		profile := platform.Detect(commandContext(cmd), newProber(s))

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), profile)
		}
		printProfile(cmd.OutOrStdout(), profile)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&profilePython, "python", "", "Interpreter to probe for platform facts (\"none\" uses Go runtime facts)")
}

func printProfile(w io.Writer, p platform.Profile) {
	byteOrder := "little"
	if !p.LittleEndian {
		byteOrder = "big"
	}

	printSection(w, "Platform")
	printLabelValue(w, "Platform", p.Platform)
	printLabelValue(w, "OS family", string(p.OS))
	printLabelValue(w, "Interpreter", string(p.Interpreter))
	printLabelValue(w, "Supported", fmt.Sprintf("%t", p.SupportedPlatform))
	printLabelValue(w, "Byte order", byteOrder)
	printLabelValue(w, "Source", p.Source)
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/extplan/internal/config"
	"github.com/danieljhkim/extplan/internal/cythonize"
	"github.com/danieljhkim/extplan/internal/fsops"
	"github.com/danieljhkim/extplan/internal/planner"
	"github.com/danieljhkim/extplan/internal/platform"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

var (
	planConfigPath string
	planPython     string
	planCython     string
	planOutputPath string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the extension build plan",
	Long: `Load the build policy from pyproject.toml, detect the platform and compute
the ordered list of compiled extensions to build.

Features that are disabled, unsupported on this platform, or that fail to
cythonize are reported but never make the command fail.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("config") {
			s.PyProject = s.Resolve(planConfigPath)
		}
		if cmd.Flags().Changed("cython") {
			s.Cython = planCython
		}

		ctx := commandContext(cmd)
		fs := fsops.NewRealFS()

		exists, err := fs.Exists(s.PyProject)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", s.PyProject, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s not found (use --config or $%s)", pyproject.ErrConfigLoad, s.PyProject, config.EnvPyProject)
		}

		cfg, err := pyproject.Load(fs, s.PyProject)
		if err != nil {
			return err
		}

		profile := platform.Detect(ctx, newProber(s))
		expander := cythonize.NewCythonExpander(s.ProjectDir, s.Cython, fs)

		plan, err := planner.New(expander).Plan(ctx, profile, cfg)
		if err != nil {
			return err
		}

		if planOutputPath != "" {
			data, err := formatJSON(plan)
			if err != nil {
				return fmt.Errorf("failed to encode plan: %w", err)
			}
			if err := fs.AtomicWrite(planOutputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write plan to %s: %w", planOutputPath, err)
			}
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, plan)
		}

		printPlan(out, plan)
		if planOutputPath != "" {
			printSuccess(out, fmt.Sprintf("Plan written to %s", planOutputPath))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to pyproject.toml (default: <project>/pyproject.toml)")
	planCmd.Flags().StringVar(&planPython, "python", "", "Interpreter to probe for platform facts (\"none\" uses Go runtime facts)")
	planCmd.Flags().StringVar(&planCython, "cython", "", "Cython tool name or path (default: cython, then cython3)")
	planCmd.Flags().StringVarP(&planOutputPath, "output", "o", "", "Also write the JSON plan to this file")
}

func printPlan(w io.Writer, plan *planner.BuildPlan) {
	printProfile(w, plan.Profile)

	if len(plan.Advisories) > 0 {
		fmt.Fprintln(w)
		for _, advisory := range plan.Advisories {
			printWarning(w, advisory)
		}
	}

	printSection(w, fmt.Sprintf("Targets (%s)", pluralize(len(plan.Targets), "extension", "extensions")))
	if plan.IsEmpty() {
		printEmptyState(w, "No compiled extensions; the driver installs as pure Python")
	} else {
		rows := make([][]string, 0, len(plan.Targets))
		for _, t := range plan.Targets {
			rows = append(rows, []string{t.Name, strings.Join(t.Sources, ", "), strings.Join(t.Libraries, ", ")})
		}
		printTable(w, []string{"MODULE", "SOURCES", "LIBRARIES"}, rows)
	}

	printSection(w, "Features")
	for _, o := range plan.Outcomes {
		if o.Contributed() {
			printSuccess(w, fmt.Sprintf("%s: %s", o.Feature, pluralize(len(o.Targets), "target", "targets")))
			continue
		}
		printSkipped(w, fmt.Sprintf("%s: %s (%s)", o.Feature, o.Absence.Reason, o.Absence.Kind))
	}
}

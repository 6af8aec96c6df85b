package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsforge/skillindex/pkg/index"
	"github.com/docsforge/skillindex/pkg/presenter"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Strictly validate every skill descriptor under the root directory",
	Long: `Validate runs a strict pass over the skill tree. Unlike build, which
tolerates malformed frontmatter, validate requires every SKILL.md to carry
valid YAML frontmatter with non-empty name and description fields. The
command exits non-zero when any descriptor fails.`,
	Run: func(cmd *cobra.Command, _ []string) {
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			root = "."
		}
		validateSkills(cmd, root)
	},
}

func init() {
	validateCmd.Flags().StringP("root", "r", ".", "Root directory containing skill packages")
}

func validateSkills(cmd *cobra.Command, root string) {
	builder, err := index.New()
	if err != nil {
		presenter.Error(err, "Failed to configure index builder")
		os.Exit(1)
	}

	problems, err := builder.Lint(cmd.Context(), root)
	if err != nil {
		presenter.Error(err, "Failed to validate skill packages")
		os.Exit(1)
	}

	if len(problems) == 0 {
		presenter.Success("All skill descriptors are valid")
		return
	}

	for _, problem := range problems {
		presenter.Error(problem.Err, problem.Folder)
	}
	presenter.Warning(fmt.Sprintf("%d descriptor(s) failed validation", len(problems)))
	os.Exit(1)
}

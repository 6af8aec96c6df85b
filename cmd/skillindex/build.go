package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsforge/skillindex/pkg/index"
	"github.com/docsforge/skillindex/pkg/presenter"
)

type BuildConfig struct {
	Root       string
	Output     string
	RefPattern string
}

func NewBuildConfig() *BuildConfig {
	return &BuildConfig{
		Root:       ".",
		Output:     "",
		RefPattern: index.DefaultReferencePattern,
	}
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the skills index and write it to disk",
	Long: `Build scans the root directory for skill packages, collects each package's
name, description, and reference documents, and writes the consolidated JSON
index. The output path defaults to docs/skills.json under the root.

Examples:
  skillindex build
  skillindex build --root ./skills
  skillindex build --root ./skills --output site/skills.json`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getBuildConfigFromFlags(cmd)
		runBuild(cmd.Context(), config)
	},
}

func init() {
	defaults := NewBuildConfig()
	buildCmd.Flags().StringP("root", "r", defaults.Root, "Root directory containing skill packages")
	buildCmd.Flags().StringP("output", "o", defaults.Output, "Output path (default <root>/docs/skills.json)")
	buildCmd.Flags().String("ref-pattern", defaults.RefPattern, "Glob pattern for reference documents")
}

func getBuildConfigFromFlags(cmd *cobra.Command) *BuildConfig {
	config := NewBuildConfig()
	if root, err := cmd.Flags().GetString("root"); err == nil {
		config.Root = root
	}
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	if pattern, err := cmd.Flags().GetString("ref-pattern"); err == nil {
		config.RefPattern = pattern
	}
	return config
}

func (c *BuildConfig) outputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return index.DefaultOutputPath(c.Root)
}

func runBuild(ctx context.Context, config *BuildConfig) {
	builder, err := index.New(index.WithReferencePattern(config.RefPattern))
	if err != nil {
		presenter.Error(err, "Failed to configure index builder")
		os.Exit(1)
	}

	skills, err := builder.Build(ctx, config.Root)
	if err != nil {
		presenter.Error(err, "Failed to build skills index")
		os.Exit(1)
	}

	output := config.outputPath()
	if err := index.Write(skills, output); err != nil {
		presenter.Error(err, "Failed to write skills index")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Built skills index: %s", output))
	presenter.Info(fmt.Sprintf("   Found %d skill(s)", len(skills)))
	for _, skill := range skills {
		presenter.Info(fmt.Sprintf("   - %s", skill.Name))
	}
}

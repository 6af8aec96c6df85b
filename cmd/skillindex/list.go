package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docsforge/skillindex/pkg/index"
	"github.com/docsforge/skillindex/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skill packages found under the root directory",
	Long:  `List all skill packages with their names, folders, reference counts, and descriptions.`,
	Run: func(cmd *cobra.Command, _ []string) {
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			root = "."
		}
		listSkills(cmd, root)
	},
}

func init() {
	listCmd.Flags().StringP("root", "r", ".", "Root directory containing skill packages")
}

func listSkills(cmd *cobra.Command, root string) {
	builder, err := index.New()
	if err != nil {
		presenter.Error(err, "Failed to configure index builder")
		os.Exit(1)
	}

	skills, err := builder.Build(cmd.Context(), root)
	if err != nil {
		presenter.Error(err, "Failed to scan skill packages")
		os.Exit(1)
	}

	if len(skills) == 0 {
		presenter.Info("No skills found")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFOLDER\tREFS\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t----\t-----------")

	for _, skill := range skills {
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", skill.Name, skill.Folder, len(skill.References), description)
	}
	tw.Flush()
}

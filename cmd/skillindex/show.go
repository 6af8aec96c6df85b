package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/docsforge/skillindex/pkg/frontmatter"
	"github.com/docsforge/skillindex/pkg/index"
	"github.com/docsforge/skillindex/pkg/presenter"
)

type ShowConfig struct {
	Root  string
	Width int
	Plain bool
}

func NewShowConfig() *ShowConfig {
	return &ShowConfig{
		Root:  ".",
		Width: 100,
		Plain: false,
	}
}

var showCmd = &cobra.Command{
	Use:   "show <folder>",
	Short: "Render a skill's SKILL.md body in the terminal",
	Long: `Show reads the descriptor of the named skill package, strips its
frontmatter, and renders the markdown body.

Examples:
  skillindex show pdf-processing
  skillindex show pdf-processing --plain`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getShowConfigFromFlags(cmd)
		showSkill(args[0], config)
	},
}

func init() {
	defaults := NewShowConfig()
	showCmd.Flags().StringP("root", "r", defaults.Root, "Root directory containing skill packages")
	showCmd.Flags().IntP("width", "w", defaults.Width, "Word-wrap width for rendered output")
	showCmd.Flags().Bool("plain", defaults.Plain, "Print the raw markdown body without rendering")
}

func getShowConfigFromFlags(cmd *cobra.Command) *ShowConfig {
	config := NewShowConfig()
	if root, err := cmd.Flags().GetString("root"); err == nil {
		config.Root = root
	}
	if width, err := cmd.Flags().GetInt("width"); err == nil {
		config.Width = width
	}
	if plain, err := cmd.Flags().GetBool("plain"); err == nil {
		config.Plain = plain
	}
	return config
}

func showSkill(folder string, config *ShowConfig) {
	descriptor := filepath.Join(config.Root, folder, index.SkillFileName)

	raw, err := os.ReadFile(descriptor)
	if err != nil {
		if os.IsNotExist(err) {
			presenter.Error(errors.Errorf("no %s found in %s", index.SkillFileName, filepath.Join(config.Root, folder)), "Skill not found")
		} else {
			presenter.Error(err, "Failed to read descriptor")
		}
		os.Exit(1)
	}

	_, body := frontmatter.Parse(string(raw))

	if config.Plain {
		fmt.Print(body)
		return
	}

	rendered, err := renderMarkdown(body, config.Width)
	if err != nil {
		presenter.Error(err, "Failed to render markdown")
		os.Exit(1)
	}
	fmt.Print(rendered)
}

func renderMarkdown(content string, width int) (string, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
	}
	if width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to create renderer")
	}

	return renderer.Render(content)
}

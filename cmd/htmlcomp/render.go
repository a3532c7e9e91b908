package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justinyaodu/htmlcomp/internal/config"
	"github.com/justinyaodu/htmlcomp/pkg/elements"
	"github.com/justinyaodu/htmlcomp/pkg/htmlcomp"
)

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render source pages to static HTML",
		Long: `Render component pages to static HTML.

With no arguments, every .html page in the configured source
directory is rendered into the output directory, preserving the
directory layout. With file arguments, each named page is rendered
to standard output.

Examples:
  htmlcomp render
  htmlcomp render --output=dist
  htmlcomp render pages/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = output
			}

			elements.Register()

			if len(args) > 0 {
				return renderFiles(args)
			}
			return renderDir(cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from htmlcomp.json)")

	return cmd
}

// renderFiles renders each named page to standard output.
func renderFiles(paths []string) error {
	for _, path := range paths {
		html, err := renderFile(path)
		if err != nil {
			return err
		}
		fmt.Println(html)
	}
	return nil
}

// renderDir renders every source page into the output directory.
func renderDir(cfg *config.Config) error {
	sourceDir := cfg.SourcePath()
	outputDir := cfg.OutputPath()

	var count int
	err := filepath.Walk(sourceDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		html, err := renderFile(path)
		if err != nil {
			return err
		}

		dest := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(html), 0o644); err != nil {
			return err
		}

		count++
		info("%s (%d bytes)", rel, len(html))
		return nil
	})
	if err != nil {
		return err
	}

	success("Rendered %d page(s) to %s", count, cfg.Output)
	return nil
}

// renderFile parses and renders one source page.
func renderFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	root, err := htmlcomp.Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	html, err := htmlcomp.String(root)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	return html, nil
}

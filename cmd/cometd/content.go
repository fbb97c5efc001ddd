package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cometholdings/comet/content"
	"github.com/cometholdings/comet/sections"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate and export site content",
}

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check content files and section timing files",
	Long: `Parses each content file and reports every validation problem.
Use --timing to also check a section timing file.

Example:
  cometd content validate site.yaml --timing timing.yaml`,
	Args: func(cmd *cobra.Command, args []string) error {
		timing, _ := cmd.Flags().GetString("timing")
		if len(args) == 0 && timing == "" {
			return fmt.Errorf("requires at least one content file or --timing")
		}
		return nil
	},
	RunE: runValidate,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Print content as yaml, json or a markdown inventory",
	Long: `Exports a content file, or the built-in content when no file is
given. Formats:
  yaml       content file format, ready to edit
  json       the /api/content payload
  inventory  every piece of copy as markdown (--render styles it for
             the terminal)
  timing     default section timings as yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	validateCmd.Flags().String("timing", "", "section timing YAML file")
	exportCmd.Flags().StringP("format", "f", "yaml", "output format (yaml, json, inventory, timing)")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().Bool("render", false, "render the markdown inventory for the terminal")
	exportCmd.Flags().Int("width", 100, "word wrap width for --render")

	contentCmd.AddCommand(validateCmd)
	contentCmd.AddCommand(exportCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		site, err := content.Load(path)
		if err != nil {
			failed++
			logger.Error("content invalid", zap.String("path", path), zap.Error(err))
			continue
		}
		logger.Info("content ok",
			zap.String("path", path),
			zap.Int("portfolio", len(site.Portfolio)),
			zap.Int("statements", len(site.Philosophy.Statements)))
	}

	if path, _ := cmd.Flags().GetString("timing"); path != "" {
		if _, err := sections.LoadTiming(path); err != nil {
			failed++
			logger.Error("timing invalid", zap.String("path", path), zap.Error(err))
		} else {
			logger.Info("timing ok", zap.String("path", path))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	site, err := loadSite(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = site.Marshal()
	case "json":
		data, err = json.MarshalIndent(site, "", "  ")
		data = append(data, '\n')
	case "inventory":
		data = []byte(site.Inventory())
		if render, _ := cmd.Flags().GetBool("render"); render {
			width, _ := cmd.Flags().GetInt("width")
			data, err = renderMarkdown(string(data), width)
		}
	case "timing":
		data, err = yaml.Marshal(sections.DefaultTiming())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// renderMarkdown styles markdown for display in a terminal.
func renderMarkdown(md string, width int) ([]byte, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowsketch/flowsketch/pkg/pipeline"
)

// previewCommand creates the preview command for rendering quick-look images.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output   string
		formats  string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "preview [process.json]",
		Short: "Render a process as an SVG or PNG preview",
		Long: `Render a process as an SVG or PNG preview.

Previews use Graphviz's own layout for a quick visual check of process
structure. For BPMN interchange geometry, use 'flowsketch layout' instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], output, parseFormats(formats, pipeline.FormatSVG), detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output formats, comma-separated: svg (default), png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include element types in labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPreview loads the process and renders preview artifacts.
func (c *CLI) runPreview(ctx context.Context, input, output string, formats []string, detailed, noCache bool) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load process %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Source:   source,
		Formats:  formats,
		Detailed: detailed,
		Logger:   c.Logger,
	})
	if err != nil {
		printError("Preview failed")
		return err
	}
	prog.done("Rendered preview")

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))
	for _, format := range formats {
		outputPath := output
		if outputPath == "" || len(formats) > 1 {
			outputPath = base + "." + format
		}
		if err := os.WriteFile(outputPath, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}

	printSuccess("Preview complete")
	printStats(result.Stats.ElementCount, result.Stats.FlowCount, result.CacheInfo.EmitHit)

	return nil
}

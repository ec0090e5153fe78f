package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowsketch/flowsketch/pkg/layout"
	"github.com/flowsketch/flowsketch/pkg/pipeline"
)

// layoutCommand creates the layout command for computing diagram layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		formats    string
		configPath string
		processID  string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "layout [process.json]",
		Short: "Compute a diagram layout from a process definition",
		Long: `Compute a diagram layout from a process definition.

The layout command takes a process.json file describing elements, flows,
and lanes, and computes element bounds, lane bands, subprocess sizing, and
connector waypoints. Output formats:

  json   layout geometry as JSON
  xml    BPMN DI XML fragment (default)

Spacing and element sizes can be overridden with a TOML config file
passed via --config.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], layoutOpts{
				output:     output,
				formats:    parseFormats(formats, pipeline.FormatXML),
				configPath: configPath,
				processID:  processID,
				noCache:    noCache,
				refresh:    refresh,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output formats, comma-separated: xml (default), json")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with layout config overrides")
	cmd.Flags().StringVar(&processID, "process-id", "", "plane element reference in emitted DI XML (default: process ID)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

type layoutOpts struct {
	output     string
	formats    []string
	configPath string
	processID  string
	noCache    bool
	refresh    bool
}

// runLayout loads the process, runs the pipeline, and writes outputs.
func (c *CLI) runLayout(ctx context.Context, input string, lo layoutOpts) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load process %s: %w", input, err)
	}

	var cfg *layout.Config
	if lo.configPath != "" {
		loaded, err := layout.LoadConfig(lo.configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", lo.configPath, err)
		}
		cfg = &loaded
	}

	runner, err := c.newRunner(lo.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Source:    source,
		Formats:   lo.formats,
		ProcessID: lo.processID,
		Refresh:   lo.refresh,
		Config:    cfg,
		Logger:    c.Logger,
	})
	if err != nil {
		printError("Layout failed")
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d elements", result.Stats.ElementCount))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))
	for _, format := range lo.formats {
		outputPath := lo.output
		if outputPath == "" || len(lo.formats) > 1 {
			outputPath = base + "." + extFor(format)
		}
		if err := os.WriteFile(outputPath, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}

	printSuccess("Layout complete")
	printStats(result.Stats.ElementCount, result.Stats.FlowCount, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Preview", "flowsketch preview "+input)

	return nil
}

// extFor maps a format to its file extension.
func extFor(format string) string {
	switch format {
	case pipeline.FormatXML:
		return "bpmn.xml"
	default:
		return format
	}
}

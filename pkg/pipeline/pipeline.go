// Package pipeline provides the core decode → layout → emit pipeline.
//
// This package implements the complete pipeline that can be used by CLI
// and API components. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Parse a process definition from JSON
//  2. Layout: Compute element bounds and connector waypoints
//  3. Emit: Generate output in various formats (JSON, XML, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  data,
//	    Formats: []string{"xml"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xml := result.Artifacts["xml"]
//
// Run individual stages:
//
//	// Decode only
//	p, err := runner.Decode(ctx, opts)
//
//	// Layout with an existing process
//	l, err := runner.ComputeLayout(ctx, p, opts)
//
//	// Emit with an existing layout
//	artifacts, err := runner.Emit(ctx, p, l, opts)
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/flowsketch/flowsketch/pkg/cache"
	"github.com/flowsketch/flowsketch/pkg/layout"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatXML:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests, except for
// the runtime fields.
type Options struct {
	// Source is the process definition JSON.
	Source []byte `json:"source,omitempty"`

	// Formats selects the outputs to emit. Defaults to ["xml"].
	Formats []string `json:"formats,omitempty"`

	// ProcessID overrides the plane element reference in emitted DI XML.
	// Defaults to the process's own ID.
	ProcessID string `json:"process_id,omitempty"`

	// Detailed includes element types in preview labels.
	Detailed bool `json:"detailed,omitempty"`

	// Refresh bypasses the cache for all stages.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Config *layout.Config `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Process is the decoded process definition.
	Process *ProcessInfo

	// ProcessHash is the content hash of the normalized process JSON.
	ProcessHash string

	// Layout contains the computed geometry.
	Layout *layout.Layout

	// Artifacts contains emitted outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// ProcessInfo summarizes the decoded process for callers that do not
// need the full model.
type ProcessInfo struct {
	ID           string
	Name         string
	ElementCount int
	FlowCount    int
	LaneCount    int
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	FlowCount    int
	DecodeTime   time.Duration
	LayoutTime   time.Duration
	EmitTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	EmitHit   bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, xml, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	o.SetEmitDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDecode checks required fields for decoding.
func (o *Options) ValidateForDecode() error {
	if len(o.Source) == 0 {
		return fmt.Errorf("source is required")
	}
	o.setRuntimeDefaults()
	return nil
}

// SetEmitDefaults sets default values for emission.
func (o *Options) SetEmitDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatXML}
	}
	o.setRuntimeDefaults()
}

func (o *Options) setRuntimeDefaults() {
	if o.Config == nil {
		cfg := layout.DefaultConfig()
		o.Config = &cfg
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	data, err := layoutConfigHash(o.Config)
	if err != nil {
		return cache.LayoutKeyOpts{}
	}
	return cache.LayoutKeyOpts{ConfigHash: data}
}

// ArtifactKeyOpts returns cache key options for artifact emission.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

// layoutConfigHash hashes the engine configuration so layouts computed
// with different spacing or sizing do not share cache entries.
func layoutConfigHash(cfg *layout.Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

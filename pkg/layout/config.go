package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

// Config holds the spacing constants and element size table used by the
// layout engine. The zero value is not usable - start from [DefaultConfig]
// and override fields, or load overrides from a TOML file with [LoadConfig].
type Config struct {
	// HorizontalSpacing separates neighboring elements within a level.
	HorizontalSpacing float64 `toml:"horizontal_spacing"`

	// VerticalSpacing separates consecutive levels.
	VerticalSpacing float64 `toml:"vertical_spacing"`

	// SubprocessPadding is the margin between a subprocess border and its
	// inner layout, applied on all four sides.
	SubprocessPadding float64 `toml:"subprocess_padding"`

	// MinSubprocessSize is the smallest displayed size for a subprocess,
	// content or not.
	MinSubprocessSize Size `toml:"min_subprocess_size"`

	// MaxDepth bounds subprocess recursion. Nesting deeper than this
	// receives the minimum subprocess size instead of a computed layout.
	MaxDepth int `toml:"max_depth"`

	// MinLaneHeight is the smallest height of a lane band.
	MinLaneHeight float64 `toml:"min_lane_height"`

	// LanePadding is added below the lowest element when sizing a lane.
	LanePadding float64 `toml:"lane_padding"`

	// LaneMargin keeps constrained elements away from lane band borders,
	// applied at both the top and the bottom of the band.
	LaneMargin float64 `toml:"lane_margin"`

	// BoundaryEventSize is the square size of a boundary event shape.
	BoundaryEventSize float64 `toml:"boundary_event_size"`

	// BoundarySpacing separates the centers of adjacent boundary events
	// attached to the same host.
	BoundarySpacing float64 `toml:"boundary_spacing"`

	// Sizes maps element types to their displayed size. Types absent from
	// the map fall back to DefaultSize.
	Sizes map[bpmn.ElementType]Size `toml:"sizes"`

	// DefaultSize is used for element types not present in Sizes.
	DefaultSize Size `toml:"default_size"`
}

// DefaultConfig returns the standard BPMN element sizes and spacing.
func DefaultConfig() Config {
	event := Size{Width: 36, Height: 36}
	task := Size{Width: 100, Height: 80}
	gateway := Size{Width: 50, Height: 50}
	sub := Size{Width: 350, Height: 200}

	return Config{
		HorizontalSpacing: 50,
		VerticalSpacing:   100,
		SubprocessPadding: 50,
		MinSubprocessSize: sub,
		MaxDepth:          32,
		MinLaneHeight:     150,
		LanePadding:       40,
		LaneMargin:        20,
		BoundaryEventSize: 36,
		BoundarySpacing:   50,
		DefaultSize:       task,
		Sizes: map[bpmn.ElementType]Size{
			bpmn.TypeStartEvent:             event,
			bpmn.TypeEndEvent:               event,
			bpmn.TypeIntermediateThrowEvent: event,
			bpmn.TypeIntermediateCatchEvent: event,
			bpmn.TypeBoundaryEvent:          event,

			bpmn.TypeTask:             task,
			bpmn.TypeUserTask:         task,
			bpmn.TypeServiceTask:      task,
			bpmn.TypeScriptTask:       task,
			bpmn.TypeManualTask:       task,
			bpmn.TypeSendTask:         task,
			bpmn.TypeReceiveTask:      task,
			bpmn.TypeBusinessRuleTask: task,
			bpmn.TypeCallActivity:     task,

			bpmn.TypeExclusiveGateway:  gateway,
			bpmn.TypeParallelGateway:   gateway,
			bpmn.TypeInclusiveGateway:  gateway,
			bpmn.TypeEventBasedGateway: gateway,
			bpmn.TypeComplexGateway:    gateway,

			bpmn.TypeSubProcess:      sub,
			bpmn.TypeEventSubProcess: sub,
			bpmn.TypeAdHocSubProcess: sub,
			bpmn.TypeTransaction:     sub,
			bpmn.TypeParticipant:     {Width: 600, Height: 250},

			bpmn.TypeDataObjectReference: {Width: 36, Height: 50},
			bpmn.TypeDataStoreReference:  {Width: 50, Height: 50},
			bpmn.TypeTextAnnotation:      {Width: 100, Height: 30},
			bpmn.TypeGroup:               {Width: 300, Height: 300},
		},
	}
}

// SizeOf looks up the displayed size for an element type.
// Unrecognized types fall back to DefaultSize.
func (c Config) SizeOf(t bpmn.ElementType) Size {
	if s, ok := c.Sizes[t]; ok {
		return s
	}
	return c.DefaultSize
}

// fileConfig mirrors Config with pointer fields so that a TOML file can
// override a subset of values and leave the rest at their defaults.
type fileConfig struct {
	HorizontalSpacing *float64        `toml:"horizontal_spacing"`
	VerticalSpacing   *float64        `toml:"vertical_spacing"`
	SubprocessPadding *float64        `toml:"subprocess_padding"`
	MinSubprocessSize *Size           `toml:"min_subprocess_size"`
	MaxDepth          *int            `toml:"max_depth"`
	MinLaneHeight     *float64        `toml:"min_lane_height"`
	LanePadding       *float64        `toml:"lane_padding"`
	LaneMargin        *float64        `toml:"lane_margin"`
	BoundaryEventSize *float64        `toml:"boundary_event_size"`
	BoundarySpacing   *float64        `toml:"boundary_spacing"`
	DefaultSize       *Size           `toml:"default_size"`
	Sizes             map[string]Size `toml:"sizes"`
}

// LoadConfig reads layout overrides from a TOML file and applies them on
// top of [DefaultConfig]. Only keys present in the file are overridden.
//
// Example file:
//
//	vertical_spacing = 80
//
//	[sizes.userTask]
//	width = 120
//	height = 90
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("load layout config %s: %w", path, err)
	}

	if fc.HorizontalSpacing != nil {
		cfg.HorizontalSpacing = *fc.HorizontalSpacing
	}
	if fc.VerticalSpacing != nil {
		cfg.VerticalSpacing = *fc.VerticalSpacing
	}
	if fc.SubprocessPadding != nil {
		cfg.SubprocessPadding = *fc.SubprocessPadding
	}
	if fc.MinSubprocessSize != nil {
		cfg.MinSubprocessSize = *fc.MinSubprocessSize
	}
	if fc.MaxDepth != nil {
		cfg.MaxDepth = *fc.MaxDepth
	}
	if fc.MinLaneHeight != nil {
		cfg.MinLaneHeight = *fc.MinLaneHeight
	}
	if fc.LanePadding != nil {
		cfg.LanePadding = *fc.LanePadding
	}
	if fc.LaneMargin != nil {
		cfg.LaneMargin = *fc.LaneMargin
	}
	if fc.BoundaryEventSize != nil {
		cfg.BoundaryEventSize = *fc.BoundaryEventSize
	}
	if fc.BoundarySpacing != nil {
		cfg.BoundarySpacing = *fc.BoundarySpacing
	}
	if fc.DefaultSize != nil {
		cfg.DefaultSize = *fc.DefaultSize
	}
	for t, s := range fc.Sizes {
		cfg.Sizes[bpmn.ElementType(t)] = s
	}

	return cfg, nil
}

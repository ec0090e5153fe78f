// Package render produces quick-look previews of process models.
//
// # Overview
//
// This package converts processes to Graphviz DOT source and renders
// them as SVG or PNG. Previews use Graphviz's own layout rather than
// the deterministic grid from [pkg/layout]; they are meant for fast
// visual inspection of process structure, not for BPMN interchange.
//
// # Usage
//
// Convert a process to DOT format, then render:
//
//	dot := render.ToDOT(p, render.Options{Detailed: false})
//	svg, err := render.RenderSVG(ctx, dot)
//	png, err := render.RenderPNG(ctx, dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Events render as circles, gateways as diamonds, data objects as
// notes, and everything else as rounded boxes. Subprocesses become
// clusters containing their children.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering, so no external Graphviz installation is needed.
package render

package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

// Options configures process diagram rendering.
type Options struct {
	// Detailed includes element types in node labels.
	// When false, only the element name (or ID) is shown.
	Detailed bool
}

// ToDOT converts a process to Graphviz DOT format for preview rendering.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Element shapes follow BPMN conventions loosely: events are circles,
// gateways are diamonds, and everything else is a rounded box. Subprocesses
// are rendered as clusters containing their children.
func ToDOT(p *bpmn.Process, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeElements(&buf, p.Elements, opts, "  ")
	buf.WriteString("\n")
	writeFlows(&buf, p.Elements, p.Flows, "  ")

	buf.WriteString("}\n")
	return buf.String()
}

func writeElements(buf *bytes.Buffer, elements []bpmn.Element, opts Options, indent string) {
	for _, e := range elements {
		if e.Type.IsSubProcess() && len(e.Elements) > 0 {
			fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, e.ID)
			fmt.Fprintf(buf, "%s  label=%q;\n", indent, fmtLabel(e, opts.Detailed))
			fmt.Fprintf(buf, "%s  style=rounded;\n", indent)
			writeElements(buf, e.Elements, opts, indent+"  ")
			writeFlows(buf, e.Elements, e.Flows, indent+"  ")
			fmt.Fprintf(buf, "%s}\n", indent)
			continue
		}
		attrs := fmtAttrs(e, fmtLabel(e, opts.Detailed))
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, e.ID, strings.Join(attrs, ", "))
	}
}

func writeFlows(buf *bytes.Buffer, elements []bpmn.Element, flows []bpmn.Flow, indent string) {
	ids := make(map[string]bool, len(elements))
	collectIDs(elements, ids)
	for _, f := range flows {
		if !ids[f.Source] || !ids[f.Target] {
			continue
		}
		if f.Name != "" {
			fmt.Fprintf(buf, "%s%q -> %q [label=%q];\n", indent, f.Source, f.Target, f.Name)
			continue
		}
		fmt.Fprintf(buf, "%s%q -> %q;\n", indent, f.Source, f.Target)
	}
}

func collectIDs(elements []bpmn.Element, ids map[string]bool) {
	for _, e := range elements {
		ids[e.ID] = true
		collectIDs(e.Elements, ids)
	}
}

func fmtLabel(e bpmn.Element, detailed bool) string {
	label := e.Name
	if label == "" {
		label = e.ID
	}
	if detailed {
		label += "\n" + string(e.Type)
	}
	return label
}

func fmtAttrs(e bpmn.Element, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case e.Type.IsEvent():
		attrs = append(attrs, "shape=circle", "fixedsize=true", "width=0.6")
	case e.Type.IsGateway():
		attrs = append(attrs, "shape=diamond")
	case e.Type == bpmn.TypeDataObjectReference || e.Type == bpmn.TypeDataStoreReference:
		attrs = append(attrs, "shape=note", "style=filled")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root tag so the viewBox starts at the
// origin and the width/height match it. Graphviz emits pt-based sizes that
// confuse some viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Package pkg provides the core libraries for flowsketch process-diagram
// layout.
//
// # Overview
//
// Flowsketch turns the logical structure of a business process - elements,
// sequence flows, lanes - into the geometry of an editable BPMN diagram.
// The pkg directory is organized into these areas:
//
//  1. [bpmn] - Process model and JSON serialization
//  2. [layout] - The deterministic layout engine
//  3. [bpmn/di] - BPMN 2.0 Diagram Interchange emitter
//  4. [pipeline] - Orchestration (decode → layout → emit) with caching
//  5. [render] - Graphviz-backed structure previews
//  6. [cache], [store] - Layout caching and diagram persistence
//
// # Architecture
//
// The typical data flow:
//
//	Process JSON (from an upstream structure provider)
//	         ↓
//	    [bpmn] package (decode + validate)
//	         ↓
//	    [layout] package (levels → columns → bounds → lanes → waypoints)
//	         ↓
//	    [bpmn/di] package (BPMN DI XML) or layout JSON
//
// # Quick Start
//
// Compute a layout and emit the DI block:
//
//	import (
//	    "github.com/flowsketch/flowsketch/pkg/bpmn"
//	    "github.com/flowsketch/flowsketch/pkg/bpmn/di"
//	    "github.com/flowsketch/flowsketch/pkg/layout"
//	)
//
//	p, _ := bpmn.ReadProcessFile("order.json")
//	l := layout.Calculate(p, layout.DefaultConfig())
//	xml := di.Emit(l, di.Options{PlaneElement: p.ID})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Engine only
//	go test -run Example       # Examples only
//
// [bpmn]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/bpmn
// [layout]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/layout
// [bpmn/di]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/bpmn/di
// [pipeline]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/render
// [cache]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/cache
// [store]: https://pkg.go.dev/github.com/flowsketch/flowsketch/pkg/store
package pkg

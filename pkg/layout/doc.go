// Package layout computes 2D positions, sizes, and connector waypoints for
// process-diagram elements from their logical structure alone.
//
// Given a [bpmn.Process] - elements, directed flows, optional lanes - the
// engine produces a [Layout]: concrete bounds per element, a waypoint
// polyline per flow, and stacked lane bands. The engine is deterministic,
// CPU-only, and free of I/O; the same input always yields the same output.
//
// # Pipeline
//
// [Calculate] runs the passes in a fixed order:
//
//  1. Build an adjacency graph from elements and flows (boundary events set
//     aside, dangling flows dropped).
//  2. Assign each node a level - its depth from the start nodes - via a
//     breadth-first longest-path pass.
//  3. Assign each node a column within its level, in input order.
//  4. Convert (level, column) to bounds using the per-type size table,
//     accumulating row heights and column widths with configured spacing.
//  5. Recursively lay out subprocess children and resize each subprocess to
//     fit them plus padding.
//  6. Stack lane bands and clamp lane-referenced elements into their band.
//  7. Distribute boundary events along the bottom edge of their host.
//  8. Route a 2-4 point polyline per flow.
//  9. Translate each subprocess's inner layout to its final position and
//     merge it into the result.
//
// # Degradation
//
// The engine never fails on malformed structure. Flows or lane refs naming
// missing elements are skipped, unknown element types get a default size,
// cyclic graphs fall back to a synthetic start node, and empty input yields
// an empty layout with zero totals. Validating that a diagram makes sense
// is the caller's concern; producing a reasonable picture of whatever
// arrives is this package's.
//
// # Concurrency
//
// Every call allocates fresh state and returns an independent result, so
// concurrent Calculate calls need no locking.
package layout

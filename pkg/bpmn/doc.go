// Package bpmn defines the process model consumed by the layout engine.
//
// A [Process] is a flat list of elements plus directed sequence flows,
// optionally partitioned into lanes. The model carries only the logical
// structure of a diagram - element types, names, nesting, and connectivity.
// Geometry is computed separately by the layout package; the process model
// is never mutated by layout.
//
// # Structure
//
// Elements are identified by string IDs and tagged with an [ElementType].
// Subprocess-typed elements carry their own nested element and flow lists,
// recursively. Boundary events reference the element they are attached to
// via AttachedTo.
//
// # Serialization
//
// The canonical interchange format is JSON:
//
//	{
//	  "elements": [
//	    {"id": "start", "type": "startEvent"},
//	    {"id": "review", "type": "userTask", "name": "Review order"}
//	  ],
//	  "flows": [
//	    {"id": "f1", "source": "start", "target": "review"}
//	  ],
//	  "lanes": [
//	    {"id": "l1", "name": "Sales", "flowNodeRefs": ["start", "review"]}
//	  ]
//	}
//
// Use [UnmarshalProcess] and [MarshalProcess] for byte slices, or
// [ReadProcessFile] and [WriteProcessFile] for files.
package bpmn

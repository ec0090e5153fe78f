package bpmn

// ElementType tags an element with its BPMN kind. Values follow the BPMN 2.0
// local element names so that serialized processes read naturally next to
// BPMN XML. Unknown values are accepted - the layout engine falls back to a
// default size for types it does not recognize.
type ElementType string

// Event types.
const (
	TypeStartEvent             ElementType = "startEvent"
	TypeEndEvent               ElementType = "endEvent"
	TypeIntermediateThrowEvent ElementType = "intermediateThrowEvent"
	TypeIntermediateCatchEvent ElementType = "intermediateCatchEvent"
	TypeBoundaryEvent          ElementType = "boundaryEvent"
)

// Activity types.
const (
	TypeTask             ElementType = "task"
	TypeUserTask         ElementType = "userTask"
	TypeServiceTask      ElementType = "serviceTask"
	TypeScriptTask       ElementType = "scriptTask"
	TypeManualTask       ElementType = "manualTask"
	TypeSendTask         ElementType = "sendTask"
	TypeReceiveTask      ElementType = "receiveTask"
	TypeBusinessRuleTask ElementType = "businessRuleTask"
	TypeCallActivity     ElementType = "callActivity"
)

// Gateway types.
const (
	TypeExclusiveGateway  ElementType = "exclusiveGateway"
	TypeParallelGateway   ElementType = "parallelGateway"
	TypeInclusiveGateway  ElementType = "inclusiveGateway"
	TypeEventBasedGateway ElementType = "eventBasedGateway"
	TypeComplexGateway    ElementType = "complexGateway"
)

// Container types.
const (
	TypeSubProcess      ElementType = "subProcess"
	TypeEventSubProcess ElementType = "eventSubProcess"
	TypeAdHocSubProcess ElementType = "adHocSubProcess"
	TypeTransaction     ElementType = "transaction"
	TypeParticipant     ElementType = "participant"
)

// Artifact and data types.
const (
	TypeDataObjectReference ElementType = "dataObjectReference"
	TypeDataStoreReference  ElementType = "dataStoreReference"
	TypeTextAnnotation      ElementType = "textAnnotation"
	TypeGroup               ElementType = "group"
)

// IsEvent reports whether the type is one of the event kinds,
// boundary events included.
func (t ElementType) IsEvent() bool {
	switch t {
	case TypeStartEvent, TypeEndEvent, TypeIntermediateThrowEvent,
		TypeIntermediateCatchEvent, TypeBoundaryEvent:
		return true
	}
	return false
}

// IsGateway reports whether the type is one of the gateway kinds.
func (t ElementType) IsGateway() bool {
	switch t {
	case TypeExclusiveGateway, TypeParallelGateway, TypeInclusiveGateway,
		TypeEventBasedGateway, TypeComplexGateway:
		return true
	}
	return false
}

// IsSubProcess reports whether the type is a container that can carry
// nested elements and flows.
func (t ElementType) IsSubProcess() bool {
	switch t {
	case TypeSubProcess, TypeEventSubProcess, TypeAdHocSubProcess, TypeTransaction:
		return true
	}
	return false
}

// Element is a single diagram node. Elements are value types - the layout
// engine reads them but never mutates identity, type, or nesting.
type Element struct {
	ID   string      `json:"id" bson:"id"`
	Type ElementType `json:"type" bson:"type"`
	Name string      `json:"name,omitempty" bson:"name,omitempty"`

	// AttachedTo references the host element for boundary events.
	// Empty for all other element types.
	AttachedTo string `json:"attachedTo,omitempty" bson:"attached_to,omitempty"`

	// Elements and Flows carry the nested sub-diagram for subprocess-typed
	// elements. Both are nil for leaf elements.
	Elements []Element `json:"elements,omitempty" bson:"elements,omitempty"`
	Flows    []Flow    `json:"flows,omitempty" bson:"flows,omitempty"`
}

// IsBoundaryEvent reports whether the element is a boundary event.
func (e Element) IsBoundaryEvent() bool { return e.Type == TypeBoundaryEvent }

// HasChildren reports whether the element carries a nested sub-diagram.
func (e Element) HasChildren() bool { return len(e.Elements) > 0 }

// DisplayName returns the name if set, otherwise the ID.
func (e Element) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// Flow is a directed sequence flow between two elements of the same element
// set. Flows whose endpoints are missing from that set are tolerated and
// silently ignored during layout.
type Flow struct {
	ID     string `json:"id" bson:"id"`
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
}

// Lane is a named partition of a subset of top-level element IDs.
// FlowNodeRefs may be empty and may reference IDs that never receive bounds;
// both cases are tolerated during lane layout.
type Lane struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name,omitempty" bson:"name,omitempty"`
	FlowNodeRefs []string `json:"flowNodeRefs,omitempty" bson:"flow_node_refs,omitempty"`
}

// Process is the top-level input to the layout engine: a flat element list,
// directed flows, and optional lanes.
type Process struct {
	ID       string    `json:"id,omitempty" bson:"id,omitempty"`
	Name     string    `json:"name,omitempty" bson:"name,omitempty"`
	Elements []Element `json:"elements" bson:"elements"`
	Flows    []Flow    `json:"flows" bson:"flows"`
	Lanes    []Lane    `json:"lanes,omitempty" bson:"lanes,omitempty"`
}

// ElementByID returns the top-level element with the given ID,
// or a zero Element and false if no such element exists.
func (p Process) ElementByID(id string) (Element, bool) {
	for _, e := range p.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// ElementCount returns the total number of elements, including those
// nested inside subprocesses.
func (p Process) ElementCount() int {
	return countElements(p.Elements)
}

// FlowCount returns the total number of flows, including those nested
// inside subprocesses.
func (p Process) FlowCount() int {
	return len(p.Flows) + countFlows(p.Elements)
}

func countElements(elements []Element) int {
	n := len(elements)
	for _, e := range elements {
		n += countElements(e.Elements)
	}
	return n
}

func countFlows(elements []Element) int {
	n := 0
	for _, e := range elements {
		n += len(e.Flows) + countFlows(e.Elements)
	}
	return n
}

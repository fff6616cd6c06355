package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"

	"github.com/axiom-guard/boundary/pkg/models"
)

// Engine replays an event sequence into an identity Graph. It holds no
// mutable state of its own. Apart from decay, which is measured against
// the wall clock at call time, Replay depends only on its inputs.
type Engine struct {
	handlers map[models.EventType]func(*Graph, models.Event)
}

// NewEngine builds the event-type → transformation handler table.
func NewEngine() *Engine {
	e := &Engine{}
	e.handlers = map[models.EventType]func(*Graph, models.Event){
		models.EventReflectionCreated: e.handleReflectionCreated,
		models.EventMetadataDeclared:  e.handleMetadataDeclared,
		models.EventAnnotationConsent: e.handleAnnotationConsented,
		models.EventPatternSurfaced:   e.handlePatternSurfaced,
		models.EventPostureDeclared:   e.handlePostureDeclared,
		models.EventVoiceTranscribed:  e.handleVoiceTranscribed,
	}
	return e
}

// Replay folds events into a Graph for instanceID. Events are sorted by
// ascending timestamp before processing; unrecognized event types are
// skipped rather than erroring, so the graph degrades gracefully as new
// event types are added upstream.
func (e *Engine) Replay(events []models.Event, instanceID string) *Graph {
	graph := newGraph(instanceID)

	for _, event := range sortByTimestamp(events) {
		if handler, ok := e.handlers[event.EventType]; ok {
			handler(graph, event)
		}
		graph.LastReplayedSeq = event.Seq
		graph.LastReplayedEventID = event.EventID.String()
	}

	computeDominantTensions(graph)
	applyDecay(graph)

	return graph
}

func (e *Engine) handleReflectionCreated(g *Graph, event models.Event) {
	g.Reflections = append(g.Reflections, ReflectionSummary{
		EventID:   event.EventID.String(),
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z"),
		Content:   event.Content(),
		Modality:  stringField(event.Payload, "modality"),
		Metadata:  mapField(event.Payload, "metadata"),
	})
}

func (e *Engine) handleVoiceTranscribed(g *Graph, event models.Event) {
	// Transcripts are indexed identically to text reflections by the
	// layer above replay; no direct graph change here.
}

func (e *Engine) handleMetadataDeclared(g *Graph, event models.Event) {
	nodeType := event.MetadataType()
	content := event.Content()
	nodeID := generateNodeID(nodeType, content)

	strength := event.Confidence()
	if strength == 0 {
		strength = 1.0
	}
	upsertNode(g, nodeID, nodeType, content, event, strength)
}

func (e *Engine) handleAnnotationConsented(g *Graph, event models.Event) {
	if event.UserConsent() == "rejected" {
		return
	}
	content := stringField(event.Payload, "user_modification")
	if content == "" {
		content = stringField(event.Payload, "annotation_content")
	}
	annotationType := stringField(event.Payload, "annotation_type")
	nodeID := generateNodeID(annotationType, content)
	upsertNode(g, nodeID, annotationType, content, event, 0.8)
}

func (e *Engine) handlePatternSurfaced(g *Graph, event models.Event) {
	response := event.UserResponse()
	if response == "" || response == "skip" || response == "off" {
		return
	}
	content := stringField(event.Payload, "pattern_description")
	nodeID := generateNodeID("pattern", content)
	if _, exists := g.Nodes[nodeID]; !exists {
		upsertNode(g, nodeID, "pattern", content, event, event.Confidence())
	}
}

func (e *Engine) handlePostureDeclared(g *Graph, event models.Event) {
	g.CurrentPosture = event.DeclaredPosture()
}

// upsertNode bumps an existing node's occurrence count and evidence, or
// creates a new one with the given initial strength.
func upsertNode(g *Graph, nodeID, nodeType, content string, event models.Event, initialStrength float64) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z")
	if node, exists := g.Nodes[nodeID]; exists {
		node.LastSeen = ts
		node.OccurrenceCount++
		node.Evidence = append(node.Evidence, event.EventID.String())
		return
	}
	g.Nodes[nodeID] = &Node{
		NodeID:          nodeID,
		NodeType:        nodeType,
		Content:         content,
		FirstSeen:       ts,
		LastSeen:        ts,
		OccurrenceCount: 1,
		Strength:        initialStrength,
		Evidence:        []string{event.EventID.String()},
	}
}

// generateNodeID derives a stable ID from (nodeType, content) so the
// same declaration, repeated, always maps to the same node.
func generateNodeID(nodeType, content string) string {
	return NodeID(nodeType, content)
}

// NodeID is the exported form of the same (nodeType, content) -> node_id
// derivation, so callers outside this package (the conformance harness'
// replay-determinism case) can compute the expected ID independently
// rather than reading it back out of a Graph they just built.
func NodeID(nodeType, content string) string {
	normalized := strings.ToLower(strings.TrimSpace(content))
	sum := sha256.Sum256([]byte(nodeType + ":" + normalized))
	return hex.EncodeToString(sum[:])[:16]
}

// computeDominantTensions ranks tension/paradox nodes by
// strength × ln(1 + occurrence_count) and keeps the top 3.
func computeDominantTensions(g *Graph) {
	type scored struct {
		id    string
		score float64
	}
	var candidates []scored
	for id, node := range g.Nodes {
		if node.NodeType != "tension" && node.NodeType != "paradox" {
			continue
		}
		candidates = append(candidates, scored{id, node.Strength * math.Log1p(float64(node.OccurrenceCount))})
	}
	// stable insertion sort descending by score; node counts are small
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].score > candidates[j-1].score; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	limit := 3
	if len(candidates) < limit {
		limit = len(candidates)
	}
	tensions := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		tensions = append(tensions, c.id)
	}
	g.DominantTensions = tensions
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func mapField(payload map[string]any, key string) map[string]any {
	if v, ok := payload[key].(map[string]any); ok {
		return v
	}
	return nil
}

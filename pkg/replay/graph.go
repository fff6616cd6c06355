// Package replay implements the Replay Engine: a pure function that
// folds an ordered event sequence into a derived identity graph. Identity
// state is never stored authoritatively — it is always recomputed from
// the event log, which is the only source of truth.
//
// Grounded on original_source/mirrorx-engine/app/identity_replay.py,
// carried over near line-for-line.
package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/axiom-guard/boundary/pkg/models"
)

// Node is a unit of identity state: a tension, belief, goal, paradox,
// loop, or pattern surfaced and accepted during the conversation.
type Node struct {
	NodeID           string   `json:"node_id"`
	NodeType         string   `json:"node_type"`
	Content          string   `json:"content"`
	FirstSeen        string   `json:"first_seen"`
	LastSeen         string   `json:"last_seen"`
	OccurrenceCount  int      `json:"occurrence_count"`
	Strength         float64  `json:"strength"`
	Evidence         []string `json:"evidence"`
}

// Edge connects two nodes. The replay handler table in engine.go does not
// currently emit edges (mirroring the teacher's own simplification), but
// the type is part of the graph shape DiffGraphs and StateHash operate over.
type Edge struct {
	EdgeID       string  `json:"edge_id"`
	SourceNodeID string  `json:"source_node_id"`
	TargetNodeID string  `json:"target_node_id"`
	EdgeType     string  `json:"edge_type"`
	Weight       float64 `json:"weight"`
	FirstSeen    string  `json:"first_seen"`
	LastSeen     string  `json:"last_seen"`
}

// Graph is the derived identity state for one instance_id.
type Graph struct {
	InstanceID string           `json:"instance_id"`
	Nodes      map[string]*Node `json:"nodes"`
	Edges      map[string]*Edge `json:"edges"`

	CurrentPosture    string   `json:"current_posture"`
	DominantTensions  []string `json:"dominant_tensions"`

	Reflections []ReflectionSummary `json:"reflections"`

	LastReplayedSeq     int64  `json:"last_replayed_seq"`
	LastReplayedEventID string `json:"last_replayed_event_id"`
}

// ReflectionSummary is a timeline entry recorded verbatim for
// reflection_created events, which add no graph node. voice_transcribed
// events add nothing to the graph.
type ReflectionSummary struct {
	EventID   string         `json:"event_id"`
	Timestamp string         `json:"timestamp"`
	Content   string         `json:"content"`
	Modality  string         `json:"modality"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func newGraph(instanceID string) *Graph {
	return &Graph{
		InstanceID: instanceID,
		Nodes:      make(map[string]*Node),
		Edges:      make(map[string]*Edge),
	}
}

// canonicalView is the shape state_hash is computed over — a stable
// subset of Graph with map keys that json.Marshal already sorts and a
// reflection_count in place of the full reflection slice (matching
// identity_replay.py's to_dict()).
type canonicalView struct {
	InstanceID        string                  `json:"instance_id"`
	Nodes             map[string]canonicalNode `json:"nodes"`
	Edges             map[string]canonicalEdge `json:"edges"`
	CurrentPosture    string                   `json:"current_posture"`
	DominantTensions  []string                 `json:"dominant_tensions"`
	ReflectionCount   int                      `json:"reflection_count"`
	LastReplayedSeq   int64                    `json:"last_replayed_seq"`
	LastReplayedEvent string                   `json:"last_replayed_event_id"`
}

type canonicalNode struct {
	NodeID          string   `json:"node_id"`
	NodeType        string   `json:"node_type"`
	Content         string   `json:"content"`
	FirstSeen       string   `json:"first_seen"`
	LastSeen        string   `json:"last_seen"`
	OccurrenceCount int      `json:"occurrence_count"`
	Strength        float64  `json:"strength"`
	Evidence        []string `json:"evidence"`
}

type canonicalEdge struct {
	EdgeID       string  `json:"edge_id"`
	SourceNodeID string  `json:"source_node_id"`
	TargetNodeID string  `json:"target_node_id"`
	EdgeType     string  `json:"edge_type"`
	Weight       float64 `json:"weight"`
	FirstSeen    string  `json:"first_seen"`
	LastSeen     string  `json:"last_seen"`
}

// StateHash returns SHA-256 of the sorted-key, whitespace-free JSON view
// of g. Equal (seq, events) must always produce an equal StateHash —
// the reproducibility invariant checkpoints verify against.
func (g *Graph) StateHash() (string, error) {
	view := canonicalView{
		InstanceID:        g.InstanceID,
		Nodes:             make(map[string]canonicalNode, len(g.Nodes)),
		Edges:             make(map[string]canonicalEdge, len(g.Edges)),
		CurrentPosture:    g.CurrentPosture,
		DominantTensions:  g.DominantTensions,
		ReflectionCount:   len(g.Reflections),
		LastReplayedSeq:   g.LastReplayedSeq,
		LastReplayedEvent: g.LastReplayedEventID,
	}
	for id, n := range g.Nodes {
		view.Nodes[id] = canonicalNode{
			NodeID: n.NodeID, NodeType: n.NodeType, Content: n.Content,
			FirstSeen: n.FirstSeen, LastSeen: n.LastSeen,
			OccurrenceCount: n.OccurrenceCount, Strength: n.Strength,
			Evidence: n.Evidence,
		}
	}
	for id, e := range g.Edges {
		view.Edges[id] = canonicalEdge{
			EdgeID: e.EdgeID, SourceNodeID: e.SourceNodeID, TargetNodeID: e.TargetNodeID,
			EdgeType: e.EdgeType, Weight: e.Weight, FirstSeen: e.FirstSeen, LastSeen: e.LastSeen,
		}
	}
	b, err := json.Marshal(view)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// sortByTimestamp returns events ordered by strictly ascending timestamp.
// The original replay walked events in storage order, which is normally
// seq order; this module instead sorts explicitly so that any
// out-of-order import (§7 Import re-appends in document order, which may
// not match original timestamps) cannot skew windowed/history-dependent
// post-processing such as decay and dominant-tension scoring.
func sortByTimestamp(events []models.Event) []models.Event {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

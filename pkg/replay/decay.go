package replay

import (
	"math"
	"time"
)

const (
	// decayRatePerWeek is the fraction of strength a node loses per week
	// it goes unreinforced.
	decayRatePerWeek = 0.1
	// strengthFloor is the minimum strength decay can drive a node to.
	strengthFloor = 0.1
)

// applyDecay weakens nodes that haven't been reinforced recently,
// exponentially by weeks elapsed since last_seen. now is evaluated once
// per call so every node in the same replay decays against the same
// reference point.
func applyDecay(g *Graph) {
	now := time.Now().UTC()
	for _, node := range g.Nodes {
		lastSeen, err := time.Parse("2006-01-02T15:04:05.000000000Z", node.LastSeen)
		if err != nil {
			continue
		}
		weeksSince := now.Sub(lastSeen).Hours() / (24 * 7)
		if weeksSince <= 0 {
			continue
		}
		decayFactor := math.Pow(1-decayRatePerWeek, weeksSince)
		node.Strength *= decayFactor
		if node.Strength < strengthFloor {
			node.Strength = strengthFloor
		}
	}
}

package pattern

import "time"

const ms = time.Millisecond

var (
	all   []*Pattern
	index map[string]*Pattern
)

func init() {
	index = make(map[string]*Pattern, len(catalog)+len(behaviorPatterns)+1)
	for _, set := range [][]Pattern{catalog, behaviorPatterns} {
		for i := range set {
			p := &set[i]
			all = append(all, p)
			index[p.ID] = p
		}
	}
	index[enemyAimedFan.ID] = &enemyAimedFan
}

// Catalog returns every selectable pattern in id order
func Catalog() []*Pattern {
	return append([]*Pattern(nil), all...)
}

// Reference returns the 35 reference patterns only
func Reference() []*Pattern {
	return append([]*Pattern(nil), all[:len(catalog)]...)
}

// Find looks a pattern up by id, including enemy-only entries
func Find(id string) (*Pattern, bool) {
	p, ok := index[id]
	return p, ok
}

// Pick draws uniformly from the selectable catalog
func Pick(rng interface{ IntN(int) int }) *Pattern {
	return all[rng.IntN(len(all))]
}

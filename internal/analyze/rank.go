package analyze

import (
	"encoding/json"
	"sort"
	"unicode/utf8"
)

// RankedCount is one entry of a frequency ranking. It serializes as a
// two-element [key, count] array.
type RankedCount struct {
	Key   string
	Count int
}

// MarshalJSON emits the pair-array wire shape.
func (rc RankedCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{rc.Key, rc.Count})
}

// counter tracks occurrence counts while remembering first-seen order, so
// rankings break ties stably.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// Add increments the count for key.
func (c *counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Len returns the number of distinct keys.
func (c *counter) Len() int {
	return len(c.counts)
}

// Top returns up to n keys ranked by descending count. Keys with equal
// counts keep their first-occurrence order.
func (c *counter) Top(n int) []RankedCount {
	ranked := make([]RankedCount, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, RankedCount{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// truncate limits s to n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

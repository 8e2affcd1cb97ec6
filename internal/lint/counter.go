package lint

import "sort"

// Counter counts occurrences while remembering insertion order, so that
// equal counts rank in first-seen order.
type Counter struct {
	keys   []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *Counter) Count(key string) int { return c.counts[key] }

// MostCommon returns up to n entries ordered by count descending; a
// stable sort keeps first-seen order for ties. n <= 0 returns all.
func (c *Counter) MostCommon(n int) []Entry {
	entries := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		entries[i] = Entry{Key: k, Count: c.counts[k]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Entry is one key with its occurrence count.
type Entry struct {
	Key   string
	Count int
}

package pokemon

import "time"

type IndexSnapshot struct {
	Entries   int       `json:"entries"`
	FetchedAt time.Time `json:"fetched_at"`
	Fresh     bool      `json:"fresh"`
}

// Snapshot describes the cached index without triggering a refresh.
// ok is false until the first successful fetch.
func (c *IndexCache) Snapshot() (IndexSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return IndexSnapshot{}, false
	}
	return IndexSnapshot{
		Entries:   len(c.entry.entries),
		FetchedAt: c.entry.fetchedAt,
		Fresh:     c.now().Sub(c.entry.fetchedAt) < c.ttl,
	}, true
}

package ranking

import "time"

// Entry is one player's standing in an award category.
type Entry struct {
	Player   string `json:"player"`
	Quantity int    `json:"quantity"`
}

// Category is a ranked award table, ordered best first.
type Category struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Icon    string  `json:"icon,omitempty"`
	Entries []Entry `json:"entries"`
}

// Champion returns the category leader.
func (c Category) Champion() (Entry, bool) {
	if len(c.Entries) == 0 {
		return Entry{}, false
	}
	return c.Entries[0], true
}

// Board is the full awards board built from one season export.
type Board struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Categories  []Category        `json:"categories"`
	Players     []string          `json:"players"`
	Images      map[string]string `json:"images,omitempty"`
}

// Category looks up a category by key.
func (b Board) Category(key string) (Category, bool) {
	for _, cat := range b.Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// PlayerStats collects one player's quantities across every category.
func (b Board) PlayerStats(name string) map[string]int {
	stats := make(map[string]int)
	for _, cat := range b.Categories {
		for _, entry := range cat.Entries {
			if entry.Player == name {
				stats[cat.Key] = entry.Quantity
				break
			}
		}
	}
	return stats
}

// Top returns a copy of the board with every category truncated to at
// most n entries. Non-positive n leaves the board untouched.
func (b Board) Top(n int) Board {
	if n <= 0 {
		return b
	}
	out := b
	out.Categories = make([]Category, len(b.Categories))
	for i, cat := range b.Categories {
		trimmed := cat
		if len(cat.Entries) > n {
			trimmed.Entries = cat.Entries[:n]
		}
		out.Categories[i] = trimmed
	}
	return out
}

// Response is the payload returned by /ranking.
type Response struct {
	GeneratedAt time.Time  `json:"generatedAt"`
	Categories  []Category `json:"categories"`
	Players     []string   `json:"players"`
}

// NewResponse builds a /ranking payload truncated to topN entries per
// category.
func NewResponse(board Board, topN int) Response {
	trimmed := board.Top(topN)
	return Response{
		GeneratedAt: trimmed.GeneratedAt,
		Categories:  trimmed.Categories,
		Players:     trimmed.Players,
	}
}

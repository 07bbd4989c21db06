package holiday

// Hierarchy describes how a calendar's holidays are structured: a
// country at the root, narrowing through states, regions, cities. The
// node IDs are the path elements accepted by Holidays and IsHoliday.
type Hierarchy struct {
	ID       string
	Key      string // description key for the node, e.g. "calendar.description.us"
	Children map[string]*Hierarchy
}

// Child returns the named child node, or nil.
func (h *Hierarchy) Child(id string) *Hierarchy {
	if h == nil {
		return nil
	}
	return h.Children[id]
}

// AddChild inserts a child node, allocating the map on first use.
func (h *Hierarchy) AddChild(c *Hierarchy) {
	if h.Children == nil {
		h.Children = make(map[string]*Hierarchy)
	}
	h.Children[c.ID] = c
}

package listctrl

import (
	"sort"
	"strings"
)

// View is the derived read model: filter, then sort, then paginate. It is
// computed on demand and never stored.
type View[T any] struct {
	Items           []T    `json:"items"`
	TotalItems      int    `json:"totalItems"`
	TotalPages      int    `json:"totalPages"`
	Page            int    `json:"page"`
	PageSize        int    `json:"pageSize"`
	Loading         bool   `json:"loading"`
	FormMode        string `json:"formMode"`
	EditingID       *int64 `json:"editingId"`
	ConfirmDeleteID *int64 `json:"confirmDeleteId"`
	SearchTerm      string `json:"searchTerm"`
	SortKey         string `json:"sortKey"`
	SortDirection   string `json:"sortDirection"`
	Message         string `json:"message,omitempty"`
}

func (c *Controller[T, D]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filterLocked()
	c.sortLocked(filtered)

	total := len(filtered)
	totalPages := (total + c.pageSize - 1) / c.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	// clamp rather than render an empty page when the filter shrinks the
	// result set under the current page
	page := c.page
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	view := View[T]{
		Items:         filtered[start:end],
		TotalItems:    total,
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      c.pageSize,
		Loading:       c.loading,
		FormMode:      c.formMode.String(),
		SearchTerm:    c.searchTerm,
		SortKey:       c.sortKey,
		SortDirection: c.sortDir.String(),
		Message:       c.message,
	}
	if c.editingID != nil {
		id := *c.editingID
		view.EditingID = &id
	}
	if c.confirmDeleteID != nil {
		id := *c.confirmDeleteID
		view.ConfirmDeleteID = &id
	}
	return view
}

// filterLocked keeps items where any configured text field contains the
// term, case-insensitively. An empty term keeps everything.
func (c *Controller[T, D]) filterLocked() []T {
	if c.searchTerm == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}

	term := strings.ToLower(c.searchTerm)
	var out []T
	for _, item := range c.items {
		for _, field := range c.cfg.SearchFields {
			if strings.Contains(strings.ToLower(field(item)), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (c *Controller[T, D]) sortLocked(items []T) {
	if c.sortKey == "" {
		return
	}
	accessor, ok := c.cfg.SortKeys[c.sortKey]
	if !ok {
		return
	}
	desc := c.sortDir == Descending
	sort.SliceStable(items, func(i, j int) bool {
		cmp := accessor(items[i]).compare(accessor(items[j]), c.collator)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

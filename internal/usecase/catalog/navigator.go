package catalog

import domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"

// videoCategoryAll is the navigator's filter wildcard. Video categories
// are free text, independent of the service category enumeration.
const videoCategoryAll = "all"

// Navigator maintains a selected position inside a filtered video list
// with wraparound stepping, mirroring the gallery controls of the video
// browsing view. It is not safe for concurrent use; each view owns its
// navigator.
type Navigator struct {
	videos   []domain.Video
	filtered []domain.Video
	category string
	index    int
}

// NewNavigator creates a navigator over the given videos with the filter
// set to all.
func NewNavigator(videos []domain.Video) *Navigator {
	n := &Navigator{videos: videos}
	n.SetCategory(videoCategoryAll)
	return n
}

// SetCategory replaces the category filter and resets the selection to the
// first filtered video.
func (n *Navigator) SetCategory(category string) {
	if category == "" {
		category = videoCategoryAll
	}
	n.category = category
	n.index = 0

	n.filtered = n.filtered[:0]
	for _, v := range n.videos {
		if category == videoCategoryAll || v.Category == category {
			n.filtered = append(n.filtered, v)
		}
	}
}

// Categories returns the distinct video categories in first-seen order,
// prefixed with the "all" wildcard.
func (n *Navigator) Categories() []string {
	out := []string{videoCategoryAll}
	seen := make(map[string]bool)
	for _, v := range n.videos {
		if !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, v.Category)
		}
	}
	return out
}

// Current returns the selected video, or false when the filtered list is
// empty.
func (n *Navigator) Current() (*domain.Video, bool) {
	if len(n.filtered) == 0 {
		return nil, false
	}
	v := n.filtered[n.index]
	return &v, true
}

// Index returns the selected position within the filtered list.
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the number of videos passing the current filter.
func (n *Navigator) Len() int {
	return len(n.filtered)
}

// Next advances the selection, wrapping from the last video to the first.
// No-op on an empty filtered list.
func (n *Navigator) Next() {
	if len(n.filtered) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.filtered)
}

// Prev steps the selection back, wrapping from the first video to the
// last. No-op on an empty filtered list.
func (n *Navigator) Prev() {
	if len(n.filtered) == 0 {
		return
	}
	n.index = (n.index - 1 + len(n.filtered)) % len(n.filtered)
}

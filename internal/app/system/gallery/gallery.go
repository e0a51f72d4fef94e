// Package gallery holds the view state of a project media gallery: which
// item is selected and whether the lightbox overlay is open.
//
// The state is rebuilt on every request from query parameters (see
// FromRequest) and every link the page renders carries the state that
// results from applying one transition to a copy of the current state.
package gallery

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ErrIndexOutOfRange is returned when a selection falls outside the collection.
var ErrIndexOutOfRange = errors.New("gallery: index out of range")

// Mode is the presentation mode of the gallery.
type Mode int

const (
	Browsing Mode = iota
	LightboxOpen
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case LightboxOpen:
		return "lightbox"
	default:
		return "unknown"
	}
}

// Direction is a lightbox navigation direction.
type Direction int

const (
	Next Direction = iota
	Prev
)

// Query parameter names used to carry the state between requests.
const (
	ParamMedia   = "media"
	ParamView    = "view"
	viewLightbox = "lightbox"
)

// State is the gallery view state over a collection of count items.
// The zero value is an empty gallery.
type State struct {
	count    int
	selected int
	mode     Mode
}

// New returns a browsing state with the first item selected.
func New(count int) State {
	if count < 0 {
		count = 0
	}
	return State{count: count}
}

// Restore rebuilds a state from externally supplied values, applying the
// same guard as Sync: an index outside the collection resets to 0. A
// lightbox cannot be open over an empty collection.
func Restore(count, index int, open bool) State {
	s := New(count)
	if index >= 0 && index < s.count {
		s.selected = index
	}
	if open && s.count > 0 {
		s.mode = LightboxOpen
	}
	return s
}

// FromRequest restores the state for a collection of count items from the
// media and view query parameters.
func FromRequest(r *http.Request, count int) State {
	idx, err := strconv.Atoi(query.Get(r, ParamMedia))
	if err != nil {
		idx = 0
	}
	return Restore(count, idx, query.Get(r, ParamView) == viewLightbox)
}

func (s State) Count() int { return s.count }

func (s State) SelectedIndex() int { return s.selected }

func (s State) Mode() Mode { return s.mode }

func (s State) LightboxOpen() bool { return s.mode == LightboxOpen }

// Empty reports whether there is nothing to display.
func (s State) Empty() bool { return s.count == 0 }

// SelectThumbnail selects item i without changing the mode.
func (s *State) SelectThumbnail(i int) error {
	if i < 0 || i >= s.count {
		return ErrIndexOutOfRange
	}
	s.selected = i
	return nil
}

// OpenLightbox selects item i and opens the lightbox.
func (s *State) OpenLightbox(i int) error {
	if err := s.SelectThumbnail(i); err != nil {
		return err
	}
	s.mode = LightboxOpen
	return nil
}

// CloseLightbox returns to browsing and keeps the selection.
func (s *State) CloseLightbox() {
	s.mode = Browsing
}

// Navigate moves the selection one step, wrapping at both ends.
func (s *State) Navigate(d Direction) {
	if s.count == 0 {
		return
	}
	switch d {
	case Next:
		s.selected = (s.selected + 1) % s.count
	case Prev:
		s.selected = (s.selected - 1 + s.count) % s.count
	}
}

// Sync adapts the state to a backing collection that now has count items.
// An empty collection closes the lightbox; a selection past the end resets
// to the first item.
func (s *State) Sync(count int) {
	if count < 0 {
		count = 0
	}
	s.count = count
	if count == 0 {
		s.selected = 0
		s.mode = Browsing
		return
	}
	if s.selected >= count {
		s.selected = 0
	}
}

// Selected returns the selected item, or false for an empty collection or
// one that no longer matches the state.
func (s State) Selected(items []models.MediaItem) (models.MediaItem, bool) {
	if len(items) == 0 || s.selected >= len(items) {
		return models.MediaItem{}, false
	}
	return items[s.selected], true
}

// Encode writes the state into q, removing parameters that hold defaults.
func (s State) Encode(q url.Values) {
	q.Del(ParamMedia)
	q.Del(ParamView)
	if s.selected > 0 {
		q.Set(ParamMedia, strconv.Itoa(s.selected))
	}
	if s.mode == LightboxOpen {
		q.Set(ParamView, viewLightbox)
	}
}

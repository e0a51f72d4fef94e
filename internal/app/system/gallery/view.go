package gallery

import (
	"fmt"
	"net/url"

	"github.com/dalemusser/portfolio/internal/domain/models"
)

// Thumb is one entry of the thumbnail strip.
type Thumb struct {
	Index     int
	Item      models.MediaItem
	Active    bool
	URL       string
	AriaLabel string
}

// View is everything a template needs to draw the gallery and lightbox.
type View struct {
	Empty    bool
	Count    int
	Index    int
	Position string // "2 of 4"
	Selected models.MediaItem
	Lightbox bool

	OpenURL  string
	CloseURL string
	PrevURL  string
	NextURL  string

	// ShowStrip and ShowArrows are false for single-item galleries.
	ShowStrip  bool
	ShowArrows bool
	Thumbs     []Thumb

	MainAriaLabel string
}

// LinkFunc turns a state into a URL for the page hosting the gallery.
type LinkFunc func(State) string

// QueryLink returns a LinkFunc that keeps base's path and query and swaps in
// the gallery parameters. fragment, if set, is appended as #fragment.
func QueryLink(base *url.URL, fragment string) LinkFunc {
	return func(s State) string {
		u := *base
		q := u.Query()
		s.Encode(q)
		u.RawQuery = q.Encode()
		u.Fragment = fragment
		return u.String()
	}
}

// Build computes the view for items under state s. The state is synced to
// the collection first, so a stale index never reaches the template.
func Build(items []models.MediaItem, s State, link LinkFunc) View {
	s.Sync(len(items))

	selected, ok := s.Selected(items)
	if !ok {
		return View{Empty: true}
	}

	v := View{
		Count:      s.Count(),
		Index:      s.SelectedIndex(),
		Position:   fmt.Sprintf("%d of %d", s.SelectedIndex()+1, s.Count()),
		Selected:   selected,
		Lightbox:   s.LightboxOpen(),
		ShowStrip:  s.Count() > 1,
		ShowArrows: s.Count() > 1,
	}
	v.MainAriaLabel = fmt.Sprintf("View %s %s in lightbox. %s", selected.KindLabel(), v.Position, selected.Caption)

	open := s
	_ = open.OpenLightbox(s.SelectedIndex())
	v.OpenURL = link(open)

	closed := s
	closed.CloseLightbox()
	v.CloseURL = link(closed)

	prev := s
	prev.Navigate(Prev)
	v.PrevURL = link(prev)

	next := s
	next.Navigate(Next)
	v.NextURL = link(next)

	v.Thumbs = make([]Thumb, len(items))
	for i, it := range items {
		t := s
		_ = t.SelectThumbnail(i)
		desc := it.Caption
		if desc == "" {
			desc = it.Label
		}
		v.Thumbs[i] = Thumb{
			Index:     i,
			Item:      it,
			Active:    i == s.SelectedIndex(),
			URL:       link(t),
			AriaLabel: fmt.Sprintf("View %s %d. %s", it.KindLabel(), i+1, desc),
		}
	}

	return v
}

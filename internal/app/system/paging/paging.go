// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of project cards shown per portfolio page.
const PageSize = 6

// ParamPage is the query parameter carrying a page-change request.
const ParamPage = "page"

// ParsePage extracts the 1-based "page" query parameter.
// Returns 0 if not present or not a number; callers treat 0 as "no request".
func ParsePage(r *http.Request) int {
	s := query.Get(r, ParamPage)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Pager is the view state of a paged list: the current page over a list of
// a known size. Pages are 1-based. An empty list still has one (empty) page
// so Current is always a valid page number.
type Pager struct {
	size    int
	total   int
	current int
}

// New returns a Pager on page 1. A pageSize below 1 falls back to PageSize.
func New(itemCount, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = PageSize
	}
	if itemCount < 0 {
		itemCount = 0
	}
	return &Pager{size: pageSize, total: itemCount, current: 1}
}

// PageSize returns the number of items per page.
func (p *Pager) PageSize() int { return p.size }

// ItemCount returns the size of the backing list.
func (p *Pager) ItemCount() int { return p.total }

// Current returns the current page number.
func (p *Pager) Current() int { return p.current }

// TotalPages returns ceil(itemCount / pageSize).
func (p *Pager) TotalPages() int {
	return (p.total + p.size - 1) / p.size
}

// lastPage is TotalPages, but never below 1.
func (p *Pager) lastPage() int {
	if n := p.TotalPages(); n > 0 {
		return n
	}
	return 1
}

// ChangePage moves to page n. Requests outside [1, TotalPages] are ignored
// and ChangePage reports false; it never clamps to a neighbouring page.
func (p *Pager) ChangePage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.current = n
	return true
}

// Resize recomputes the page count for a list of itemCount items. If the
// current page no longer exists it is clamped to the last page.
func (p *Pager) Resize(itemCount int) {
	if itemCount < 0 {
		itemCount = 0
	}
	p.total = itemCount
	if last := p.lastPage(); p.current > last {
		p.current = last
	}
}

// Bounds returns the half-open slice bounds [start, end) of the current page.
func (p *Pager) Bounds() (start, end int) {
	start = (p.current - 1) * p.size
	end = start + p.size
	if start > p.total {
		start = p.total
	}
	if end > p.total {
		end = p.total
	}
	return start, end
}

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.current > 1 }

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool { return p.current < p.TotalPages() }

// PrevPage returns the previous page number (or the current one at page 1).
func (p *Pager) PrevPage() int {
	if p.HasPrev() {
		return p.current - 1
	}
	return p.current
}

// NextPage returns the next page number (or the current one on the last page).
func (p *Pager) NextPage() int {
	if p.HasNext() {
		return p.current + 1
	}
	return p.current
}

// Window returns the items visible on the pager's current page.
func Window[T any](items []T, p *Pager) []T {
	start, end := p.Bounds()
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return items[start:end]
}

// Link is one numbered control in a pagination bar.
type Link struct {
	Number int
	URL    string
	Active bool
}

// Links returns one Link per page, marking the current page active.
// urlFn builds the URL for a page number.
func (p *Pager) Links(urlFn func(page int) string) []Link {
	n := p.TotalPages()
	links := make([]Link, 0, n)
	for i := 1; i <= n; i++ {
		links = append(links, Link{Number: i, URL: urlFn(i), Active: i == p.current})
	}
	return links
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start int // 1-based start index (0 if no results)
	End   int // 1-based end index (0 if no results)
	Total int
}

// ComputeRange calculates the "Showing Start–End of Total" values for the
// pager's current page.
func ComputeRange(p *Pager) Range {
	start, end := p.Bounds()
	if start == end {
		return Range{Total: p.total}
	}
	return Range{Start: start + 1, End: end, Total: p.total}
}

// URL returns base with the page parameter set. Page 1 keeps the parameter
// so an explicit request overrides a remembered page.
func URL(base string, page int) string {
	if page < 1 {
		page = 1
	}
	return base + "?" + ParamPage + "=" + strconv.Itoa(page)
}

// View is what the shared pagination partial renders.
type View struct {
	Show    bool // more than one page
	Links   []Link
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
	Range   Range
}

// View builds the pagination controls for the current page.
func (p *Pager) View(urlFn func(page int) string) View {
	return View{
		Show:    p.TotalPages() > 1,
		Links:   p.Links(urlFn),
		HasPrev: p.HasPrev(),
		HasNext: p.HasNext(),
		PrevURL: urlFn(p.PrevPage()),
		NextURL: urlFn(p.NextPage()),
		Range:   ComputeRange(p),
	}
}

package todo

// Paginate splits tasks into pages of pageSize items, newest first.
// tasks is in storage order (oldest at index 0).
func Paginate(tasks []string, pageSize int) [][]string {
	if pageSize <= 0 {
		return nil
	}

	pages := make([][]string, 0, (len(tasks)+pageSize-1)/pageSize)
	for i := 0; i < len(tasks); i++ {
		pageIdx := i / pageSize
		if len(pages) <= pageIdx {
			pages = append(pages, make([]string, 0, pageSize))
		}
		pages[pageIdx] = append(pages[pageIdx], tasks[len(tasks)-1-i])
	}
	return pages
}

// Pager holds the derived page set and the current page selection.
type Pager struct {
	pageSize int
	total    int
	pages    [][]string
	current  int
}

// NewPager creates an empty pager for the given page size.
func NewPager(pageSize int) *Pager {
	return &Pager{pageSize: pageSize}
}

// Reload recomputes all pages from tasks and clamps the current page.
// With no tasks the current page is reset to 0 and HasPages reports false.
func (p *Pager) Reload(tasks []string) {
	p.pages = Paginate(tasks, p.pageSize)
	p.total = len(tasks)

	if len(p.pages) == 0 {
		p.current = 0
		return
	}
	p.current = clampInt(p.current, 0, len(p.pages)-1)
}

func (p *Pager) PageSize() int  { return p.pageSize }
func (p *Pager) PageCount() int { return len(p.pages) }
func (p *Pager) HasPages() bool { return len(p.pages) > 0 }

// Current returns the current page index. Only meaningful when HasPages is true.
func (p *Pager) Current() int { return p.current }

// Page returns the items on the current page, or nil when there are no pages.
func (p *Pager) Page() []string {
	if !p.HasPages() {
		return nil
	}
	return p.pages[p.current]
}

// Item returns the task shown at slot on the current page.
func (p *Pager) Item(slot int) (string, bool) {
	page := p.Page()
	if slot < 0 || slot >= len(page) {
		return "", false
	}
	return page[slot], true
}

func (p *Pager) CanForward() bool { return p.HasPages() && p.current < len(p.pages)-1 }
func (p *Pager) CanBack() bool    { return p.HasPages() && p.current > 0 }

// Forward advances one page. Returns false if already on the last page.
func (p *Pager) Forward() bool {
	if !p.CanForward() {
		return false
	}
	p.current++
	return true
}

// Back goes to the previous page. Returns false if already on the first page.
func (p *Pager) Back() bool {
	if !p.CanBack() {
		return false
	}
	p.current--
	return true
}

// AbsoluteIndex maps a slot on the current page back to its index in the
// underlying task list, or -1 if the slot is empty.
func (p *Pager) AbsoluteIndex(slot int) int {
	if _, ok := p.Item(slot); !ok {
		return -1
	}
	return p.total - 1 - slot - p.pageSize*p.current
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

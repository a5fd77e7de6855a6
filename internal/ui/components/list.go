package components

// List tracks a cursor and a scroll window over n rows. The rows themselves
// are rendered by the caller.
type List struct {
	Len      int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// Reset replaces the row count and moves the cursor to the top.
func (l *List) Reset(n int) {
	l.Len = n
	l.Cursor = 0
	l.Offset = 0
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < l.Len-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset++
		}
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		if l.Cursor < l.Offset {
			l.Offset--
		}
	}
}

// SetPageSize changes the window height, keeping the cursor in view.
func (l *List) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	l.PageSize = n
	if l.Cursor >= l.Offset+n {
		l.Offset = l.Cursor - n + 1
	}
}

// Window returns the visible half-open row range.
func (l *List) Window() (start, end int) {
	if l.Len == 0 {
		return 0, 0
	}
	end = l.Offset + l.PageSize
	if end > l.Len {
		end = l.Len
	}
	return l.Offset, end
}

// Selected returns the index of the selected row, -1 when empty.
func (l *List) Selected() int {
	if l.Len == 0 {
		return -1
	}
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return l.Len > 0 && absIdx == l.Cursor
}

// AtTop reports whether the cursor is on the first row or the list is empty.
func (l *List) AtTop() bool {
	return l.Cursor == 0
}

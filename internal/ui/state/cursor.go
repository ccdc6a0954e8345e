package state

// MoveCursorUp moves to the previous selectable item, wrapping to the bottom.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown moves to the next selectable item, wrapping to the top.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

// MoveCursorHome moves the cursor to the first selectable item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.firstSelectable(0, 1)
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last selectable item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.firstSelectable(n-1, -1)
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	next := old
	for range n {
		next = (next + delta + n) % n
		if selectable(l.Items[next]) {
			l.Cursor = next
			break
		}
	}
	return l.Cursor != old
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	direction := 1
	if delta < 0 {
		direction = -1
	}
	l.Cursor = l.firstSelectable(l.Cursor, direction)
	return l.Cursor != old
}

// firstSelectable scans from start in direction for an item the cursor may
// rest on, then tries the opposite direction. It returns start when every
// item is a separator.
func (l *Level) firstSelectable(start, direction int) int {
	n := len(l.Items)
	if n == 0 {
		return 0
	}
	if start < 0 {
		start = 0
	}
	if start >= n {
		start = n - 1
	}
	for i := start; i >= 0 && i < n; i += direction {
		if selectable(l.Items[i]) {
			return i
		}
	}
	for i := start; i >= 0 && i < n; i -= direction {
		if selectable(l.Items[i]) {
			return i
		}
	}
	return start
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(len(l.Items)-maxVisible, 0)
	l.ViewportOffset = min(max(l.ViewportOffset, 0), maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = min(max(l.Cursor-maxVisible+1, 0), maxOffset)
	}
}

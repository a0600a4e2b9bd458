package state

// Cursor tracks a selection and viewport offset within a list. The list
// itself lives elsewhere; callers pass its current length.
type Cursor struct {
	Index  int
	Offset int
}

// Move shifts the cursor by delta, clamped to [0, total). No wrapping.
func (c *Cursor) Move(delta, total int) bool {
	if total == 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	if c.Index < 0 {
		c.Index = 0
	}
	c.Index += delta
	if c.Index < 0 {
		c.Index = 0
	}
	if c.Index >= total {
		c.Index = total - 1
	}
	return c.Index != old
}

// PageUp moves up by the page size.
func (c *Cursor) PageUp(page, total int) bool {
	return c.Move(-pageSize(page, total), total)
}

// PageDown moves down by the page size.
func (c *Cursor) PageDown(page, total int) bool {
	return c.Move(pageSize(page, total), total)
}

func pageSize(page, total int) int {
	if total == 0 {
		return 0
	}
	size := page
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Clamp pulls the cursor back in range after the list shrank.
func (c *Cursor) Clamp(total int) {
	if total == 0 {
		c.Index = 0
		c.Offset = 0
		return
	}
	if c.Index < 0 {
		c.Index = 0
	}
	if c.Index >= total {
		c.Index = total - 1
	}
}

// Reset returns the cursor to the top of the list.
func (c *Cursor) Reset() {
	c.Index = 0
	c.Offset = 0
}

// EnsureVisible adjusts the viewport offset so the cursor stays on
// screen given the number of visible rows.
func (c *Cursor) EnsureVisible(total, visible int) {
	c.Clamp(total)
	if total == 0 {
		return
	}
	if visible <= 0 {
		c.Offset = 0
		return
	}
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if upper := c.Offset + visible - 1; c.Index > upper {
		c.Offset = c.Index - visible + 1
		if c.Offset < 0 {
			c.Offset = 0
		}
		if c.Offset > maxOffset {
			c.Offset = maxOffset
		}
	}
}

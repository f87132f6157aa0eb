package nav

// cursorScroll tracks the cursor row within the viewport and the scroll
// offset, the index of the first visible item. The pair always names a
// valid visible item (or 0 on an empty listing); every operation is
// total, an out-of-range request clamps instead of failing.
type cursorScroll struct {
	cursor int
	scroll int
	height int
}

// index returns the logical visible-item index under the cursor.
func (c *cursorScroll) index() int {
	return c.scroll + c.cursor
}

// move shifts the logical index by delta over count visible items,
// wrapping modulo count or clamping. Scrolling is minimal: the view
// shifts only as far as needed to keep the target on screen.
func (c *cursorScroll) move(delta int, wrap bool, count int) {
	target := c.index() + delta
	if count <= 0 {
		c.cursor, c.scroll = 0, 0
		return
	}
	if wrap {
		target = ((target % count) + count) % count
	}
	c.moveTo(target, count)
}

// moveTo jumps the logical index to target, clamped to [0, count).
func (c *cursorScroll) moveTo(target, count int) {
	if count <= 0 {
		c.cursor, c.scroll = 0, 0
		return
	}
	if target < 0 {
		target = 0
	}
	if target >= count {
		target = count - 1
	}

	height := c.height
	if height <= 0 {
		height = 1
	}

	switch {
	case target < c.scroll:
		c.scroll = target
	case target >= c.scroll+height:
		c.scroll = target - height + 1
	}

	// Never leave blank rows below the listing when it fits higher up.
	if maxScroll := count - height; c.scroll > maxScroll {
		c.scroll = maxScroll
	}
	if c.scroll < 0 {
		c.scroll = 0
	}
	c.cursor = target - c.scroll
}

// setHeight updates the viewport height and re-clamps the position so
// the invariants survive terminal resizes.
func (c *cursorScroll) setHeight(height, count int) {
	if height < 1 {
		height = 1
	}
	c.height = height
	c.moveTo(c.index(), count)
}

// clamp re-establishes the invariants after the visible count changed.
func (c *cursorScroll) clamp(count int) {
	c.moveTo(c.index(), count)
}

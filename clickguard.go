package pclasso

import (
	"time"
)

// ClickGuardDuration is the time clicks are ignored after a drag.
const ClickGuardDuration = 100 * time.Millisecond

type clickGuard struct {
	deadline time.Time
	moved    bool
	now      func() time.Time
}

func (c *clickGuard) time() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *clickGuard) Move() {
	c.moved = true
}

func (c *clickGuard) DragStart() {
	c.moved = false
}

func (c *clickGuard) DragEnd() {
	c.deadline = c.time().Add(ClickGuardDuration)
}

func (c *clickGuard) Click() bool {
	return c.deadline.IsZero() || !c.moved || c.deadline.Before(c.time())
}

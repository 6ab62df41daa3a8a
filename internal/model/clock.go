package model

import (
	"sync"
	"time"
)

// Clock accumulates the wall time a colour spends on its own turns.
type Clock struct {
	mu          sync.Mutex
	spent       time.Duration
	lastStarted time.Time // When the clock was last started
	isRunning   bool
	now         func() time.Time
}

type ClientClock struct {
	TimeSpent int `json:"timeSpent"` // tenths of a second
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.spent += c.now().Sub(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) Spent() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.spent + c.now().Sub(c.lastStarted)
	}
	return c.spent
}

func (c *Clock) Client() ClientClock {
	return ClientClock{TimeSpent: int(c.Spent().Milliseconds() / 100)}
}

// Package capacity tracks the size of fixed-capacity containers.
//
// Counter is embedded by value in every container of this module. It owns
// no storage; it only records how many of a fixed number of slots are in use.
package capacity

// Counter records a size bounded by a capacity fixed at construction.
type Counter struct {
	size     int
	capacity int
}

// New returns an empty Counter. A negative capacity is treated as zero.
func New(capacity int) Counter {
	return Counter{capacity: max(capacity, 0)}
}

// Size returns the number of slots in use.
func (c *Counter) Size() int { return c.size }

// Capacity returns the fixed number of slots.
func (c *Counter) Capacity() int { return c.capacity }

// Available returns the number of unused slots.
func (c *Counter) Available() int { return c.capacity - c.size }

// Full reports whether every slot is in use.
func (c *Counter) Full() bool { return c.size == c.capacity }

// Empty reports whether no slot is in use.
func (c *Counter) Empty() bool { return c.size == 0 }

// Set records n slots in use, clamped to [0, Capacity()]. It returns the
// stored size.
func (c *Counter) Set(n int) int {
	c.size = min(max(n, 0), c.capacity)
	return c.size
}

// Grow adds up to n slots and returns how many were actually added.
func (c *Counter) Grow(n int) int {
	n = min(max(n, 0), c.Available())
	c.size += n
	return n
}

// Shrink releases up to n slots and returns how many were actually released.
func (c *Counter) Shrink(n int) int {
	n = min(max(n, 0), c.size)
	c.size -= n
	return n
}

// Reset marks every slot unused.
func (c *Counter) Reset() { c.size = 0 }

package txtrack

import "slices"

// Collector accumulates transactions up to a fixed capacity.
//
// It is not safe for concurrent use. The pipeline owns one collector per run and is
// its only writer.
type Collector struct {
	capacity int
	items    []Transaction
}

// NewCollector returns an empty Collector that holds at most capacity transactions.
// A capacity below one is raised to one.
func NewCollector(capacity int) *Collector {
	capacity = max(capacity, 1)

	return &Collector{
		capacity: capacity,
		items:    make([]Transaction, 0, capacity),
	}
}

// Offer stores tx and reports whether the collector still accepts transactions.
//
// The offer that fills the collector is stored and returns false. Offers made after
// that are dropped and also return false.
func (c *Collector) Offer(tx Transaction) bool {
	if c.Full() {
		return false
	}

	c.items = append(c.items, tx)
	return !c.Full()
}

// Full reports whether the collector reached its capacity.
func (c *Collector) Full() bool {
	return len(c.items) >= c.capacity
}

// Len returns the number of stored transactions.
func (c *Collector) Len() int {
	return len(c.items)
}

// Cap returns the capacity of the collector.
func (c *Collector) Cap() int {
	return c.capacity
}

// Transactions returns the stored transactions in the order they were accepted.
func (c *Collector) Transactions() []Transaction {
	return slices.Clone(c.items)
}

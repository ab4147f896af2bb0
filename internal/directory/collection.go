package directory

import "fmt"

// Status tracks the collection's load lifecycle. Both Ready and Failed
// are terminal: the directory is fetched exactly once per session, a
// deliberate choice for a bounded dataset. Refreshing means restarting.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Collection owns the raw record list once loaded. Items are never
// mutated after Ready; consumers derive views from them.
type Collection struct {
	Status Status
	Items  []Record
	Err    error
}

// Ready transitions Pending -> Ready with the fetched records. The
// transition is a no-op once the collection has left Pending.
func (c *Collection) Ready(items []Record) {
	if c.Status != StatusPending {
		return
	}
	c.Status = StatusReady
	c.Items = cloneRecords(items)
}

// Fail transitions Pending -> Failed, recording the load error. No
// partial data is ever kept alongside a failure.
func (c *Collection) Fail(err error) {
	if c.Status != StatusPending {
		return
	}
	c.Status = StatusFailed
	c.Err = err
	c.Items = nil
}

func cloneRecords(items []Record) []Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Record, len(items))
	copy(dup, items)
	return dup
}

package core

// ReadyQueue holds processes that have arrived and are waiting for the CPU.
type ReadyQueue interface {
	Admit(p *Process)
	IsEmpty() bool
	PeekAll() []*Process
	Len() int
}

// FifoQueue serves processes in admission order.
type FifoQueue struct {
	items []*Process
}

func NewFifoQueue() *FifoQueue {
	return &FifoQueue{items: make([]*Process, 0)}
}

func (q *FifoQueue) Admit(p *Process) {
	q.items = append(q.items, p)
}

func (q *FifoQueue) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *FifoQueue) Len() int {
	return len(q.items)
}

func (q *FifoQueue) PeekAll() []*Process {
	out := make([]*Process, len(q.items))
	copy(out, q.items)
	return out
}

// Pop removes the head, or returns nil when empty.
func (q *FifoQueue) Pop() *Process {
	if len(q.items) == 0 {
		return nil
	}
	p := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return p
}

// PriorityQueue serves the minimum under less. less must be a strict total
// order (the comparators in this package end with input order).
type PriorityQueue struct {
	items []*Process
	less  func(a, b *Process) bool
}

func NewPriorityQueue(less func(a, b *Process) bool) *PriorityQueue {
	return &PriorityQueue{items: make([]*Process, 0), less: less}
}

func (q *PriorityQueue) Admit(p *Process) {
	q.items = append(q.items, p)
}

func (q *PriorityQueue) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *PriorityQueue) Len() int {
	return len(q.items)
}

func (q *PriorityQueue) PeekAll() []*Process {
	out := make([]*Process, len(q.items))
	copy(out, q.items)
	return out
}

// PopMin removes and returns the minimum, or nil when empty.
func (q *PriorityQueue) PopMin() *Process {
	return q.PopMinBy(q.less)
}

// PopMinBy is PopMin with a one-off ordering, used when the decision depends
// on state outside the queue (the process that ran last).
func (q *PriorityQueue) PopMinBy(less func(a, b *Process) bool) *Process {
	if len(q.items) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(q.items); i++ {
		if less(q.items[i], q.items[best]) {
			best = i
		}
	}
	p := q.items[best]
	q.items = append(q.items[:best], q.items[best+1:]...)
	return p
}

// MultilevelQueue is an ordered set of FIFO queues; level 0 is served first.
type MultilevelQueue struct {
	levels []*FifoQueue
}

func NewMultilevelQueue(levelCount int) *MultilevelQueue {
	levels := make([]*FifoQueue, levelCount)
	for i := range levels {
		levels[i] = NewFifoQueue()
	}
	return &MultilevelQueue{levels: levels}
}

// Admit appends p to the queue of p.QueueLevel.
func (q *MultilevelQueue) Admit(p *Process) {
	q.levels[p.QueueLevel].Admit(p)
}

func (q *MultilevelQueue) IsEmpty() bool {
	return q.Len() == 0
}

func (q *MultilevelQueue) Len() int {
	n := 0
	for _, level := range q.levels {
		n += level.Len()
	}
	return n
}

// PeekAll lists waiting processes in service order.
func (q *MultilevelQueue) PeekAll() []*Process {
	out := make([]*Process, 0, q.Len())
	for _, level := range q.levels {
		out = append(out, level.PeekAll()...)
	}
	return out
}

func (q *MultilevelQueue) LevelCount() int {
	return len(q.levels)
}

func (q *MultilevelQueue) Level(i int) *FifoQueue {
	return q.levels[i]
}

// Pop removes the head of the highest-priority non-empty level.
func (q *MultilevelQueue) Pop() *Process {
	for _, level := range q.levels {
		if !level.IsEmpty() {
			return level.Pop()
		}
	}
	return nil
}

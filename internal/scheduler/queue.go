package scheduler

import (
	"container/heap"
	"errors"
	"time"
)

var ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")

type Kind string

const (
	KindNotificationDismiss Kind = "notification_dismiss"
	KindNotificationRemove  Kind = "notification_remove"
	KindTaskRemoval         Kind = "task_removal"
)

// Event is one scheduled callback. ID is assigned by Schedule and doubles as
// the cancellation handle; Ref points at whatever the callback acts on.
type Event struct {
	ID        uint64
	Kind      Kind
	Ref       int64
	TriggerAt time.Time
}

type queueItem struct {
	event Event
	index int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	a, b := pq[i].event, pq[j].event
	if a.TriggerAt.Equal(b.TriggerAt) {
		return a.ID < b.ID
	}
	return a.TriggerAt.Before(b.TriggerAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// Queue is a time-ordered set of pending events. It has no clock of its own:
// callers decide what "now" is, which keeps tests deterministic. Queue is not
// safe for concurrent use.
type Queue struct {
	items  priorityQueue
	byID   map[uint64]*queueItem
	nextID uint64
}

func NewQueue() *Queue {
	return &Queue{
		items: make(priorityQueue, 0),
		byID:  make(map[uint64]*queueItem),
	}
}

func (q *Queue) Schedule(ev Event) (uint64, error) {
	if ev.TriggerAt.IsZero() {
		return 0, ErrInvalidTriggerTime
	}
	q.nextID++
	ev.ID = q.nextID
	item := &queueItem{event: ev}
	heap.Push(&q.items, item)
	q.byID[ev.ID] = item
	return ev.ID, nil
}

// Cancel drops a pending event. It reports false when the event already fired
// or was never scheduled.
func (q *Queue) Cancel(id uint64) bool {
	item, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.items, item.index)
	delete(q.byID, id)
	return true
}

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) Peek() (Event, bool) {
	if len(q.items) == 0 {
		return Event{}, false
	}
	return q.items[0].event, true
}

// PopDue removes and returns every event with TriggerAt <= now, earliest first.
func (q *Queue) PopDue(now time.Time) []Event {
	out := make([]Event, 0)
	for len(q.items) > 0 {
		next := q.items[0].event
		if next.TriggerAt.After(now) {
			break
		}
		item := heap.Pop(&q.items).(*queueItem)
		delete(q.byID, item.event.ID)
		out = append(out, item.event)
	}
	return out
}

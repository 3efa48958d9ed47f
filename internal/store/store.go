// Package store owns the task collection. Every mutation produces a new
// collection value, writes it through to the persister and then notifies
// subscribers.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/abatilo/checkmate/internal/task"
)

// Persister is the durable side of the store. Implementations must not fail:
// write errors are theirs to handle, the in-memory collection stays
// authoritative.
type Persister interface {
	LoadTasks(ctx context.Context) task.Collection
	SaveTasks(ctx context.Context, c task.Collection)
	LoadSequence(ctx context.Context) int64
	SaveSequence(ctx context.Context, n int64)
}

// Op names the operation that produced an Event.
type Op string

const (
	OpAdd            Op = "add"
	OpDelete         Op = "delete"
	OpToggleComplete Op = "toggle"
	OpEditText       Op = "edit"
	OpChangePriority Op = "priority"
)

// Event is delivered to subscribers after a mutation was written through.
type Event struct {
	Op    Op
	ID    int64
	Tasks task.Collection
	// Completed is true when the event moved a task from active to complete.
	Completed bool
}

// Store is the single owner of the task collection.
type Store struct {
	mu     sync.Mutex
	p      Persister
	now    func() time.Time
	tasks  task.Collection
	lastID int64

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Event)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for new task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store. Call Initialize to load persisted tasks.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		p:     p,
		now:   time.Now,
		tasks: task.Collection{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize replaces the in-memory collection with the persisted one.
func (s *Store) Initialize(ctx context.Context) task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = s.p.LoadTasks(ctx).Clone()
	s.lastID = max(s.p.LoadSequence(ctx), s.tasks.MaxID())
	return s.tasks.Clone()
}

// Tasks returns a snapshot of the collection.
func (s *Store) Tasks() task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tasks.Clone()
}

// Subscribe registers fn to receive an Event after every mutation.
// Subscribers are notified in the order they subscribed. The returned func
// removes the subscription. fn runs while the store is locked and must not
// call back into the store.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

// Add appends a task built from d. Blank text or a priority or mood outside
// their allowed values leaves the collection unchanged.
func (s *Store) Add(ctx context.Context, d task.Draft) task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !d.Valid() {
		return s.tasks.Clone()
	}

	id := task.NextID(s.now(), s.lastID)
	next := make(task.Collection, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, d.Build(id))

	s.lastID = id
	s.p.SaveSequence(ctx, id)
	s.commit(ctx, next, Event{Op: OpAdd, ID: id}, true)
	return next.Clone()
}

// Delete removes the task with the given id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(task.Collection, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}

	s.commit(ctx, next, Event{Op: OpDelete, ID: id}, len(next) != len(s.tasks))
	return next.Clone()
}

// ToggleComplete flips the completion state of the task with the given id.
// completed reports whether this call moved it from active to complete.
func (s *Store) ToggleComplete(ctx context.Context, id int64) (task.Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var completed bool
	next, found := s.replace(id, func(t task.Task) task.Task {
		t.IsComplete = !t.IsComplete
		completed = t.IsComplete
		return t
	})

	s.commit(ctx, next, Event{Op: OpToggleComplete, ID: id, Completed: completed}, found)
	return next.Clone(), completed
}

// EditText replaces the text of the task with the given id. Blank text
// leaves the collection unchanged.
func (s *Store) EditText(ctx context.Context, id int64, text string) task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.IsBlank(text) {
		return s.tasks.Clone()
	}

	next, found := s.replace(id, func(t task.Task) task.Task {
		t.Text = text
		return t
	})

	s.commit(ctx, next, Event{Op: OpEditText, ID: id}, found)
	return next.Clone()
}

// ChangePriority sets the priority of the task with the given id. An
// unknown priority leaves the collection unchanged.
func (s *Store) ChangePriority(ctx context.Context, id int64, p task.Priority) task.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !task.IsValidPriority(p) {
		return s.tasks.Clone()
	}

	next, found := s.replace(id, func(t task.Task) task.Task {
		t.Priority = p
		return t
	})

	s.commit(ctx, next, Event{Op: OpChangePriority, ID: id}, found)
	return next.Clone()
}

// replace returns a new collection in which the task with the given id was
// passed through fn. s.tasks is not modified.
func (s *Store) replace(id int64, fn func(task.Task) task.Task) (task.Collection, bool) {
	next := s.tasks.Clone()
	i := next.Index(id)
	if i < 0 {
		return next, false
	}
	next[i] = fn(next[i])
	return next, true
}

// commit installs next as the current collection and writes it through.
// Subscribers are only notified when the collection changed. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next task.Collection, ev Event, changed bool) {
	s.tasks = next
	s.p.SaveTasks(ctx, next.Clone())
	if !changed {
		return
	}

	for _, sub := range s.subs {
		ev.Tasks = next.Clone()
		sub.fn(ev)
	}
}

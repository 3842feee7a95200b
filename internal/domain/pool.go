package domain

import (
	"sync"
)

// Pool is the working in-memory collection of questions for one session.
// Records are ordered by entry, addressed by their permanent ID, and edited
// by whole-value replacement rather than in-place mutation. The zero value
// is not usable; create pools with NewPool.
type Pool struct {
	mu      sync.RWMutex
	items   []Question
	nextSeq int
}

// NewPool creates an empty question pool.
func NewPool() *Pool {
	return &Pool{nextSeq: 1}
}

// Append stores a copy of the question at the end of the pool, assigning the
// next sequence number. The question must already carry a non-empty ID.
func (p *Pool) Append(q Question) (Question, error) {
	if q.ID == "" {
		return Question{}, NewInvalidInputError("question ID is required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.indexOf(q.ID) >= 0 {
		return Question{}, NewInvalidInputError("question ID already in pool: " + q.ID)
	}
	stored := q.Clone()
	stored.Seq = p.nextSeq
	p.nextSeq++
	p.items = append(p.items, stored)
	return stored.Clone(), nil
}

// Replace swaps the record stored at the given identity for the supplied
// value, preserving the original ID and sequence number.
func (p *Pool) Replace(id string, q Question) (Question, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(id)
	if i < 0 {
		return Question{}, NewQuestionNotFoundError(id)
	}
	stored := q.Clone()
	stored.ID = p.items[i].ID
	stored.Seq = p.items[i].Seq
	p.items[i] = stored
	return stored.Clone(), nil
}

// Remove deletes the record with the given identity.
func (p *Pool) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(id)
	if i < 0 {
		return NewQuestionNotFoundError(id)
	}
	p.items = append(p.items[:i], p.items[i+1:]...)
	return nil
}

// Get returns a copy of the record with the given identity.
func (p *Pool) Get(id string) (Question, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i := p.indexOf(id)
	if i < 0 {
		return Question{}, false
	}
	return p.items[i].Clone(), true
}

// List returns copies of all records in entry order.
func (p *Pool) List() []Question {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Question, len(p.items))
	for i, q := range p.items {
		out[i] = q.Clone()
	}
	return out
}

// Len reports the number of records in the pool.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// Clear empties the pool. Sequence numbering restarts for the next entry.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.nextSeq = 1
}

// indexOf requires the caller to hold at least a read lock.
func (p *Pool) indexOf(id string) int {
	for i := range p.items {
		if p.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Package cache provides lemma caches that can be shared between requests.
package cache

import (
	"sync"
)

// Memory is a concurrency safe lemma cache. It remembers the entries added
// since the last Drain so they can be persisted.
type Memory struct {
	mu      sync.RWMutex
	lemmas  map[string]string
	pending map[string]string
}

// NewMemory returns an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{
		lemmas:  make(map[string]string),
		pending: make(map[string]string),
	}
}

func (m *Memory) Get(token string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lemma, ok := m.lemmas[token]
	return lemma, ok
}

// Set stores lemma for token unless token is already cached.
func (m *Memory) Set(token, lemma string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lemmas[token]; ok {
		return
	}
	m.lemmas[token] = lemma
	m.pending[token] = lemma
}

// Load adds previously persisted entries without marking them pending.
// Entries already cached are kept.
func (m *Memory) Load(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, lemma := range entries {
		if _, ok := m.lemmas[token]; !ok {
			m.lemmas[token] = lemma
		}
	}
}

// Drain returns the entries added since the previous call and forgets them.
func (m *Memory) Drain() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending
	m.pending = make(map[string]string)
	return out
}

// Restore marks entries as pending again, e.g. after a failed flush.
func (m *Memory) Restore(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, lemma := range entries {
		if _, ok := m.pending[token]; !ok {
			m.pending[token] = lemma
		}
	}
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lemmas)
}

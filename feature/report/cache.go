package report

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedDocument is a finished run kept for reuse.
type cachedDocument struct {
	doc   Document
	built time.Time
}

// documentCache keeps finished documents per validator name for ttl and
// coalesces concurrent runs of the same name.
type documentCache struct {
	mu   sync.RWMutex
	docs map[string]cachedDocument
	sf   singleflight.Group
	ttl  time.Duration
	now  func() time.Time
}

func newDocumentCache(ttl time.Duration, now func() time.Time) *documentCache {
	return &documentCache{docs: make(map[string]cachedDocument), ttl: ttl, now: now}
}

func (c *documentCache) fresh(name string) (Document, bool) {
	if c.ttl <= 0 {
		return Document{}, false
	}
	c.mu.RLock()
	entry, ok := c.docs[name]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.built) > c.ttl {
		return Document{}, false
	}
	return entry.doc, true
}

// getOrRun returns a fresh cached document or runs build. Concurrent
// callers for the same name share one build.
func (c *documentCache) getOrRun(ctx context.Context, name string, build func(context.Context) (Document, error)) (Document, error) {
	if doc, ok := c.fresh(name); ok {
		return doc, nil
	}

	result, err, _ := c.sf.Do(name, func() (interface{}, error) {
		if doc, ok := c.fresh(name); ok {
			return doc, nil
		}
		doc, err := build(ctx)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			c.docs[name] = cachedDocument{doc: doc, built: c.now()}
			c.mu.Unlock()
		}
		return doc, nil
	})
	if err != nil {
		return Document{}, err
	}
	return result.(Document), nil
}

// invalidate drops every cached document.
func (c *documentCache) invalidate() {
	c.mu.Lock()
	c.docs = make(map[string]cachedDocument)
	c.mu.Unlock()
}

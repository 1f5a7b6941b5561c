package storage

import (
	"context"
	"time"
)

// EventType identifies a storage lifecycle event.
type EventType string

const (
	EventUploadStarted     EventType = "storage:upload_started"
	EventUploadCompleted   EventType = "storage:upload_completed"
	EventUploadFailed      EventType = "storage:upload_failed"
	EventDownloadStarted   EventType = "storage:download_started"
	EventDownloadCompleted EventType = "storage:download_completed"
	EventDownloadFailed    EventType = "storage:download_failed"
)

// Event describes one step of an upload or download.
type Event struct {
	Type      EventType
	CID       string
	Path      string
	Err       error
	Timestamp time.Time
}

// Handler receives storage events. Handlers run synchronously on the
// goroutine performing the transfer.
type Handler func(ctx context.Context, evt Event)

// Subscribe registers handler for events of type t.
func (c *Client) Subscribe(t EventType, handler Handler) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subs[t] = append(c.subs[t], handler)
}

// SubscribeAll registers handler for every event.
func (c *Client) SubscribeAll(handler Handler) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subsAll = append(c.subsAll, handler)
}

func (c *Client) emit(ctx context.Context, evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}

	c.subMu.RLock()
	handlers := append([]Handler{}, c.subs[evt.Type]...)
	all := append([]Handler{}, c.subsAll...)
	c.subMu.RUnlock()

	for _, h := range handlers {
		h(ctx, evt)
	}
	for _, h := range all {
		h(ctx, evt)
	}
}

package types

// Event is a flattened ABCI event
type Event struct {
	Type       string
	Attributes map[string]string
}

// TxResult contains the outcome of an included transaction
type TxResult struct {
	TxHash    string
	Height    int64
	Code      uint32
	Codespace string
	RawLog    string
	GasWanted int64
	GasUsed   int64
	Events    []Event
	// Data is the hex encoded TxMsgData carrying the message responses.
	Data string
}

// Attribute returns the value of the first attribute key on an event of
// type eventType.
func (r *TxResult) Attribute(eventType, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, ev := range r.Events {
		if ev.Type != eventType {
			continue
		}
		if v, ok := ev.Attributes[key]; ok {
			return v, true
		}
	}
	return "", false
}

// TaskResult contains the result of a task creation
type TaskResult struct {
	TxResult
	TaskID string
}

// SubscriptionResult contains the thread a worker was subscribed to
type SubscriptionResult struct {
	TxResult
	ThreadID string
}

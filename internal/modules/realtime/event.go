package realtime

import "encoding/json"

// Kind categorizes a change event.
type Kind string

const (
	KindInsert Kind = "INSERT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
)

// Message is the human-readable notification shown for the event kind.
func (k Kind) Message() string {
	switch k {
	case KindInsert:
		return "New product added!"
	case KindUpdate:
		return "Products updated!"
	case KindDelete:
		return "Product removed"
	}
	return ""
}

// ChangeEvent is one row change on a watched table. Payload carries the
// changed row (the old row for deletes) and is passed through untouched;
// consumers refetch the catalog rather than applying deltas.
type ChangeEvent struct {
	Kind    Kind            `json:"kind"`
	Table   string          `json:"table"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// parseNotification decodes the JSON body produced by the notify trigger:
// {"action": "INSERT", "table": "products", "record": {...}}.
func parseNotification(body string) (ChangeEvent, error) {
	var raw struct {
		Action string          `json:"action"`
		Table  string          `json:"table"`
		Record json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return ChangeEvent{}, err
	}
	return ChangeEvent{
		Kind:    Kind(raw.Action),
		Table:   raw.Table,
		Payload: raw.Record,
	}, nil
}

package ws

import "encoding/json"

// Inbound event types understood by the broadcast channel.
const (
	TypeHint      = "hint"
	TypeLock      = "lock"
	TypeUnlock    = "unlock"
	TypeLockAll   = "lock_all"
	TypeUnlockAll = "unlock_all"
)

// HintEvent asks the server to broadcast a hint to every client.
type HintEvent struct {
	HintText string
}

// LockEvent asks the server to set a single team's lock flag.
type LockEvent struct {
	TeamName string
	Lock     bool
}

// LockAllEvent asks the server to set every team's lock flag.
type LockAllEvent struct {
	Lock bool
}

// UnknownEvent carries an inbound type the server does not handle.
type UnknownEvent struct {
	Type string
}

type rawEvent struct {
	Type     string          `json:"type"`
	HintText json.RawMessage `json:"hintText"`
	TeamName string          `json:"team_name"`
}

// DecodeEvent parses an inbound message into one of the event types above.
// A syntactically valid message with an unrecognized type decodes to
// UnknownEvent rather than an error.
func DecodeEvent(payload []byte) (any, error) {
	var raw rawEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	switch raw.Type {
	case TypeHint:
		// A missing or non-string hintText decodes to the empty string,
		// which the handler rejects with a private error reply.
		var text string
		if len(raw.HintText) > 0 {
			_ = json.Unmarshal(raw.HintText, &text)
		}
		return HintEvent{HintText: text}, nil
	case TypeLock:
		return LockEvent{TeamName: raw.TeamName, Lock: true}, nil
	case TypeUnlock:
		return LockEvent{TeamName: raw.TeamName, Lock: false}, nil
	case TypeLockAll:
		return LockAllEvent{Lock: true}, nil
	case TypeUnlockAll:
		return LockAllEvent{Lock: false}, nil
	default:
		return UnknownEvent{Type: raw.Type}, nil
	}
}

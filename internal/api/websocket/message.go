package websocket

import "github.com/GhostCrab/parlay-club-server/internal/league"

// Topics mirror the event names the web client already speaks.
const (
	TopicGameUpdate = "game-update"
	TopicPickUpdate = "pick-update"
	TopicHeartbeat  = "heartbeat"
)

// Message is the envelope for every frame in both directions. MsgID is
// assigned by the hub just before fan-out and increases monotonically for
// the life of the process, so clients can detect reordering or gaps.
type Message struct {
	Topic      string          `json:"topic"`
	MsgID      int64           `json:"msgId"`
	Heartbeat  string          `json:"heartbeat,omitempty"`
	PickUpdate *league.PickSet `json:"pickUpdate,omitempty"`
	Data       *GamePayload    `json:"data,omitempty"`
}

// GamePayload carries a batch of changed games on the game-update topic.
type GamePayload struct {
	Games []league.GameData `json:"games"`
}

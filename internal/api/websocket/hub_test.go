package websocket

import (
	"testing"
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveMessage(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for hub message")
		return Message{}
	}
}

func TestHubBroadcastAssignsMonotonicIDs(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan Message, sendBufferSize)}
	hub.register <- client

	hub.Broadcast(Message{Topic: TopicHeartbeat, Heartbeat: "alive"})
	hub.Broadcast(Message{
		Topic: TopicGameUpdate,
		Data:  &GamePayload{Games: []league.GameData{{ID: 401547401, Week: 3}}},
	})

	first := receiveMessage(t, client)
	second := receiveMessage(t, client)

	assert.Equal(t, TopicHeartbeat, first.Topic)
	assert.Equal(t, "alive", first.Heartbeat)
	assert.Equal(t, int64(1), first.MsgID)

	assert.Equal(t, TopicGameUpdate, second.Topic)
	require.NotNil(t, second.Data)
	assert.Equal(t, int64(2), second.MsgID)
	assert.Len(t, second.Data.Games, 1)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := &Client{hub: hub, send: make(chan Message, sendBufferSize)}
	b := &Client{hub: hub, send: make(chan Message, sendBufferSize)}
	hub.register <- a
	hub.register <- b

	set := league.PickSet{UserID: 0, Week: 1, Picks: []league.Pick{{User: 0, Game: 101, Team: 12}}}
	hub.Broadcast(Message{Topic: TopicPickUpdate, PickUpdate: &set})

	for _, c := range []*Client{a, b} {
		msg := receiveMessage(t, c)
		assert.Equal(t, TopicPickUpdate, msg.Topic)
		require.NotNil(t, msg.PickUpdate)
		assert.Equal(t, 1, msg.PickUpdate.Week)
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan Message, sendBufferSize)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "send channel should be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	assert.Equal(t, 0, hub.ClientCount())
}

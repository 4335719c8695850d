package scoring

import (
	"encoding/json"
	"testing"
)

func TestRoomID(t *testing.T) {
	if got := RoomID("cricket", 5); got != "cricket_5" {
		t.Errorf("RoomID = %q, want %q", got, "cricket_5")
	}
}

func TestBroadcastToRoomMessageTypes(t *testing.T) {
	tests := []struct {
		name    string
		msgType string
		want    string
	}{
		{"score change", MessageMatchUpdated, "MATCH_UPDATED"},
		{"lifecycle change", MessageStatusChanged, "STATUS_CHANGED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := NewHub()
			room := RoomID("badminton", 9)
			client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: room}
			hub.rooms[room] = map[*Client]bool{client: true}

			hub.BroadcastToRoom(room, LiveMessage{Type: tt.msgType, RoomID: room})

			select {
			case data := <-client.Send:
				var msg LiveMessage
				if err := json.Unmarshal(data, &msg); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if msg.Type != tt.want {
					t.Errorf("message type = %q, want %q", msg.Type, tt.want)
				}
				if msg.RoomID != room {
					t.Errorf("room = %q, want %q", msg.RoomID, room)
				}
			default:
				t.Fatal("no message delivered to subscriber")
			}
		})
	}
}

func TestBroadcastToRoomUnknownRoom(t *testing.T) {
	hub := NewHub()
	// Must not panic or create the room.
	hub.BroadcastToRoom(RoomID("cricket", 1), LiveMessage{Type: MessageMatchUpdated})
	if len(hub.rooms) != 0 {
		t.Errorf("rooms = %d, want none", len(hub.rooms))
	}
}

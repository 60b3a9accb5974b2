package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:        make(chan []byte, 10),
		ItineraryID: "trip1",
	}

	hub.register <- client

	hub.Broadcast("trip1", "activity_added")

	select {
	case got := <-client.Send:
		var evt Event
		if err := json.Unmarshal(got, &evt); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if evt.Action != "activity_added" || evt.ItineraryID != "trip1" {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestHubAddRemoveAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	client := &Client{
		Send:        make(chan []byte, 1),
		ItineraryID: "trip1",
	}

	added := make(chan bool, 1)
	go func() {
		added <- hub.add(client)
		hub.remove(client)
	}()

	select {
	case ok := <-added:
		if ok {
			t.Fatal("client registered on a stopped hub")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("register blocked after shutdown")
	}
}

func TestHubBroadcastOtherRoomNotDelivered(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:        make(chan []byte, 10),
		ItineraryID: "trip1",
	}
	hub.register <- client

	hub.Broadcast("trip2", "activity_added")

	select {
	case got := <-client.Send:
		t.Fatalf("unexpected delivery: %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}

package network

import (
	"testing"

	"snake-server/pkg/api"
)

func TestBroadcaster_RegisterSendUnregister(t *testing.T) {
	b := NewBroadcaster()

	ch := b.Register("c1")
	if !b.HasSubscriber("c1") {
		t.Fatal("Expected subscriber c1")
	}

	b.SendTo("c1", api.ServerMessage{Type: api.MessageState})
	select {
	case msg := <-ch:
		if msg.Type != api.MessageState {
			t.Errorf("Type = %s, want STATE", msg.Type)
		}
	default:
		t.Fatal("Expected a message in the channel")
	}

	// Отправка несуществующему клиенту - тихий no-op
	b.SendTo("ghost", api.ServerMessage{Type: api.MessageState})

	b.Unregister("c1")
	if b.HasSubscriber("c1") {
		t.Error("c1 must be gone after Unregister")
	}
	if _, open := <-ch; open {
		t.Error("Channel must be closed after Unregister")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d, want 0", b.SubscriberCount())
	}
}

func TestBroadcaster_SendToFullChannelDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	b.Register("c1")

	// Канал на 100 сообщений; заваливаем с запасом - не должно заблокировать
	for i := 0; i < 500; i++ {
		b.SendTo("c1", api.ServerMessage{Type: api.MessageState})
	}
}

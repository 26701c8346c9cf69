package network

import (
	"sync"

	"snake-server/pkg/api"
)

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Подписчик - один websocket-клиент (или бот), ключ - его ID.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ClientID -> Личный канал
	subscribers map[string]chan api.ServerMessage
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
	}
}

// Register создает личный канал для клиента.
// Повторная регистрация того же ID закрывает старый канал.
func (b *Broadcaster) Register(clientID string) chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[clientID]; ok {
		close(old)
	}

	ch := make(chan api.ServerMessage, 100)
	b.subscribers[clientID] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[clientID]; ok {
		close(ch)
		delete(b.subscribers, clientID)
	}
}

// SendTo отправляет сообщение конкретному клиенту (Unicast).
// Неблокирующе: при переполненном канале сообщение отбрасывается -
// следующий полный снимок все равно перекроет потерю.
func (b *Broadcaster) SendTo(clientID string, msg api.ServerMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[clientID]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключен ли клиент.
func (b *Broadcaster) HasSubscriber(clientID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[clientID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

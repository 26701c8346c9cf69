package agent

import (
	"snake-server/internal/domain"
	"snake-server/internal/engine"
	"snake-server/pkg/api"
	"snake-server/pkg/logger"
)

// Bot - "игрок-компьютер" (headless agent). Это пример ВНЕШНЕГО клиента:
// он потребляет те же DTO протокола, что и обычный игрок через WebSocket,
// и шлет обратно те же команды. Внутрь движка бот не заглядывает.
//
// Политика жадная и без обучения: идем к еде по доминирующей оси,
// не разворачиваемся на 180 и не въезжаем в стену или собственное тело,
// если есть безопасная альтернатива.
type Bot struct {
	ID      string
	Session *engine.Session
	Inbox   chan api.ServerMessage

	// Games - сколько партий сыграть до остановки.
	Games int

	// Done закрывается, когда сыграны все партии.
	Done chan struct{}

	gamesPlayed int
	lastState   string
}

func NewBot(id string, sess *engine.Session, inbox chan api.ServerMessage, games int) *Bot {
	return &Bot{
		ID:      id,
		Session: sess,
		Inbox:   inbox,
		Games:   games,
		Done:    make(chan struct{}),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	log := logger.WithSession(b.ID)
	log.WithField("games", b.Games).Info("🤖 Bot started")

	for msg := range b.Inbox {
		if msg.Type != api.MessageState || msg.State == nil {
			continue
		}
		state := msg.State

		switch state.GameState {
		case "READY":
			b.send(engine.Command{Type: engine.CmdStart})

		case "PLAYING":
			if dir, ok := b.chooseDirection(state); ok {
				b.send(engine.Command{Type: engine.CmdTurn, Direction: dir})
			}

		case "GAME_OVER":
			// Реагируем только на сам переход, а не на каждый снимок
			if b.lastState != "GAME_OVER" {
				b.gamesPlayed++
				log.WithField("score", state.Score).
					WithField("game", b.gamesPlayed).
					Info("Bot game over")

				if b.gamesPlayed >= b.Games {
					close(b.Done)
					return
				}
				b.send(engine.Command{Type: engine.CmdRestart})
			}
		}

		b.lastState = state.GameState
	}
}

func (b *Bot) send(cmd engine.Command) {
	select {
	case b.Session.Commands <- cmd:
	default:
	}
}

// chooseDirection - мозг бота: жадный шаг к еде с уклонением от смерти.
func (b *Bot) chooseDirection(state *api.StateView) (domain.Direction, bool) {
	if len(state.Snake) == 0 || state.Food == nil {
		return 0, false
	}

	head := domain.GridPosition{X: state.Snake[0].X, Y: state.Snake[0].Y}
	food := domain.GridPosition{X: state.Food.Pos.X, Y: state.Food.Pos.Y}

	current, ok := domain.ParseDirection(state.Direction)
	if !ok {
		return 0, false
	}

	// Тело как множество занятых клеток. Хвост на следующем шаге
	// освободится, но для простой политики это не учитываем.
	occupied := make(map[domain.GridPosition]bool, len(state.Snake))
	for _, seg := range state.Snake {
		occupied[domain.GridPosition{X: seg.X, Y: seg.Y}] = true
	}

	safe := func(d domain.Direction) bool {
		if d.IsOpposite(current) {
			return false
		}
		next := domain.Moved(head, d)
		if next.X < 0 || next.X >= state.Grid.Width || next.Y < 0 || next.Y >= state.Grid.Height {
			return false
		}
		return !occupied[next]
	}

	// Кандидаты в порядке убывания пользы: сначала доминирующая ось
	var preferred []domain.Direction
	dx, dy := food.X-head.X, food.Y-head.Y
	xDir, yDir := domain.DirectionRight, domain.DirectionDown
	if dx < 0 {
		xDir = domain.DirectionLeft
	}
	if dy < 0 {
		yDir = domain.DirectionUp
	}
	if abs(dx) >= abs(dy) {
		preferred = []domain.Direction{xDir, yDir}
	} else {
		preferred = []domain.Direction{yDir, xDir}
	}

	for _, d := range preferred {
		if (d == xDir && dx != 0 || d == yDir && dy != 0) && safe(d) {
			return d, true
		}
	}

	// Еда недостижима напрямую - любой безопасный ход, лишь бы не умереть
	for _, d := range []domain.Direction{current, domain.DirectionUp, domain.DirectionDown, domain.DirectionLeft, domain.DirectionRight} {
		if safe(d) {
			return d, true
		}
	}

	// Все пути ведут в смерть; едем как ехали
	return current, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package engine

import (
	"sync"
	"time"

	"snake-server/internal/domain"
	"snake-server/pkg/api"
	"snake-server/pkg/logger"
)

// frameInterval - период кадра драйвера (~60 FPS).
const frameInterval = time.Second / 60

// CommandType - тип команды, адресованной сессии.
type CommandType uint8

const (
	CmdStart CommandType = iota
	CmdRestart
	CmdTurn
	CmdPause
	CmdResume
)

// Command - команда игрока (или бота) для сессии.
type Command struct {
	Type      CommandType
	Direction domain.Direction // только для CmdTurn
}

// PublishFunc получает исходящие сообщения сессии.
// Обязана не блокировать: игровой цикл никого не ждет.
type PublishFunc func(msg api.ServerMessage)

// Session - один запущенный экземпляр игры: движок плюс драйвер
// с фиксированным шагом. Классический fixed-timestep-with-accumulator:
// каждый кадр тикаем Update(dt), а MoveSnake выполняем, когда
// аккумулятор перевалил за текущий интервал шага.
//
// Все мутации движка происходят строго в горутине Run - команды
// попадают внутрь только через канал.
type Session struct {
	ID     string
	Engine *Engine

	// Commands - буферизованный вход команд. Дренируется неблокирующе
	// в начале каждого кадра.
	Commands chan Command

	publish PublishFunc

	done     chan struct{}
	stopOnce sync.Once

	// acc - накопленное игровое время с последнего шага змейки.
	acc float64
}

// NewSession создает сессию и подписывает ее на события движка.
func NewSession(id string, eng *Engine, publish PublishFunc) *Session {
	s := &Session{
		ID:       id,
		Engine:   eng,
		Commands: make(chan Command, 32),
		publish:  publish,
		done:     make(chan struct{}),
	}
	eng.AddObserver(s)
	return s
}

// Run запускает игровой цикл ЭТОЙ сессии. Блокирует; запускать в горутине.
func (s *Session) Run() {
	log := logger.WithSession(s.ID)
	log.Info("Session loop started")

	// Стартовый снимок, чтобы клиент сразу увидел поле
	s.publishState()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-s.done:
			log.Info("Session loop stopped")
			return

		case now := <-ticker.C:
			// 1. Дренируем ввод (неблокирующе)
			s.drainCommands()

			// 2. Кадр
			dt := now.Sub(last).Seconds()
			last = now
			s.step(dt)
		}
	}
}

// Stop завершает цикл. Идемпотентен.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Session) drainCommands() {
	for {
		select {
		case cmd := <-s.Commands:
			s.handleCommand(cmd)
		default:
			return
		}
	}
}

func (s *Session) handleCommand(cmd Command) {
	switch cmd.Type {
	case CmdStart:
		s.Engine.StartPlaying()
	case CmdRestart:
		s.Engine.StartNewGame()
	case CmdTurn:
		s.Engine.ChangeDirection(cmd.Direction)
	case CmdPause:
		s.Engine.Pause()
	case CmdResume:
		s.Engine.Resume()
	}

	// Любая команда могла изменить видимое состояние
	s.publishState()
}

// step продвигает симуляцию на dt секунд.
// Порядок внутри кадра важен: сначала Update (истечение эффектов),
// потом шаги змейки - протухший Shield не должен спасать в этом же кадре.
func (s *Session) step(dt float64) {
	if s.Engine.State() != domain.StatePlaying {
		// Вне Playing время не копится (иначе после паузы
		// змейка "догоняла" бы пропущенные шаги)
		s.acc = 0
		return
	}

	s.Engine.Update(dt)

	s.acc += dt
	for {
		interval := s.Engine.MoveInterval()
		if s.acc < interval {
			break
		}
		s.acc -= interval

		if !s.Engine.MoveSnake() {
			// GameOver уже выполнен движком
			s.acc = 0
			break
		}
	}

	// Пока идет партия, снимок шлем каждый кадр: таймеры эффектов
	// и бонусов меняются непрерывно
	s.publishState()
}

func (s *Session) publishState() {
	view := BuildStateView(s.Engine)
	s.publish(api.ServerMessage{Type: api.MessageState, State: &view})
}

// --- Observer: трансляция событий движка в протокол ---

func (s *Session) OnScoreChanged(score int) {
	s.publish(api.ServerMessage{Type: api.MessageEvent, Event: &api.EventView{
		Name:  api.EventScoreChanged,
		Score: score,
	}})
}

func (s *Session) OnGameStateChanged(state domain.GameState) {
	if state == domain.StateGameOver {
		logger.WithSession(s.ID).WithField("score", s.Engine.Score()).Info("Game over")
	}
	s.publish(api.ServerMessage{Type: api.MessageEvent, Event: &api.EventView{
		Name:      api.EventStateChanged,
		GameState: state.String(),
	}})
}

func (s *Session) OnFoodEaten(pos domain.GridPosition, value int) {
	s.publish(api.ServerMessage{Type: api.MessageEvent, Event: &api.EventView{
		Name:  api.EventFoodEaten,
		Pos:   &api.PointView{X: pos.X, Y: pos.Y},
		Value: value,
	}})
}

func (s *Session) OnPowerUpCollected(t domain.PowerUpType) {
	s.publish(api.ServerMessage{Type: api.MessageEvent, Event: &api.EventView{
		Name:    api.EventPowerUpCollected,
		PowerUp: t.String(),
	}})
}

package engine

import (
	"math/rand"

	"snake-server/internal/domain"
	"snake-server/pkg/logger"
)

// ScoreStore - внешнее хранилище рекорда. Движок изолирован от механизма
// хранения: ему внедряют коллаборатора при конструировании.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Engine - детерминированное ядро игры. Владеет всеми сущностями партии
// и мутирует их только синхронно, из одной горутины (см. Session).
// Никакой блокировки внутри нет - конкурентного доступа к ядру не бывает.
type Engine struct {
	cfg Config
	rng *rand.Rand

	state domain.GameState
	snake *domain.Snake
	food  *domain.Food

	powerUps []domain.PowerUp
	// effects - активные эффекты: тип -> оставшиеся секунды.
	// Наличие ключа и есть признак активности.
	effects map[domain.PowerUpType]float64

	score     int
	highScore int
	combo     int

	// baseInterval растет с каждой едой (ускорение партии);
	// moveInterval - то, что действует прямо сейчас, с учетом
	// скоростных эффектов.
	baseInterval float64
	moveInterval float64

	// pendingDir - направление, забуференное вводом игрока.
	// Применяется атомарно в начале следующего шага MoveSnake.
	pendingDir domain.Direction

	// foodLabelIndex - циклический индекс по domain.FoodLabels.
	foodLabelIndex int

	store     ScoreStore
	observers []Observer
}

// NewEngine создает движок. Рекорд загружается из store один раз,
// здесь; дальше store трогается только при его обновлении.
func NewEngine(cfg Config, store ScoreStore) *Engine {
	e := &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		store: store,
	}

	high, err := store.Load()
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to load high score, starting from 0")
		high = 0
	}
	e.highScore = high

	e.reset()
	return e
}

// reset возвращает все изменяемое состояние к стартовому.
// Рекорд сознательно не трогаем - он живет между партиями.
func (e *Engine) reset() {
	center := domain.GridPosition{X: e.cfg.GridWidth / 2, Y: e.cfg.GridHeight / 2}
	e.snake = domain.NewSnake(center, domain.DirectionRight, e.cfg.InitialSnakeLen)
	e.pendingDir = domain.DirectionRight

	e.powerUps = nil
	e.effects = make(map[domain.PowerUpType]float64)

	e.score = 0
	e.combo = 0
	e.baseInterval = e.cfg.InitialInterval
	e.moveInterval = e.cfg.InitialInterval

	e.foodLabelIndex = 0
	e.spawnFood()
}

// StartNewGame сбрасывает партию и переводит движок в Ready.
// Единственный легальный выход из GameOver.
func (e *Engine) StartNewGame() {
	e.reset()
	e.setState(domain.StateReady)
}

// StartPlaying запускает партию. Действует только из Ready.
func (e *Engine) StartPlaying() {
	if e.state != domain.StateReady {
		return
	}
	e.setState(domain.StatePlaying)
}

// Pause ставит партию на паузу. Движение и счетчики эффектов замирают.
func (e *Engine) Pause() {
	if e.state != domain.StatePlaying {
		return
	}
	e.setState(domain.StatePaused)
}

// Resume снимает паузу.
func (e *Engine) Resume() {
	if e.state != domain.StatePaused {
		return
	}
	e.setState(domain.StatePlaying)
}

// ChangeDirection буферит направление до следующего шага.
// Разворот на 180 (в самого себя) молча отбрасывается. Несколько
// вызовов между шагами - действует последний.
func (e *Engine) ChangeDirection(d domain.Direction) {
	if e.state != domain.StatePlaying {
		return
	}
	if d.IsOpposite(e.snake.Direction) {
		return
	}
	e.pendingDir = d
}

// Update тикает таймеры: активные эффекты и время жизни бонусов на поле.
// В рамках кадра вызывается ДО MoveSnake - поэтому истекший Shield
// перестает защищать ровно с того же кадра.
func (e *Engine) Update(deltaSeconds float64) {
	if e.state != domain.StatePlaying {
		return
	}

	e.tickEffects(deltaSeconds)

	// Протухшие бонусы убираются с поля БЕЗ события подбора
	kept := e.powerUps[:0]
	for i := range e.powerUps {
		e.powerUps[i].Lifetime -= deltaSeconds
		if e.powerUps[i].Lifetime > 0 {
			kept = append(kept, e.powerUps[i])
		}
	}
	e.powerUps = kept
}

// MoveSnake выполняет один дискретный шаг змейки. Вызывается внешним
// драйвером раз в moveInterval, не раз в кадр.
// false означает фатальное столкновение; переход в GameOver к этому
// моменту уже выполнен.
func (e *Engine) MoveSnake() bool {
	if e.state != domain.StatePlaying {
		return true
	}

	// 1. Принимаем забуференное направление
	e.snake.Direction = e.pendingDir

	// 2. Кандидат на новую голову
	head := domain.Moved(e.snake.Head(), e.snake.Direction)

	shield := e.IsEffectActive(domain.PowerUpShield)

	// 3. Граница поля: без щита - смерть, со щитом - wrap-around
	if head.X < 0 || head.X >= e.cfg.GridWidth || head.Y < 0 || head.Y >= e.cfg.GridHeight {
		if !shield {
			e.gameOver()
			return false
		}
		head.X = wrap(head.X, e.cfg.GridWidth)
		head.Y = wrap(head.Y, e.cfg.GridHeight)
	}

	// 4. Самопересечение: со щитом перекрытие сегментов допускается
	if !shield && e.snake.Contains(head) {
		e.gameOver()
		return false
	}

	// 5. Вставляем голову (временный рост на один сегмент)
	e.snake.Grow(head)

	// 6. Что лежит в новой клетке?
	switch {
	case e.food != nil && head == e.food.Pos:
		e.eatFood()
	case e.powerUpAt(head) >= 0:
		// Хвост не убирается: подбор бонуса растит змейку,
		// как и еда
		e.collectPowerUp(e.powerUpAt(head))
	default:
		e.snake.RemoveTail()
	}

	return true
}

// eatFood начисляет очки, разгоняет партию и респавнит еду.
func (e *Engine) eatFood() {
	e.combo++

	points := e.food.Value
	if e.IsEffectActive(domain.PowerUpDoublePoints) {
		points *= 2
	}
	// Бонус за серию: +5 за каждую еду подряд, потолок +25
	bonus := min(e.combo-1, 5) * 5
	total := points + bonus
	e.score += total

	// Ускорение за еду. SlowMotion замораживает разгон.
	if !e.IsEffectActive(domain.PowerUpSlowMotion) {
		e.baseInterval = max(e.cfg.MinInterval, e.baseInterval-e.cfg.IntervalDecrement)
		e.moveInterval = e.baseInterval
	}

	pos := e.food.Pos
	e.notifyFoodEaten(pos, total)
	e.notifyScoreChanged()

	e.spawnFood()
	if e.rng.Float64() < e.cfg.PowerUpChance {
		e.spawnPowerUp()
	}
}

// collectPowerUp активирует эффект и убирает бонус с поля.
func (e *Engine) collectPowerUp(idx int) {
	t := e.powerUps[idx].Type
	e.powerUps = append(e.powerUps[:idx], e.powerUps[idx+1:]...)

	e.activateEffect(t)
	e.notifyPowerUpCollected(t)
}

// gameOver выполняет терминальный переход Playing -> GameOver.
// Рекорд обновляется и сохраняется здесь и только здесь.
func (e *Engine) gameOver() {
	if e.score > e.highScore {
		e.highScore = e.score
		if err := e.store.Save(e.highScore); err != nil {
			logger.Log.WithError(err).Warn("Failed to save high score")
		}
	}
	e.combo = 0
	e.setState(domain.StateGameOver)
}

func (e *Engine) setState(s domain.GameState) {
	if e.state == s {
		return
	}
	e.state = s
	e.notifyStateChanged()
}

// powerUpAt возвращает индекс бонуса в клетке pos или -1.
func (e *Engine) powerUpAt(pos domain.GridPosition) int {
	for i := range e.powerUps {
		if e.powerUps[i].Pos == pos {
			return i
		}
	}
	return -1
}

// wrap - математический модуль (корректен для отрицательных координат).
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// --- СНИМКИ СОСТОЯНИЯ (read-only, для презентации) ---

// State возвращает текущее состояние партии.
func (e *Engine) State() domain.GameState { return e.state }

// Score возвращает счет.
func (e *Engine) Score() int { return e.score }

// HighScore возвращает рекорд (живет между партиями).
func (e *Engine) HighScore() int { return e.highScore }

// Combo возвращает длину текущей серии еды.
func (e *Engine) Combo() int { return e.combo }

// MoveInterval возвращает действующий интервал шага в секундах.
func (e *Engine) MoveInterval() float64 { return e.moveInterval }

// Direction возвращает текущее (примененное) направление головы.
func (e *Engine) Direction() domain.Direction { return e.snake.Direction }

// SnakeBody возвращает копию сегментов, голова первая.
func (e *Engine) SnakeBody() []domain.GridPosition {
	out := make([]domain.GridPosition, len(e.snake.Body))
	copy(out, e.snake.Body)
	return out
}

// Food возвращает еду; ok == false, если еды на поле нет.
func (e *Engine) Food() (domain.Food, bool) {
	if e.food == nil {
		return domain.Food{}, false
	}
	return *e.food, true
}

// PowerUps возвращает копию бонусов на поле.
func (e *Engine) PowerUps() []domain.PowerUp {
	out := make([]domain.PowerUp, len(e.powerUps))
	copy(out, e.powerUps)
	return out
}

// ActiveEffects возвращает копию карты активных эффектов.
func (e *Engine) ActiveEffects() map[domain.PowerUpType]float64 {
	out := make(map[domain.PowerUpType]float64, len(e.effects))
	for t, rem := range e.effects {
		out[t] = rem
	}
	return out
}

package api

// --- КЛИЕНТ -> СЕРВЕР ---

// Допустимые значения ClientCommand.Action.
const (
	ActionStart   = "START"
	ActionRestart = "RESTART"
	ActionTurn    = "TURN"
	ActionPause   = "PAUSE"
	ActionResume  = "RESUME"
)

// ClientCommand это единственное сообщение, которое клиент шлет серверу.
type ClientCommand struct {
	// Action тип команды: START, RESTART, TURN, PAUSE, RESUME.
	Action string `json:"action"`

	// Direction направление для TURN: UP, DOWN, LEFT, RIGHT.
	// Для остальных команд игнорируется.
	Direction string `json:"direction,omitempty"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы исходящих сообщений.
const (
	MessageState = "STATE"
	MessageEvent = "EVENT"
)

// Имена игровых событий (MessageEvent).
const (
	EventScoreChanged     = "SCORE_CHANGED"
	EventStateChanged     = "STATE_CHANGED"
	EventFoodEaten        = "FOOD_EATEN"
	EventPowerUpCollected = "POWERUP_COLLECTED"
)

// ServerMessage это корневой объект, который сервер отправляет клиенту.
//
// Сообщения двух видов:
//   - STATE: полный снимок партии. Отправляется после каждого кадра,
//     в котором что-то изменилось. Клиент рендерит его целиком,
//     ничего не доигрывая локально.
//   - EVENT: точечное игровое событие (съедена еда, подобран бонус...).
//     Нужно презентации для звука/частиц; состояние оно не несет.
type ServerMessage struct {
	Type  string     `json:"type"`
	State *StateView `json:"state,omitempty"`
	Event *EventView `json:"event,omitempty"`
}

// GridMeta содержит размеры поля, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PointView это DTO одной клетки поля.
type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FoodView это DTO еды. Label - косметика (какой фрукт рисовать).
type FoodView struct {
	Pos   PointView `json:"pos"`
	Label string    `json:"label"`
	Value int       `json:"value"`
}

// PowerUpView это DTO бонуса на поле.
type PowerUpView struct {
	Pos  PointView `json:"pos"`
	Type string    `json:"type"`
	// Lifetime секунды до исчезновения бонуса с поля.
	Lifetime float64 `json:"lifetime"`
}

// StateView это полный снимок партии, видимый клиенту.
type StateView struct {
	Grid GridMeta `json:"grid"`

	// GameState текущее состояние: READY, PLAYING, PAUSED, GAME_OVER.
	GameState string `json:"gameState"`

	// Snake сегменты тела, голова первая.
	Snake []PointView `json:"snake"`

	// Direction текущее направление головы.
	Direction string `json:"direction"`

	Food     *FoodView     `json:"food,omitempty"`
	PowerUps []PowerUpView `json:"powerUps,omitempty"`

	// Effects активные эффекты: имя типа -> оставшиеся секунды.
	// Отсутствие ключа означает, что эффект неактивен.
	Effects map[string]float64 `json:"effects,omitempty"`

	Score     int `json:"score"`
	HighScore int `json:"highScore"`
	Combo     int `json:"combo"`

	// Interval текущий интервал шага змейки в секундах.
	// Клиенту нужен только для индикации скорости.
	Interval float64 `json:"interval"`
}

// EventView это DTO игрового события.
type EventView struct {
	Name string `json:"name"`

	// Score итоговый счет (SCORE_CHANGED).
	Score int `json:"score,omitempty"`

	// GameState новое состояние (STATE_CHANGED).
	GameState string `json:"gameState,omitempty"`

	// Pos и Value - где съедена еда и сколько очков начислено
	// с учетом комбо и DoublePoints (FOOD_EATEN).
	Pos   *PointView `json:"pos,omitempty"`
	Value int        `json:"value,omitempty"`

	// PowerUp тип подобранного бонуса (POWERUP_COLLECTED).
	PowerUp string `json:"powerUp,omitempty"`
}

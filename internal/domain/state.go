package domain

// GameState - состояние сессии. Единственное авторитетное значение на игру.
type GameState uint8

const (
	StateReady GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

var stateValueToString = map[GameState]string{
	StateReady:    "READY",
	StatePlaying:  "PLAYING",
	StatePaused:   "PAUSED",
	StateGameOver: "GAME_OVER",
}

// String реализует интерфейс Stringer (для fmt.Printf и протокола)
func (s GameState) String() string {
	if v, ok := stateValueToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

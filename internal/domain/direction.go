package domain

import "strings"

// Direction - направление движения змейки.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Маппинг для конвертации JSON -> Domain
var dirStringToValue = map[string]Direction{
	"UP":    DirectionUp,
	"DOWN":  DirectionDown,
	"LEFT":  DirectionLeft,
	"RIGHT": DirectionRight,
}

// Маппинг для логов и протокола Domain -> String
var dirValueToString = map[Direction]string{
	DirectionUp:    "UP",
	DirectionDown:  "DOWN",
	DirectionLeft:  "LEFT",
	DirectionRight: "RIGHT",
}

// ParseDirection конвертирует строку из JSON в Direction.
// Второе значение false, если строка не является направлением.
func ParseDirection(s string) (Direction, bool) {
	// Нечувствительно к регистру для надежности
	d, ok := dirStringToValue[strings.ToUpper(s)]
	return d, ok
}

// String реализует интерфейс Stringer (для fmt.Printf и протокола)
func (d Direction) String() string {
	if s, ok := dirValueToString[d]; ok {
		return s
	}
	return "UNKNOWN"
}

// Opposite возвращает противоположное направление.
// Тотальная инволюция: d.Opposite().Opposite() == d для всех четырех значений.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

// IsOpposite сообщает, являются ли направления противоположными.
// Используется движком для отсечения разворота на 180 градусов.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Delta возвращает единичный вектор направления.
// Ось Y растет вниз (экранные координаты).
func (d Direction) Delta() GridPosition {
	switch d {
	case DirectionUp:
		return GridPosition{X: 0, Y: -1}
	case DirectionDown:
		return GridPosition{X: 0, Y: 1}
	case DirectionLeft:
		return GridPosition{X: -1, Y: 0}
	default:
		return GridPosition{X: 1, Y: 0}
	}
}

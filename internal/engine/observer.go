package engine

import "snake-server/internal/domain"

// Observer получает уведомления движка. Набор колбеков фиксирован:
// презентация подписывается на то, что ей нужно рисовать/озвучивать,
// никакой игровой логики на стороне наблюдателя нет.
//
// Уведомления синхронные, в порядке регистрации, без буферизации:
// наблюдатель, добавленный после события, это событие не увидит.
type Observer interface {
	OnScoreChanged(score int)
	OnGameStateChanged(state domain.GameState)
	OnFoodEaten(pos domain.GridPosition, value int)
	OnPowerUpCollected(t domain.PowerUpType)
}

// AddObserver регистрирует наблюдателя. Список принадлежит движку,
// глобального состояния нет.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) notifyScoreChanged() {
	for _, o := range e.observers {
		o.OnScoreChanged(e.score)
	}
}

func (e *Engine) notifyStateChanged() {
	for _, o := range e.observers {
		o.OnGameStateChanged(e.state)
	}
}

func (e *Engine) notifyFoodEaten(pos domain.GridPosition, value int) {
	for _, o := range e.observers {
		o.OnFoodEaten(pos, value)
	}
}

func (e *Engine) notifyPowerUpCollected(t domain.PowerUpType) {
	for _, o := range e.observers {
		o.OnPowerUpCollected(t)
	}
}

package engine

import "snake-server/internal/domain"

// Спавн через rejection sampling: тянем случайную клетку и пересэмплируем,
// пока она пересекается с чем-то на поле. Теоретически цикл не ограничен,
// практически занятость поля мизерная и это O(1).
//
// Неявный инвариант конфигурации: на поле всегда есть хотя бы одна
// свободная клетка (длина змейки + число бонусов < числа клеток).
// Рантайм-проверки нет намеренно - см. DESIGN.md.

// spawnFood кладет новую еду в свободную клетку.
// Метка берется по циклическому индексу НЕЗАВИСИМО от рандома:
// порядок фруктов детерминирован от старта партии.
func (e *Engine) spawnFood() {
	pos := e.randomFreeCell(func(p domain.GridPosition) bool {
		return e.snake.Contains(p) || e.powerUpAt(p) >= 0
	})

	label := domain.FoodLabels[e.foodLabelIndex%len(domain.FoodLabels)]
	e.foodLabelIndex++

	e.food = &domain.Food{Pos: pos, Label: label, Value: e.cfg.FoodValue}
}

// spawnPowerUp кладет бонус случайного типа в свободную клетку.
// No-op при достигнутом капе. Вызывается только как вероятностный
// побочный эффект поедания еды.
func (e *Engine) spawnPowerUp() {
	if len(e.powerUps) >= e.cfg.PowerUpCap {
		return
	}

	pos := e.randomFreeCell(func(p domain.GridPosition) bool {
		if e.snake.Contains(p) || e.powerUpAt(p) >= 0 {
			return true
		}
		return e.food != nil && e.food.Pos == p
	})

	e.powerUps = append(e.powerUps, domain.PowerUp{
		Pos:      pos,
		Type:     domain.PowerUpType(e.rng.Intn(int(domain.PowerUpTypeCount))),
		Lifetime: e.cfg.PowerUpLifetime,
	})
}

// randomFreeCell сэмплирует клетки, пока occupied возвращает true.
func (e *Engine) randomFreeCell(occupied func(domain.GridPosition) bool) domain.GridPosition {
	for {
		pos := domain.GridPosition{
			X: e.rng.Intn(e.cfg.GridWidth),
			Y: e.rng.Intn(e.cfg.GridHeight),
		}
		if !occupied(pos) {
			return pos
		}
	}
}

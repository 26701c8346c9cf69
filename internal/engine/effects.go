package engine

import "snake-server/internal/domain"

// Реестр временных эффектов. Скоростные эффекты (SpeedBoost/SlowMotion)
// меняют интервал шага немедленно; DoublePoints и Shield нигде ничего
// не мутируют - их читают реактивно в точках начисления очков и коллизий.
//
// Политика одновременных SpeedBoost + SlowMotion: побеждает множитель
// активированного ПОЗЖЕ (last-applied-wins), множители не перемножаются.
// Это осознанное продуктовое решение, не вывод из физики.

// activateEffect включает или обновляет эффект. Повторный подбор того же
// типа перезаписывает оставшееся время (refresh, не суммирование).
func (e *Engine) activateEffect(t domain.PowerUpType) {
	e.effects[t] = e.cfg.EffectDuration[t]

	switch t {
	case domain.PowerUpSpeedBoost:
		e.moveInterval = e.baseInterval * e.cfg.SpeedBoostFactor
	case domain.PowerUpSlowMotion:
		e.moveInterval = e.baseInterval * e.cfg.SlowMotionFactor
	}
}

// tickEffects уменьшает оставшееся время всех активных эффектов.
// Достигшие нуля удаляются, и для каждого срабатывает обработчик снятия.
func (e *Engine) tickEffects(deltaSeconds float64) {
	for t := range e.effects {
		e.effects[t] -= deltaSeconds
		if e.effects[t] <= 0 {
			delete(e.effects, t)
			e.effectExpired(t)
		}
	}
}

// effectExpired - обработчик снятия эффекта.
// Для скоростных типов интервал возвращается к базовому, ТОЛЬКО если
// другого скоростного эффекта не осталось; иначе действует выживший.
// Снятие DoublePoints/Shield - no-op: их никто не "применял".
func (e *Engine) effectExpired(t domain.PowerUpType) {
	if !t.IsSpeedEffect() {
		return
	}

	switch {
	case e.IsEffectActive(domain.PowerUpSpeedBoost):
		e.moveInterval = e.baseInterval * e.cfg.SpeedBoostFactor
	case e.IsEffectActive(domain.PowerUpSlowMotion):
		e.moveInterval = e.baseInterval * e.cfg.SlowMotionFactor
	default:
		e.moveInterval = e.baseInterval
	}
}

// IsEffectActive сообщает, активен ли эффект типа t.
func (e *Engine) IsEffectActive(t domain.PowerUpType) bool {
	_, ok := e.effects[t]
	return ok
}

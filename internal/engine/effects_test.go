package engine

import (
	"math"
	"testing"

	"snake-server/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEffects_ActivateAndRefresh(t *testing.T) {
	e := newPlayingEngine(t, nil)

	e.activateEffect(domain.PowerUpDoublePoints)
	if !e.IsEffectActive(domain.PowerUpDoublePoints) {
		t.Fatal("Effect must be active after activation")
	}

	// Повторный подбор перезаписывает оставшееся время, не суммирует
	e.tickEffects(4)
	e.activateEffect(domain.PowerUpDoublePoints)
	want := e.cfg.EffectDuration[domain.PowerUpDoublePoints]
	if got := e.effects[domain.PowerUpDoublePoints]; !almostEqual(got, want) {
		t.Errorf("Remaining after refresh = %v, want %v", got, want)
	}
}

func TestEffects_SpeedBoostChangesInterval(t *testing.T) {
	e := newPlayingEngine(t, nil)
	base := e.baseInterval

	e.activateEffect(domain.PowerUpSpeedBoost)
	if !almostEqual(e.MoveInterval(), base*e.cfg.SpeedBoostFactor) {
		t.Errorf("Interval = %v, want %v", e.MoveInterval(), base*e.cfg.SpeedBoostFactor)
	}

	// По истечении эффекта интервал возвращается к базовому
	e.tickEffects(e.cfg.EffectDuration[domain.PowerUpSpeedBoost] + 0.01)
	if e.IsEffectActive(domain.PowerUpSpeedBoost) {
		t.Error("Effect must expire")
	}
	if !almostEqual(e.MoveInterval(), base) {
		t.Errorf("Interval after expiry = %v, want base %v", e.MoveInterval(), base)
	}
}

// Политика одновременных скоростных эффектов: побеждает активированный
// позже; после его истечения действует выживший, а не базовый интервал.
func TestEffects_LastAppliedSpeedWins(t *testing.T) {
	e := newPlayingEngine(t, nil)
	base := e.baseInterval

	e.activateEffect(domain.PowerUpSpeedBoost)
	e.activateEffect(domain.PowerUpSlowMotion)

	// Последний - SlowMotion, множители не перемножаются
	if !almostEqual(e.MoveInterval(), base*e.cfg.SlowMotionFactor) {
		t.Errorf("Interval = %v, want slow %v", e.MoveInterval(), base*e.cfg.SlowMotionFactor)
	}

	// Продлеваем SpeedBoost руками, чтобы он пережил SlowMotion
	e.effects[domain.PowerUpSpeedBoost] = 20

	e.tickEffects(e.cfg.EffectDuration[domain.PowerUpSlowMotion] + 0.01)
	if e.IsEffectActive(domain.PowerUpSlowMotion) {
		t.Fatal("SlowMotion must expire")
	}
	if !e.IsEffectActive(domain.PowerUpSpeedBoost) {
		t.Fatal("SpeedBoost must survive")
	}
	// Возврат к множителю SpeedBoost, НЕ к базовому интервалу
	if !almostEqual(e.MoveInterval(), base*e.cfg.SpeedBoostFactor) {
		t.Errorf("Interval = %v, want boost %v", e.MoveInterval(), base*e.cfg.SpeedBoostFactor)
	}
}

func TestEffects_NonSpeedExpiryIsNoOp(t *testing.T) {
	e := newPlayingEngine(t, nil)
	e.activateEffect(domain.PowerUpSpeedBoost)
	e.activateEffect(domain.PowerUpShield)
	interval := e.MoveInterval()

	// Истечение Shield не трогает интервал
	e.effects[domain.PowerUpShield] = 0.001
	e.tickEffects(0.01)

	if e.IsEffectActive(domain.PowerUpShield) {
		t.Fatal("Shield must expire")
	}
	if !almostEqual(e.MoveInterval(), interval) {
		t.Errorf("Shield expiry must not touch interval: %v -> %v", interval, e.MoveInterval())
	}
}

func TestUpdate_IgnoredOutsidePlaying(t *testing.T) {
	e := newPlayingEngine(t, nil)
	e.activateEffect(domain.PowerUpShield)
	remaining := e.effects[domain.PowerUpShield]

	e.Pause()
	e.Update(100)

	// На паузе таймеры эффектов заморожены
	if got := e.effects[domain.PowerUpShield]; !almostEqual(got, remaining) {
		t.Errorf("Effect ticked while paused: %v -> %v", remaining, got)
	}
}

func TestUpdate_ExpiresBoardPowerUpsSilently(t *testing.T) {
	e := newPlayingEngine(t, nil)
	rec := &recorder{}
	e.AddObserver(rec)

	placePowerUp(e, domain.GridPosition{X: 1, Y: 1}, domain.PowerUpShield)
	e.powerUps[0].Lifetime = 0.5

	e.Update(1)

	if len(e.PowerUps()) != 0 {
		t.Error("Expired power-up must leave the board")
	}
	// Истечение на поле - не подбор: события быть не должно
	if len(rec.powerUps) != 0 {
		t.Errorf("Expiry must not emit POWERUP_COLLECTED, got %v", rec.powerUps)
	}
	if e.IsEffectActive(domain.PowerUpShield) {
		t.Error("Expired board power-up must not activate its effect")
	}
}

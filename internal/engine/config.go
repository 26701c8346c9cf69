package engine

import (
	"time"

	"snake-server/internal/domain"
)

// Config хранит параметры запуска движка.
// Все интервалы и длительности - в секундах.
type Config struct {
	// Seed - зерно генератора спавна. От него зависят позиции еды
	// и бонусов. 0 означает "взять случайное".
	Seed int64

	// Размеры поля в клетках.
	GridWidth  int
	GridHeight int

	// InitialSnakeLen - стартовая длина змейки.
	InitialSnakeLen int

	// InitialInterval - интервал шага на старте партии.
	// MinInterval - нижний предел разгона.
	// IntervalDecrement - на сколько ускоряемся за каждую еду.
	InitialInterval   float64
	MinInterval       float64
	IntervalDecrement float64

	// FoodValue - базовые очки за еду (до комбо и DoublePoints).
	FoodValue int

	// PowerUpChance - вероятность спавна бонуса при поедании еды.
	// PowerUpCap - максимум бонусов на поле одновременно.
	// PowerUpLifetime - сколько секунд бонус лежит на поле.
	PowerUpChance   float64
	PowerUpCap      int
	PowerUpLifetime float64

	// EffectDuration - длительность эффекта каждого типа после подбора.
	EffectDuration map[domain.PowerUpType]float64

	// SpeedBoostFactor / SlowMotionFactor - множители интервала шага.
	// Меньше единицы = быстрее.
	SpeedBoostFactor float64
	SlowMotionFactor float64
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		GridWidth:       20,
		GridHeight:      30,
		InitialSnakeLen: 3,

		InitialInterval:   0.50,
		MinInterval:       0.15,
		IntervalDecrement: 0.02,

		FoodValue: 10,

		PowerUpChance:   0.30,
		PowerUpCap:      2,
		PowerUpLifetime: 10,

		EffectDuration: map[domain.PowerUpType]float64{
			domain.PowerUpSpeedBoost:   5,
			domain.PowerUpSlowMotion:   7,
			domain.PowerUpDoublePoints: 10,
			domain.PowerUpShield:       8,
		},

		SpeedBoostFactor: 0.5,
		SlowMotionFactor: 1.5,
	}
}

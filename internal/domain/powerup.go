package domain

import "strings"

// PowerUpType - тип бонуса. Закрытый набор: сущностей мало и они
// фиксированы, поэтому открытая иерархия типов здесь не нужна.
type PowerUpType uint8

const (
	PowerUpSpeedBoost PowerUpType = iota
	PowerUpSlowMotion
	PowerUpDoublePoints
	PowerUpShield

	// PowerUpTypeCount должен оставаться последним - используется
	// для равновероятного выбора типа при спавне.
	PowerUpTypeCount
)

// Маппинг для конвертации JSON -> Domain
var powerUpStringToValue = map[string]PowerUpType{
	"SPEED_BOOST":   PowerUpSpeedBoost,
	"SLOW_MOTION":   PowerUpSlowMotion,
	"DOUBLE_POINTS": PowerUpDoublePoints,
	"SHIELD":        PowerUpShield,
}

// Маппинг для логов и протокола Domain -> String
var powerUpValueToString = map[PowerUpType]string{
	PowerUpSpeedBoost:   "SPEED_BOOST",
	PowerUpSlowMotion:   "SLOW_MOTION",
	PowerUpDoublePoints: "DOUBLE_POINTS",
	PowerUpShield:       "SHIELD",
}

// ParsePowerUpType конвертирует строку протокола в PowerUpType.
func ParsePowerUpType(s string) (PowerUpType, bool) {
	t, ok := powerUpStringToValue[strings.ToUpper(s)]
	return t, ok
}

// String реализует интерфейс Stringer.
func (t PowerUpType) String() string {
	if s, ok := powerUpValueToString[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsSpeedEffect сообщает, влияет ли эффект на интервал движения.
// Нужно обработчику истечения эффектов: интервал сбрасывается к базовому
// только если не осталось другого скоростного эффекта.
func (t PowerUpType) IsSpeedEffect() bool {
	return t == PowerUpSpeedBoost || t == PowerUpSlowMotion
}

// PowerUp - бонус, лежащий на поле. Lifetime отсчитывается вниз;
// не подобранный вовремя бонус удаляется без события подбора.
type PowerUp struct {
	Pos      GridPosition
	Type     PowerUpType
	Lifetime float64 // секунды до исчезновения с поля
}

package domain

// Food - единственная еда на поле. Одновременно существует не более одной:
// создается на старте игры и заново после каждого поедания.
type Food struct {
	Pos GridPosition
	// Label - чисто косметическая метка (какой фрукт рисовать).
	// Циклически перебирается по FoodLabels независимо от рандома,
	// поэтому порядок меток детерминирован в рамках одной сессии.
	Label string
	// Value - базовые очки за поедание (до учета комбо и DoublePoints).
	Value int
}

// FoodLabels - фиксированный упорядоченный список меток еды.
// Индекс метки двигается по кругу при каждом спавне.
var FoodLabels = []string{"🍎", "🍊", "🍇", "🍓", "🍒"}

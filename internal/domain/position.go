package domain

// GridPosition - координата клетки на игровом поле.
// Value-type: дешево копируется, сравнивается по значению,
// пригоден как ключ мапы (занятость клеток, тело змейки).
type GridPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Moved возвращает позицию, сдвинутую на одну клетку в направлении dir.
// Границы поля здесь НЕ проверяются - это зона ответственности движка
// (там же живет логика wrap-around при активном Shield).
func Moved(pos GridPosition, dir Direction) GridPosition {
	d := dir.Delta()
	return GridPosition{X: pos.X + d.X, Y: pos.Y + d.Y}
}

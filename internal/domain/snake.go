package domain

// Snake - тело змейки. Body упорядочен от головы к хвосту (голова - индекс 0).
// Инвариант: len(Body) >= 1 всегда. Во время обычной игры дубликатов позиций
// нет (самопересечение отсекается движком ДО вставки головы); при активном
// Shield перекрытие сегментов допускается осознанно.
//
// Snake принадлежит движку эксклюзивно и мутируется только через
// Grow / RemoveTail.
type Snake struct {
	Body      []GridPosition
	Direction Direction
}

// NewSnake создает змейку из length сегментов, голова в head,
// тело вытянуто в сторону, противоположную dir.
func NewSnake(head GridPosition, dir Direction, length int) *Snake {
	back := dir.Opposite().Delta()
	body := make([]GridPosition, length)
	for i := 0; i < length; i++ {
		body[i] = GridPosition{X: head.X + back.X*i, Y: head.Y + back.Y*i}
	}
	return &Snake{Body: body, Direction: dir}
}

// Head возвращает позицию головы.
func (s *Snake) Head() GridPosition {
	return s.Body[0]
}

// Len возвращает длину тела.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains сообщает, занимает ли какой-либо сегмент тела позицию pos.
func (s *Snake) Contains(pos GridPosition) bool {
	for _, seg := range s.Body {
		if seg == pos {
			return true
		}
	}
	return false
}

// Grow вставляет новую голову (рост на один сегмент).
func (s *Snake) Grow(head GridPosition) {
	s.Body = append([]GridPosition{head}, s.Body...)
}

// RemoveTail убирает последний сегмент. Вместе с Grow дает
// чистое перемещение без изменения длины.
func (s *Snake) RemoveTail() {
	s.Body = s.Body[:len(s.Body)-1]
}

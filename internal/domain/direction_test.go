package domain

import "testing"

var allDirections = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func TestDirection_OppositeInvolution(t *testing.T) {
	// Для любого направления двойное Opposite возвращает исходное
	for _, d := range allDirections {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", d, got, d)
		}
		if !d.IsOpposite(d.Opposite()) {
			t.Errorf("%s.IsOpposite(%s) = false", d, d.Opposite())
		}
	}
}

func TestDirection_Delta(t *testing.T) {
	// Сдвиг в направлении и обратно возвращает в исходную клетку
	start := GridPosition{X: 5, Y: 5}
	for _, d := range allDirections {
		moved := Moved(start, d)
		if moved == start {
			t.Errorf("Moved(%v, %s) did not change position", start, d)
		}
		if back := Moved(moved, d.Opposite()); back != start {
			t.Errorf("Moved back from %s: got %v, want %v", d, back, start)
		}
	}

	if d := DirectionUp.Delta(); d.X != 0 || d.Y != -1 {
		t.Errorf("Up delta = %v, want (0,-1)", d)
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("left"); !ok || d != DirectionLeft {
		t.Errorf("ParseDirection(left) = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("ParseDirection should reject unknown strings")
	}
}

func TestSnake_NewSnake(t *testing.T) {
	s := NewSnake(GridPosition{X: 10, Y: 15}, DirectionRight, 3)

	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}
	if s.Head() != (GridPosition{X: 10, Y: 15}) {
		t.Errorf("Head = %v, want (10,15)", s.Head())
	}
	// Тело вытянуто влево (противоположно направлению движения)
	if s.Body[1] != (GridPosition{X: 9, Y: 15}) || s.Body[2] != (GridPosition{X: 8, Y: 15}) {
		t.Errorf("Body = %v, expected segments trailing left", s.Body)
	}
}

func TestSnake_GrowAndRemoveTail(t *testing.T) {
	s := NewSnake(GridPosition{X: 5, Y: 5}, DirectionRight, 2)
	tail := s.Body[1]

	s.Grow(GridPosition{X: 6, Y: 5})
	if s.Len() != 3 {
		t.Fatalf("Expected length 3 after Grow, got %d", s.Len())
	}
	if s.Head() != (GridPosition{X: 6, Y: 5}) {
		t.Errorf("New head = %v, want (6,5)", s.Head())
	}

	s.RemoveTail()
	if s.Len() != 2 {
		t.Fatalf("Expected length 2 after RemoveTail, got %d", s.Len())
	}
	if s.Contains(tail) {
		t.Errorf("Tail %v should be removed", tail)
	}
}

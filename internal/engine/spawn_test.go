package engine

import (
	"testing"

	"snake-server/internal/domain"
)

func TestSpawnFood_AvoidsOccupiedCells(t *testing.T) {
	cfg := testConfig()
	// Тесное поле: змейка занимает почти весь ряд
	cfg.GridWidth = 4
	cfg.GridHeight = 3
	cfg.InitialSnakeLen = 2
	e := NewEngine(cfg, &memStore{})

	placePowerUp(e, domain.GridPosition{X: 0, Y: 0}, domain.PowerUpShield)

	for i := 0; i < 200; i++ {
		e.spawnFood()
		food, ok := e.Food()
		if !ok {
			t.Fatal("Food must exist after spawn")
		}
		if e.snake.Contains(food.Pos) {
			t.Fatalf("Food spawned on snake at %v", food.Pos)
		}
		if e.powerUpAt(food.Pos) >= 0 {
			t.Fatalf("Food spawned on power-up at %v", food.Pos)
		}
	}
}

func TestSpawnFood_LabelOrderIsDeterministic(t *testing.T) {
	e := NewEngine(testConfig(), &memStore{})

	// reset уже заспавнил первую еду - индекс меток сдвинут на 1.
	// Дальше метки идут строго по кругу, независимо от рандома.
	n := len(domain.FoodLabels)
	for i := 1; i < n*2+1; i++ {
		e.spawnFood()
		food, _ := e.Food()
		want := domain.FoodLabels[i%n]
		if food.Label != want {
			t.Fatalf("Label %d = %q, want %q", i, food.Label, want)
		}
	}
}

func TestSpawnPowerUp_RespectsCap(t *testing.T) {
	e := NewEngine(testConfig(), &memStore{})

	for i := 0; i < 10; i++ {
		e.spawnPowerUp()
	}
	if len(e.PowerUps()) != e.cfg.PowerUpCap {
		t.Errorf("Power-up count = %d, want cap %d", len(e.PowerUps()), e.cfg.PowerUpCap)
	}
}

func TestSpawnPowerUp_AvoidsSnakeFoodAndOthers(t *testing.T) {
	cfg := testConfig()
	cfg.GridWidth = 4
	cfg.GridHeight = 3
	cfg.InitialSnakeLen = 2
	cfg.PowerUpCap = 2
	e := NewEngine(cfg, &memStore{})

	e.spawnPowerUp()
	e.spawnPowerUp()

	food, _ := e.Food()
	seen := map[domain.GridPosition]bool{food.Pos: true}
	for _, seg := range e.SnakeBody() {
		seen[seg] = true
	}
	for _, p := range e.PowerUps() {
		if seen[p.Pos] {
			t.Fatalf("Power-up overlaps another entity at %v", p.Pos)
		}
		seen[p.Pos] = true
	}
	if p := e.PowerUps(); len(p) > 0 && p[0].Lifetime != e.cfg.PowerUpLifetime {
		t.Errorf("Lifetime = %v, want %v", p[0].Lifetime, e.cfg.PowerUpLifetime)
	}
}

func TestEatFood_SpawnsPowerUpProbabilistically(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUpChance = 1 // всегда
	e := NewEngine(cfg, &memStore{})
	e.StartPlaying()

	head := e.snake.Head()
	placeFood(e, domain.GridPosition{X: head.X + 1, Y: head.Y})
	if !e.MoveSnake() {
		t.Fatal("Move should succeed")
	}

	if len(e.PowerUps()) != 1 {
		t.Errorf("Expected one power-up after food with p=1, got %d", len(e.PowerUps()))
	}
}

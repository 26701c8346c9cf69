package engine

import "snake-server/pkg/api"

// BuildStateView собирает полный снимок партии для протокола.
// Снимок строится из read-only аксессоров: движок не отдает наружу
// ссылок на свое изменяемое состояние.
func BuildStateView(e *Engine) api.StateView {
	view := api.StateView{
		Grid:      api.GridMeta{Width: e.cfg.GridWidth, Height: e.cfg.GridHeight},
		GameState: e.State().String(),
		Direction: e.Direction().String(),
		Score:     e.Score(),
		HighScore: e.HighScore(),
		Combo:     e.Combo(),
		Interval:  e.MoveInterval(),
	}

	body := e.SnakeBody()
	view.Snake = make([]api.PointView, len(body))
	for i, seg := range body {
		view.Snake[i] = api.PointView{X: seg.X, Y: seg.Y}
	}

	if food, ok := e.Food(); ok {
		view.Food = &api.FoodView{
			Pos:   api.PointView{X: food.Pos.X, Y: food.Pos.Y},
			Label: food.Label,
			Value: food.Value,
		}
	}

	for _, p := range e.PowerUps() {
		view.PowerUps = append(view.PowerUps, api.PowerUpView{
			Pos:      api.PointView{X: p.Pos.X, Y: p.Pos.Y},
			Type:     p.Type.String(),
			Lifetime: p.Lifetime,
		})
	}

	effects := e.ActiveEffects()
	if len(effects) > 0 {
		view.Effects = make(map[string]float64, len(effects))
		for t, rem := range effects {
			view.Effects[t.String()] = rem
		}
	}

	return view
}

package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var validActions = map[string]bool{
	ActionStart:   true,
	ActionRestart: true,
	ActionTurn:    true,
	ActionPause:   true,
	ActionResume:  true,
}

var validDirections = map[string]bool{
	"UP":    true,
	"DOWN":  true,
	"LEFT":  true,
	"RIGHT": true,
}

func (c ClientCommand) Validate() error {
	if !validActions[c.Action] {
		return fmt.Errorf("unknown action %q", c.Action)
	}
	if c.Action == ActionTurn {
		if c.Direction == "" {
			return errors.New("TURN requires a direction")
		}
		if !validDirections[c.Direction] {
			return fmt.Errorf("unknown direction %q", c.Direction)
		}
	}
	return nil
}

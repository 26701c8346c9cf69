package api

import "testing"

func TestClientCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ClientCommand
		wantErr bool
	}{
		{"start", ClientCommand{Action: ActionStart}, false},
		{"restart", ClientCommand{Action: ActionRestart}, false},
		{"pause", ClientCommand{Action: ActionPause}, false},
		{"resume", ClientCommand{Action: ActionResume}, false},
		{"turn up", ClientCommand{Action: ActionTurn, Direction: "UP"}, false},
		{"turn right", ClientCommand{Action: ActionTurn, Direction: "RIGHT"}, false},
		{"unknown action", ClientCommand{Action: "TELEPORT"}, true},
		{"empty action", ClientCommand{}, true},
		{"turn without direction", ClientCommand{Action: ActionTurn}, true},
		{"turn bad direction", ClientCommand{Action: ActionTurn, Direction: "DIAGONAL"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected error for %+v, got nil", tt.cmd)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %+v: %v", tt.cmd, err)
			}
		})
	}
}

package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"ATTACK", ActionAttack},
		{"attack", ActionAttack},
		{"Skill", ActionSkill},
		{" rest ", ActionRest},
		{"UNEQUIP", ActionUnequip},
		{"MOVE", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionNew, "NEW"},
		{ActionBattle, "BATTLE"},
		{ActionSave, "SAVE"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestActionType_NeedsGame(t *testing.T) {
	if ActionNew.NeedsGame() || ActionLoad.NeedsGame() {
		t.Error("NEW and LOAD must work without a game")
	}
	if !ActionAttack.NeedsGame() || !ActionStatus.NeedsGame() {
		t.Error("ATTACK and STATUS need a game")
	}
}

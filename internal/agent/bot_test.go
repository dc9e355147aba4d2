package agent

import (
	"context"
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/engine"
	"dusk-rpg/internal/infrastructure/storage"
	"dusk-rpg/pkg/api"
	"dusk-rpg/pkg/logger"
	"math/rand"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newBotSession(t *testing.T, class string, seed int64) *engine.Session {
	t.Helper()
	store, err := storage.NewSaveService(afero.NewMemMapFs(), "saves")
	require.NoError(t, err)
	s := engine.NewSession(store, rand.New(rand.NewSource(seed)))

	cmd, err := api.NewCommand("NEW", api.NewGamePayload{Name: "Bot", Class: class})
	require.NoError(t, err)
	resp := s.ProcessCommand(cmd)
	require.Equal(t, "UPDATE", resp.Type, resp.Error)
	return s
}

func TestBot_RunPlaysAllBattles(t *testing.T) {
	for _, class := range []string{"Warrior", "Mage", "Rogue"} {
		t.Run(class, func(t *testing.T) {
			s := newBotSession(t, class, 7)
			bot := NewBot(s)

			report, err := bot.Run(context.Background(), 5)
			require.NoError(t, err)

			assert.Equal(t, 5, report.Battles)
			assert.Equal(t, report.Battles, report.Victories+report.Defeats)
			assert.GreaterOrEqual(t, report.Rounds, report.Battles)
			assert.False(t, s.InCombat())
			assert.Equal(t, s.Player.Level, report.Level)
			assert.Equal(t, s.Player.Gold, report.Gold)
		})
	}
}

func TestBot_RunHonorsContext(t *testing.T) {
	s := newBotSession(t, "Warrior", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBot(s).Run(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBot_StepLimit(t *testing.T) {
	s := newBotSession(t, "Warrior", 1)
	bot := NewBot(s)
	bot.MaxSteps = 1

	_, err := bot.Run(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStuck)
}

func TestBot_RunWithoutGame(t *testing.T) {
	store, err := storage.NewSaveService(afero.NewMemMapFs(), "saves")
	require.NoError(t, err)
	s := engine.NewSession(store, rand.New(rand.NewSource(1)))

	_, err = NewBot(s).Run(context.Background(), 1)
	assert.Error(t, err)
}

func TestBot_DecideCombat(t *testing.T) {
	skills := []api.SkillView{
		{Name: "Fireball", Kind: "damage", MPCost: 10},
		{Name: "Shield", Kind: "effect", MPCost: 8},
	}
	tests := []struct {
		name      string
		hp, mp    int
		wantType  domain.ActionType
		wantIndex int
	}{
		{"healthy casts damage", 100, 50, domain.ActionSkill, 0},
		{"wounded shields", 20, 50, domain.ActionSkill, 1},
		{"no mana attacks", 100, 5, domain.ActionAttack, -1},
		{"wounded but only damage affordable", 20, 9, domain.ActionAttack, -1},
	}

	bot := NewBot(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &api.PlayerView{HP: tt.hp, MaxHP: 100, MP: tt.mp, MaxMP: 50, Skills: skills}
			action, payload := bot.decideCombat(p)
			assert.Equal(t, tt.wantType, action)
			if tt.wantIndex >= 0 {
				assert.Equal(t, api.IndexPayload{Index: tt.wantIndex}, payload)
			} else {
				assert.Nil(t, payload)
			}
		})
	}
}

func TestBot_DecidePeace(t *testing.T) {
	sword := api.ItemView{Name: "Sword", Slot: "weapon", Cost: 100, Bonuses: map[string]int{"str": 5}}
	bot := NewBot(nil)

	t.Run("equips upgrade from bag", func(t *testing.T) {
		p := &api.PlayerView{HP: 10, MaxHP: 10, Inventory: []api.ItemView{sword}}
		action, payload := bot.decide(api.ServerResponse{Player: p})
		assert.Equal(t, domain.ActionEquip, action)
		assert.Equal(t, api.IndexPayload{Index: 0}, payload)
	})

	t.Run("buys affordable upgrade", func(t *testing.T) {
		p := &api.PlayerView{HP: 10, MaxHP: 10, Gold: 100}
		action, payload := bot.decide(api.ServerResponse{Player: p, Shop: []api.ItemView{sword}})
		assert.Equal(t, domain.ActionBuy, action)
		assert.Equal(t, api.IndexPayload{Index: 0}, payload)
	})

	t.Run("rests when wounded", func(t *testing.T) {
		p := &api.PlayerView{HP: 3, MaxHP: 10}
		action, _ := bot.decide(api.ServerResponse{Player: p})
		assert.Equal(t, domain.ActionRest, action)
	})

	t.Run("checks shop then fights", func(t *testing.T) {
		p := &api.PlayerView{HP: 10, MaxHP: 10, Gold: 10}
		action, _ := bot.decide(api.ServerResponse{Player: p})
		assert.Equal(t, domain.ActionShop, action)

		action, _ = bot.decide(api.ServerResponse{Player: p, Shop: []api.ItemView{sword}})
		assert.Equal(t, domain.ActionBattle, action)
	})
}

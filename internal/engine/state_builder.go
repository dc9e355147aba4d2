package engine

import (
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/systems"
	"dusk-rpg/pkg/api"
)

// BuildState создает полный снимок сессии для клиента и забирает накопленные логи.
func (s *Session) BuildState(withShop bool) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:       "UPDATE",
		Phase:      s.Clock.Phase().String(),
		Difficulty: s.Clock.DifficultyMultiplier(),
	}

	if s.Player != nil {
		resp.MyEntityID = s.Player.ID
		resp.Player = playerView(s.Player)
	}
	if s.combat != nil {
		resp.Combat = combatView(s.combat)
	}
	if withShop && s.Player != nil {
		for _, item := range s.shop.Available(s.Player) {
			resp.Shop = append(resp.Shop, itemView(item))
		}
	}

	resp.Logs = s.DrainLogs()
	return resp
}

func playerView(c *domain.Character) *api.PlayerView {
	view := &api.PlayerView{
		ID:           c.ID,
		Name:         c.Name,
		Class:        c.Class.String(),
		Level:        c.Level,
		Experience:   c.Experience,
		NextLevelExp: c.NextLevelExp(),
		Gold:         c.Gold,
		HP:           c.CurrentHP,
		MaxHP:        c.Stats.HP,
		MP:           c.CurrentMP,
		MaxMP:        c.Stats.MP,
		Stats:        statsView(c.Stats),
		Equipment: api.EquipmentView{
			Weapon:    itemViewPtr(c.Equipment.Weapon),
			Armor:     itemViewPtr(c.Equipment.Armor),
			Accessory: itemViewPtr(c.Equipment.Accessory),
		},
		Inventory: make([]api.ItemView, 0, len(c.Inventory)),
	}

	for _, item := range c.Inventory {
		view.Inventory = append(view.Inventory, itemView(item))
	}
	for _, sk := range c.Skills() {
		view.Skills = append(view.Skills, skillView(sk))
	}
	return view
}

func statsView(st domain.Stats) api.StatsView {
	return api.StatsView{HP: st.HP, MP: st.MP, Str: st.Str, Dex: st.Dex, Int: st.Int, Def: st.Def}
}

func itemView(item domain.Item) api.ItemView {
	view := api.ItemView{
		Name:          item.Name,
		Slot:          item.Slot.String(),
		Cost:          item.Cost,
		SellPrice:     item.SellPrice(),
		Bonuses:       make(map[string]int),
		RequiredLevel: item.Requirement.Level,
	}
	for _, e := range item.Stats.Entries() {
		view.Bonuses[e.Stat.String()] = e.Value
	}
	for _, class := range item.Requirement.Classes {
		view.Classes = append(view.Classes, class.String())
	}
	return view
}

func itemViewPtr(item *domain.Item) *api.ItemView {
	if item == nil {
		return nil
	}
	view := itemView(*item)
	return &view
}

func skillView(sk domain.Skill) api.SkillView {
	kind := "damage"
	if _, ok := sk.(domain.EffectSkill); ok {
		kind = "effect"
	}
	return api.SkillView{
		Name:        sk.Name(),
		Kind:        kind,
		MPCost:      sk.Cost(),
		Description: sk.Description(),
	}
}

func combatView(c *systems.Combat) *api.CombatView {
	view := &api.CombatView{
		Enemies: []api.EnemyView{},
		Streak:  c.Streak(),
		Ward:    c.Ward(),
		Outcome: c.Outcome().String(),
	}
	for _, e := range c.Enemies() {
		view.Enemies = append(view.Enemies, api.EnemyView{
			Name:       e.Name,
			Kind:       e.Kind.String(),
			Tag:        e.Tag.String(),
			Level:      e.Level,
			Difficulty: e.Difficulty,
			HP:         e.CurrentHP,
			MaxHP:      e.HP,
		})
	}
	if c.Outcome() == systems.OutcomeVictory {
		view.Exp = c.Reward().Exp
		view.Gold = c.Reward().Gold
	}
	return view
}

package main

import (
	"bufio"
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/engine"
	"dusk-rpg/pkg/api"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var errQuit = errors.New("quit")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}

		session := engine.NewSession(store, cfg.NewRNG())
		return runTerminal(session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

const helpText = `Команды:
  new <имя> <warrior|mage|rogue>   новый персонаж
  load <id>                        загрузить (список: dusk saves)
  battle | attack | skill <n>      бой
  rest | status | save
  equip <n> | unequip <слот>       экипировка (слоты: weapon, armor, accessory)
  shop | buy <n> | sell <n>        лавка
  help | quit`

// runTerminal - построчный цикл: одна строка - одна команда сессии.
func runTerminal(session *engine.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, helpText)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "help" {
			fmt.Fprintln(out, helpText)
			continue
		}

		cmd, err := parseLine(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			fmt.Fprintln(out, "!", err)
			continue
		}
		render(out, session.ProcessCommand(cmd), cmd.Action == domain.ActionStatus.String())
	}

	if err := session.Close(); err != nil {
		return err
	}
	return scanner.Err()
}

// parseLine переводит строку терминала в команду протокола.
func parseLine(line string) (api.ClientCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return api.ClientCommand{}, errors.New("empty command")
	}
	word := strings.ToLower(fields[0])
	rest := fields[1:]

	if word == "quit" || word == "exit" {
		return api.ClientCommand{}, errQuit
	}

	action := domain.ParseAction(word)
	switch action {
	case domain.ActionUnknown:
		return api.ClientCommand{}, fmt.Errorf("unknown command %q (help - список команд)", fields[0])

	case domain.ActionNew:
		if len(rest) < 2 {
			return api.ClientCommand{}, errors.New("usage: new <name> <class>")
		}
		name := strings.Join(rest[:len(rest)-1], " ")
		return api.NewCommand(action.String(), api.NewGamePayload{Name: name, Class: rest[len(rest)-1]})

	case domain.ActionLoad:
		if len(rest) != 1 {
			return api.ClientCommand{}, errors.New("usage: load <id>")
		}
		return api.NewCommand(action.String(), api.LoadPayload{SaveID: rest[0]})

	case domain.ActionSkill, domain.ActionEquip, domain.ActionBuy, domain.ActionSell:
		if len(rest) != 1 {
			return api.ClientCommand{}, fmt.Errorf("usage: %s <number>", word)
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return api.ClientCommand{}, fmt.Errorf("%q is not a number", rest[0])
		}
		return api.NewCommand(action.String(), api.IndexPayload{Index: n})

	case domain.ActionUnequip:
		if len(rest) != 1 {
			return api.ClientCommand{}, errors.New("usage: unequip <slot>")
		}
		return api.NewCommand(action.String(), api.SlotPayload{Slot: rest[0]})

	default:
		return api.NewCommand(action.String(), nil)
	}
}

func render(out io.Writer, resp api.ServerResponse, detailed bool) {
	for _, entry := range resp.Logs {
		if entry.Type == engine.LogError {
			fmt.Fprintln(out, "!", entry.Text)
			continue
		}
		fmt.Fprintln(out, " ", entry.Text)
	}

	if p := resp.Player; p != nil {
		fmt.Fprintf(out, "[%s] %s, %s ур.%d  HP %d/%d  MP %d/%d  EXP %d/%d  золото %d\n",
			resp.Phase, p.Name, p.Class, p.Level, p.HP, p.MaxHP, p.MP, p.MaxMP,
			p.Experience, p.NextLevelExp, p.Gold)
	}

	if p := resp.Player; p != nil && detailed {
		fmt.Fprintf(out, "  STR %d  DEX %d  INT %d  DEF %d\n", p.Stats.Str, p.Stats.Dex, p.Stats.Int, p.Stats.Def)
		for _, slot := range []struct {
			name string
			item *api.ItemView
		}{{"weapon", p.Equipment.Weapon}, {"armor", p.Equipment.Armor}, {"accessory", p.Equipment.Accessory}} {
			if slot.item != nil {
				fmt.Fprintf(out, "  %s: %s  %s\n", slot.name, slot.item.Name, formatBonuses(slot.item.Bonuses))
			}
		}
		for i, item := range p.Inventory {
			fmt.Fprintf(out, "  сумка %d: %s [%s] продажа %d\n", i, item.Name, item.Slot, item.SellPrice)
		}
	}

	if c := resp.Combat; c != nil && c.Outcome == "ONGOING" {
		for i, e := range c.Enemies {
			fmt.Fprintf(out, "  враг %d: %s ур.%d  HP %d/%d\n", i, e.Name, e.Level, e.HP, e.MaxHP)
		}
		if p := resp.Player; p != nil {
			for i, sk := range p.Skills {
				fmt.Fprintf(out, "  умение %d: %s (%d MP) - %s\n", i, sk.Name, sk.MPCost, sk.Description)
			}
		}
	}

	for i, item := range resp.Shop {
		fmt.Fprintf(out, "  товар %d: %s [%s] %d золота  %s\n", i, item.Name, item.Slot, item.Cost, formatBonuses(item.Bonuses))
	}
}

func formatBonuses(bonuses map[string]int) string {
	parts := make([]string, 0, len(bonuses))
	for _, key := range []string{"hp", "mp", "str", "dex", "int", "def"} {
		if v, ok := bonuses[key]; ok {
			parts = append(parts, fmt.Sprintf("%s %+d", strings.ToUpper(key), v))
		}
	}
	return strings.Join(parts, ", ")
}

package systems

import (
	"dusk-rpg/internal/domain"
	"dusk-rpg/pkg/logger"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Shop - лавка с фиксированным ассортиментом.
// Каталог отдаёт копии предметов: купленный предмет принадлежит только инвентарю.
type Shop struct {
	catalog []domain.Item
}

// NewShop создаёт лавку с заданным каталогом.
func NewShop(catalog []domain.Item) *Shop {
	return &Shop{catalog: append([]domain.Item(nil), catalog...)}
}

// Available - предметы, которые персонаж может купить по уровню и классу.
func (s *Shop) Available(player *domain.Character) []domain.Item {
	var out []domain.Item
	for _, item := range s.catalog {
		if item.Allows(player) {
			out = append(out, item)
		}
	}
	return out
}

// Buy покупает предмет из списка Available по индексу.
func (s *Shop) Buy(player *domain.Character, index int) (domain.Item, error) {
	available := s.Available(player)
	if index < 0 || index >= len(available) {
		return domain.Item{}, domain.ErrInvalidIndex
	}
	item := available[index]

	if player.Gold < item.Cost {
		return domain.Item{}, fmt.Errorf("%w: %s costs %d, have %d", domain.ErrNotEnoughGold, item.Name, item.Cost, player.Gold)
	}

	player.AddGold(-item.Cost)
	player.AddItem(item)

	logger.Log.WithFields(logrus.Fields{
		"component": "shop",
		"player_id": player.ID,
		"item":      item.Name,
		"cost":      item.Cost,
		"gold_left": player.Gold,
	}).Info("Item bought.")
	return item, nil
}

// Sell продаёт предмет из инвентаря за половину цены.
func (s *Shop) Sell(player *domain.Character, index int) (domain.Item, int, error) {
	item, err := player.RemoveItem(index)
	if err != nil {
		return domain.Item{}, 0, err
	}

	price := item.SellPrice()
	player.AddGold(price)

	logger.Log.WithFields(logrus.Fields{
		"component": "shop",
		"player_id": player.ID,
		"item":      item.Name,
		"price":     price,
	}).Info("Item sold.")
	return item, price, nil
}

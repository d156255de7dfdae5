package sim

import "github.com/ventureworks/hustle-engine/pkg/state"

// MarketItem is one purchasable line of the current market view.
type MarketItem struct {
	Goods      state.Goods `json:"goods"`
	Affordable int         `json:"affordable"`
	SpaceLeft  int         `json:"space_left"`
}

// MarketInfo projects the current city's purchasable goods from shared
// state: the city's own goods with a live price, annotated with how many
// units cash and capacity allow. Carried stock from other cities never
// appears. Pure read; calling it twice without an intervening command
// yields identical results.
func (e *Engine) MarketInfo() []MarketItem {
	gs := e.state
	city, ok := e.currentCity()
	if !ok {
		return nil
	}
	space := gs.CapacityRemaining()
	items := make([]MarketItem, 0, len(gs.Goods))
	for i := range gs.Goods {
		g := gs.Goods[i]
		if g.Price <= 0 || !tradedIn(city, g.ID) {
			continue
		}
		items = append(items, MarketItem{
			Goods:      g,
			Affordable: gs.Cash / g.Price,
			SpaceLeft:  space,
		})
	}
	return items
}

package sim

import "github.com/ventureworks/hustle-engine/pkg/catalog"

// RefreshPrices reprices the market without advancing time. Session
// creation uses it so the opening screen already has a market.
func (e *Engine) RefreshPrices() {
	e.regeneratePrices()
}

// tradedIn reports whether a good belongs to a city's own market.
func tradedIn(city *catalog.City, goodsID int) bool {
	cityID, _ := catalog.ParseGoodsID(goodsID)
	return cityID == city.ID
}

// regeneratePrices reprices the current city's own goods from their
// base/range bands, then withholds a location- and time-dependent count of
// them to simulate stock-outs. Goods from other cities have no market here:
// their prices are zeroed, so carried foreign stock stays untradeable until
// the player brings it home.
func (e *Engine) regeneratePrices() {
	gs := e.state
	city, ok := e.currentCity()
	if !ok {
		return
	}
	for i := range gs.Goods {
		g := &gs.Goods[i]
		if !tradedIn(city, g.ID) {
			g.Price = 0
			continue
		}
		if g.BasePrice > 0 && g.PriceRange > 0 {
			g.Price = g.BasePrice + e.rng.Range(0, g.PriceRange)
		}
	}

	leaveOut := e.leaveOut()
	if leaveOut <= 0 {
		return
	}
	available := make([]int, 0, len(gs.Goods))
	for i := range gs.Goods {
		if gs.Goods[i].Price > 0 {
			available = append(available, i)
		}
	}
	if leaveOut > len(available) {
		leaveOut = len(available)
	}
	// Withhold without replacement.
	for n := 0; n < leaveOut; n++ {
		pick := e.rng.Intn(len(available))
		gs.Goods[available[pick]].Price = 0
		available[pick] = available[len(available)-1]
		available = available[:len(available)-1]
	}
}

// leaveOut computes how many goods to withhold this tick. Transportation
// hubs are always fully stocked, and the final weeks open everything up so
// the player can liquidate.
func (e *Engine) leaveOut() int {
	cfg := e.cat.Game.PriceGeneration
	if loc, ok := e.currentLocation(); ok && loc.IsTransportationHub() {
		return cfg.TransportationHubLeaveOut
	}
	if e.state.TimeLeft <= 2 {
		return cfg.FinalWeeksLeaveOut
	}
	return cfg.DefaultLeaveOut
}

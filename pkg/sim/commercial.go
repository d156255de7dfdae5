package sim

import "github.com/ventureworks/hustle-engine/pkg/catalog"

// runCommercialEvents scans the city's commercial pool exhaustively: every
// event rolls independently, so several can fire in one tick. If none
// fires, one applicable event is drawn anyway so the market always has
// something to say.
func (e *Engine) runCommercialEvents(city *catalog.City) {
	events := city.Events.Commercial
	if len(events) == 0 {
		return
	}
	fired := false
	for i := range events {
		r := e.rng.Intn(e.cat.Game.Random.CommercialRange)
		if r%events[i].Freq != 0 {
			continue
		}
		if e.applyCommercialEvent(events[i], i == len(events)-1) {
			fired = true
		}
	}
	if fired {
		return
	}
	// Fallback: pick uniformly among events whose good is currently on
	// the market.
	applicable := make([]int, 0, len(events))
	for i := range events {
		g := e.state.FindGoods(events[i].GoodsID)
		if g != nil && g.Price > 0 {
			applicable = append(applicable, i)
		}
	}
	if len(applicable) == 0 {
		return
	}
	pick := applicable[e.rng.Intn(len(applicable))]
	e.applyCommercialEvent(events[pick], pick == len(events)-1)
}

// applyCommercialEvent resolves one fired event. Returns false when the
// event was skipped (withheld good, or a content bug).
func (e *Engine) applyCommercialEvent(ev catalog.CommercialEvent, last bool) bool {
	gs := e.state
	def, _, ok := e.cat.GoodsByID(ev.GoodsID)
	if !ok {
		// Content bug: the loader validates this, so it should be
		// impossible at runtime.
		e.log.Error("commercial event references unknown goods", "goods_id", ev.GoodsID)
		return false
	}
	g := gs.EnsureGoods(def)
	if g.Price == 0 && !ev.IsGrantOnly() {
		return false
	}

	switch {
	case ev.PriceMultiplier > 0:
		g.Price *= ev.PriceMultiplier
	case ev.PriceDivider > 0:
		g.Price /= ev.PriceDivider
	}
	e.sink.Show(ev.Message)

	if ev.GoodsGiven > 0 {
		if ev.Cost > 0 {
			if gs.Cash >= ev.Cost {
				gs.Cash -= ev.Cost
			} else {
				// A shortfall never blocks the grant; it becomes debt.
				gs.Debt += ev.Cost - gs.Cash
				gs.Cash = 0
			}
			e.sink.Show(printer.Sprintf("你为此付出了 %d 元。", ev.Cost))
		}
		granted := ev.GoodsGiven
		if space := gs.CapacityRemaining(); granted > space {
			granted = space
		}
		if granted > 0 {
			g.Owned += granted
			gs.TotalGoods += granted
			e.sink.Show(printer.Sprintf("你得到了 %d%s%s。", granted, g.Unit, g.Name))
		}
		if granted < ev.GoodsGiven {
			e.sink.Show("可惜你的仓库装不下更多了！")
		}
		if last {
			gs.Debt += 2500
			e.sink.Show("对方临走又讹了你一笔，你的债务增加了 2,500 元！")
		}
	}
	return true
}

package sim

import "github.com/ventureworks/hustle-engine/pkg/catalog"

// SwitchCity moves the player to another city by train, plane, or an
// intercity tunnel from the current location. Fare, weekly new-city cap,
// and per-mode luggage risk all apply; arrival reprices the market.
func (e *Engine) SwitchCity(destKey, mode string) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	origin, ok := e.currentCity()
	if !ok {
		return false
	}
	dest, ok := e.cat.City(destKey)
	if !ok {
		e.sink.Show("没听说过这个地方。")
		return false
	}
	if dest.Name == gs.CurrentCity {
		e.sink.Show(printer.Sprintf("你已经在%s了。", dest.Name))
		return false
	}
	limit := e.cat.Game.Travel.MaxNewCitiesPerWeek
	if limit > 0 && !gs.HasVisitedThisWeek(dest.Name) && len(gs.CityVisitsThisWeek) >= limit {
		e.sink.Show(printer.Sprintf("这周跑的地方够多了，一周最多去 %d 个新城市。", limit))
		return false
	}

	fare, lossChance, ok := e.travelCost(origin, dest, mode)
	if !ok {
		return false
	}
	if gs.Cash < fare {
		e.sink.Show(printer.Sprintf("去%s的路费要 %d 元，你付不起。", dest.Name, fare))
		return false
	}
	gs.Cash -= fare

	gs.CurrentCity = dest.Name
	gs.CurrentLocation = e.arrivalLocation(origin, dest, mode).ID
	if !gs.HasVisitedThisWeek(dest.Name) {
		gs.CityVisitsThisWeek = append(gs.CityVisitsThisWeek, dest.Name)
	}
	e.sink.Show(printer.Sprintf("你花了 %d 元来到%s。", fare, dest.Name))

	e.rollTransitLuggageLoss(lossChance)
	e.regeneratePrices()
	return true
}

// travelCost resolves fare and luggage risk for a mode. A tunnel ride
// costs a multiple of the subway fare instead of a long-distance ticket.
func (e *Engine) travelCost(origin, dest *catalog.City, mode string) (fare, lossChance int, ok bool) {
	travel := e.cat.Game.Travel
	switch mode {
	case "train":
		fare, ok = origin.Fares.Train[dest.Key]
		if !ok {
			e.sink.Show(printer.Sprintf("从%s没有到%s的火车。", origin.Name, dest.Name))
			return 0, 0, false
		}
		return fare, travel.TrainLossChance, true
	case "plane":
		fare, ok = origin.Fares.Plane[dest.Key]
		if !ok {
			e.sink.Show(printer.Sprintf("从%s没有到%s的航班。", origin.Name, dest.Name))
			return 0, 0, false
		}
		return fare, travel.PlaneLossChance, true
	case "tunnel":
		loc, ok := e.currentLocation()
		if !ok || loc.Tunnel == nil || loc.Tunnel.City != dest.Key {
			e.sink.Show("这里没有过境地铁，去火车站或机场吧。")
			return 0, 0, false
		}
		return origin.Fares.Subway * travel.TunnelFareMultiplier, travel.SubwayLossChance, true
	default:
		e.sink.Show("没有这种出行方式。")
		return 0, 0, false
	}
}

// arrivalLocation picks where the traveller lands: the tunnel's twin
// interchange when one exists for the mode, otherwise the city's first
// location.
func (e *Engine) arrivalLocation(origin, dest *catalog.City, mode string) catalog.Location {
	if mode == "tunnel" {
		if loc, ok := dest.FindLocation(func(l catalog.Location) bool {
			return l.Tunnel != nil && l.Tunnel.City == origin.Key
		}); ok {
			return loc
		}
	}
	return dest.FirstLocation()
}

// TakeSubway rides to another location in the current city for the flat
// subway fare, with the usual pickpocket risk and a fresh market at the
// destination.
func (e *Engine) TakeSubway(locationID int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	loc, ok := city.Location(locationID)
	if !ok {
		e.sink.Show("地铁不到这个地方。")
		return false
	}
	if loc.ID == gs.CurrentLocation {
		e.sink.Show(printer.Sprintf("你就在%s。", loc.Name))
		return false
	}
	fare := city.Fares.Subway
	if gs.Cash < fare {
		e.sink.Show(printer.Sprintf("地铁票要 %d 元，你付不起。", fare))
		return false
	}
	gs.Cash -= fare
	gs.CurrentLocation = loc.ID
	e.sink.Show(printer.Sprintf("你坐地铁来到了%s。", loc.Name))

	e.rollTransitLuggageLoss(e.cat.Game.Travel.SubwayLossChance)
	e.regeneratePrices()
	return true
}

func (e *Engine) rollTransitLuggageLoss(chance int) {
	gs := e.state
	if gs.TotalGoods == 0 || !e.rng.Chance(chance) {
		return
	}
	e.wipeLuggage()
	e.sink.Show("路上一个不留神，你的行李连货带箱全丢了！")
}

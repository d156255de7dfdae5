package sim

import (
	"sort"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
)

// HospitalTreatment buys back health at the city hospital's per-point rate.
func (e *Engine) HospitalTreatment(points int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	if points <= 0 {
		e.sink.Show("治疗点数得是正数。")
		return false
	}
	if gs.Health >= 100 {
		e.sink.Show("你的身体好得很，不用治。")
		return false
	}
	cost := points * city.Buildings.Hospital.CostPerPoint
	if gs.Cash < cost {
		e.sink.Show(printer.Sprintf("治疗 %d 点健康需要 %d 元，你付不起。", points, cost))
		return false
	}
	gs.Cash -= cost
	gs.AddHealth(points)
	e.sink.Show(printer.Sprintf("医生给你治疗了一番，花去 %d 元，健康恢复到 %d 点。", cost, gs.Health))
	return true
}

// DoWork runs one shift of a work type: deposit, daily cap and stamina
// are checked up front; success pays randomized income, burns randomized
// stamina, and exposes the player to one incidental health and money roll.
func (e *Engine) DoWork(workTypeID string) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	wt, ok := city.WorkType(workTypeID)
	if !ok {
		e.sink.Show("这里没有这种活儿可干。")
		return false
	}
	if gs.Health <= 0 {
		e.sink.Show("你的身体这个样子，干不了活。")
		return false
	}
	if wt.Deposit > 0 && gs.Cash < wt.Deposit {
		e.sink.Show(printer.Sprintf("干%s要先交 %d 元押金，你付不起。", wt.Name, wt.Deposit))
		return false
	}
	if wt.DailyLimit > 0 && gs.WorkVisits[wt.ID] >= wt.DailyLimit {
		e.sink.Show(printer.Sprintf("%s这周干得够多了，歇歇吧。", wt.Name))
		return false
	}
	staminaCost := e.rng.Range(wt.StaminaCost[0], wt.StaminaCost[1])
	if gs.Stamina < staminaCost {
		e.sink.Show("你太累了，先吃点东西恢复体力再说。")
		return false
	}

	gs.Cash -= wt.Deposit
	gs.WorkVisits[wt.ID]++
	income := e.rng.Range(wt.Income[0], wt.Income[1])
	gs.Cash += income
	gs.AddStamina(-staminaCost)
	e.sink.Show(printer.Sprintf("你干了一天%s，挣了 %d 元，消耗体力 %d 点。", wt.Name, income, staminaCost))

	// Working outside all day has its own hazards.
	e.runHealthEvents(city)
	if gs.IsGameOver {
		return true
	}
	e.runMoneyEvents(city)
	return true
}

// EatAtRestaurant charges a randomized bill, restores randomized stamina,
// and sometimes poisons the diner — one atomic action.
func (e *Engine) EatAtRestaurant() bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	rc := city.Buildings.Restaurant
	if gs.Cash < rc.Cost[0] {
		e.sink.Show(printer.Sprintf("吃一顿至少要 %d 元，你连这个都付不起。", rc.Cost[0]))
		return false
	}
	// The bill is rolled within what the diner can pay, never past the
	// cash on hand.
	maxBill := rc.Cost[1]
	if maxBill > gs.Cash {
		maxBill = gs.Cash
	}
	cost := e.rng.Range(rc.Cost[0], maxBill)
	gs.Cash -= cost
	recovery := e.rng.Range(rc.StaminaRecovery[0], rc.StaminaRecovery[1])
	gs.AddStamina(recovery)
	e.sink.Show(printer.Sprintf("你美美地吃了一顿，花去 %d 元，体力恢复了 %d 点。", cost, recovery))

	if e.rng.Chance(rc.PoisonChance) {
		damage := e.rng.Range(rc.PoisonDamage[0], rc.PoisonDamage[1])
		gs.AddHealth(-damage)
		e.sink.Show(printer.Sprintf("不好，这顿饭不干净，你食物中毒了！健康下降 %d 点。", damage))
		if gs.SoundEnabled {
			e.sound.Play("scream")
		}
		if gs.Health <= 0 {
			e.endGame()
		}
	}
	return true
}

// monthlyRent is the current charge for a house type in a city, after
// rent drift.
func (e *Engine) monthlyRent(cityName string, ht catalog.HouseType) int {
	return int(float64(ht.MonthlyRent) * e.state.RentMultiplier(cityName))
}

// RentHouse takes (or switches) a lease in the current city. The deposit
// is one month of rent; vacating a previous lease in the same city
// refunds its deposit against the new one. A famous enough tenant gets
// the deposit halved.
func (e *Engine) RentHouse(houseTypeID string) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	ht, ok := city.HouseType(houseTypeID)
	if !ok {
		e.sink.Show("中介没有这种房子。")
		return false
	}
	if gs.RentedHouses[gs.CurrentCity] == ht.ID {
		e.sink.Show(printer.Sprintf("你已经租着%s了。", ht.Name))
		return false
	}

	deposit := e.monthlyRent(gs.CurrentCity, ht)
	if ht.DiscountThreshold > 0 && gs.Fame >= ht.DiscountThreshold {
		deposit /= 2
		e.sink.Show("房东听说过你的名声，押金给你打了对折。")
	}
	refund := 0
	if prevID, had := gs.RentedHouses[gs.CurrentCity]; had {
		if prev, ok := city.HouseType(prevID); ok {
			refund = e.monthlyRent(gs.CurrentCity, prev)
		}
	}
	net := deposit - refund
	if net > gs.Cash {
		e.sink.Show(printer.Sprintf("租%s需要付 %d 元押金，你付不起。", ht.Name, net))
		return false
	}
	gs.Cash -= net

	gs.RentedHouses[gs.CurrentCity] = ht.ID
	if !containsString(gs.RentedCities, gs.CurrentCity) {
		gs.RentedCities = append(gs.RentedCities, gs.CurrentCity)
	}
	e.recomputeCapacity()
	e.sink.Show(printer.Sprintf("你租下了%s，仓库容量增加到 %d。", ht.Name, gs.MaxCapacity))
	return true
}

// recomputeCapacity rebuilds MaxCapacity from the base suitcase plus
// every live lease's bonus.
func (e *Engine) recomputeCapacity() {
	gs := e.state
	capacity := gs.BaseCapacity
	for cityName, htID := range gs.RentedHouses {
		city, ok := e.cat.CityByName(cityName)
		if !ok {
			continue
		}
		if ht, ok := city.HouseType(htID); ok {
			capacity += ht.CapacityIncrease
		}
	}
	gs.MaxCapacity = capacity
}

// processRent settles monthly rent for every leased city. A rent the
// player cannot pay triggers eviction from that city.
func (e *Engine) processRent() {
	gs := e.state
	// Copy: eviction mutates RentedCities mid-walk.
	cities := append([]string(nil), gs.RentedCities...)
	for _, cityName := range cities {
		city, ok := e.cat.CityByName(cityName)
		if !ok {
			continue
		}
		ht, ok := city.HouseType(gs.RentedHouses[cityName])
		if !ok {
			continue
		}
		rent := e.monthlyRent(cityName, ht)
		if gs.Cash >= rent {
			gs.Cash -= rent
			e.sink.Show(printer.Sprintf("你付了%s的房租 %d 元。", cityName, rent))
			continue
		}
		e.evict(cityName)
	}
}

// evict strips the player of a city's lease: cash is seized, goods beyond
// the suitcase are liquidated highest-priced first, and capacity records
// are rebuilt from the remaining leases.
func (e *Engine) evict(cityName string) {
	gs := e.state
	gs.Cash = 0

	delete(gs.RentedHouses, cityName)
	delete(gs.RentMultipliers, cityName)
	for i, name := range gs.RentedCities {
		if name == cityName {
			gs.RentedCities = append(gs.RentedCities[:i], gs.RentedCities[i+1:]...)
			break
		}
	}
	e.recomputeCapacity()

	if gs.TotalGoods > gs.BaseCapacity {
		order := make([]int, 0, len(gs.Goods))
		for i := range gs.Goods {
			if gs.Goods[i].Owned > 0 {
				order = append(order, i)
			}
		}
		sort.Slice(order, func(a, b int) bool {
			return gs.Goods[order[a]].Price > gs.Goods[order[b]].Price
		})
		excess := gs.TotalGoods - gs.BaseCapacity
		for _, idx := range order {
			if excess <= 0 {
				break
			}
			g := &gs.Goods[idx]
			taken := g.Owned
			if taken > excess {
				taken = excess
			}
			g.Owned -= taken
			gs.TotalGoods -= taken
			excess -= taken
		}
	}

	e.sink.Show(printer.Sprintf("你付不起%s的房租，被房东扫地出门！现金被搜走，放不下的货物也被抵了租。", cityName))
}

// applyRentDrift rolls each leased city for a permanent rent change.
func (e *Engine) applyRentDrift() {
	gs := e.state
	cfg := e.cat.Game.Housing
	for _, cityName := range gs.RentedCities {
		if !e.rng.Chance(cfg.RentDriftChance) {
			continue
		}
		mult := gs.RentMultiplier(cityName)
		if e.rng.Chance(50) {
			pct := e.rng.Range(cfg.RentDriftUp[0], cfg.RentDriftUp[1])
			mult *= 1 + float64(pct)/100
			e.sink.Show(printer.Sprintf("%s的房租行情涨了 %d%%。", cityName, pct))
		} else {
			pct := e.rng.Range(cfg.RentDriftDown[0], cfg.RentDriftDown[1])
			mult *= 1 - float64(pct)/100
			e.sink.Show(printer.Sprintf("%s的房租行情跌了 %d%%。", cityName, pct))
		}
		if mult < cfg.RentMultiplierMin {
			mult = cfg.RentMultiplierMin
		}
		if mult > cfg.RentMultiplierMax {
			mult = cfg.RentMultiplierMax
		}
		gs.RentMultipliers[cityName] = mult
	}
}

// checkForcedHospitalization commits the player involuntarily when health
// falls below the city hospital's trigger with enough of the game left to
// matter. The stay consumes 1-2 ticks and piles on debt; returns whether
// it happened so the tick loop skips its own time decrement.
func (e *Engine) checkForcedHospitalization(city *catalog.City) bool {
	gs := e.state
	trigger := city.Buildings.Hospital.TriggerHealth
	if trigger <= 0 || gs.Health >= trigger || gs.Health <= 0 {
		return false
	}
	if gs.TimeLeft <= 3 {
		e.sink.Show("你的身体已经很糟了，撑到最后可得小心。")
		return false
	}
	days := 1 + e.rng.Intn(2)
	charge := 0
	for d := 0; d < days; d++ {
		charge += 1000 + e.rng.Intn(8500)
	}
	gs.TimeLeft -= days
	if gs.TimeLeft < 0 {
		gs.TimeLeft = 0
	}
	gs.Debt += charge
	gs.AddHealth(10)
	e.sink.Show(printer.Sprintf("你的身体垮了，被强制送进医院住了 %d 周，欠下 %d 元医药费，健康恢复了一些。", days, charge))
	return true
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

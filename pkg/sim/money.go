package sim

import "github.com/ventureworks/hustle-engine/pkg/catalog"

// runMoneyEvents rolls every event in the city's money pool
// independently. Cash and savings are floored at zero on every branch.
func (e *Engine) runMoneyEvents(city *catalog.City) {
	for _, ev := range city.Events.Money {
		r := e.rng.Intn(e.cat.Game.Random.MoneyRange)
		if r%ev.Freq != 0 {
			continue
		}
		e.applyMoneyEvent(ev)
	}
}

func (e *Engine) applyMoneyEvent(ev catalog.MoneyEvent) {
	gs := e.state
	switch {
	case ev.CashBased:
		if gs.Cash < ev.MinCash {
			return
		}
		stake := gs.Cash
		if ev.MaxCash > 0 && stake > ev.MaxCash {
			stake = ev.MaxCash
		}
		profit := e.rng.Chance(50)
		if ev.IsProfit != nil {
			profit = *ev.IsProfit
		}
		if profit {
			gain := int(float64(stake) * ev.ProfitMultiplier)
			gs.Cash += gain
			e.sink.Show(printer.Sprintf("%s你赚了 %d 元！", ev.Message, gain))
		} else {
			loss := int(float64(stake) * ev.LossMultiplier)
			gs.Cash -= loss
			if gs.Cash < 0 {
				gs.Cash = 0
			}
			e.sink.Show(printer.Sprintf("%s你损失了 %d 元。", ev.Message, loss))
		}

	case ev.TargetsSavings:
		if gs.BankSavings <= 0 || ev.CashMultiplier <= 0 {
			return
		}
		loss := gs.BankSavings * ev.CashMultiplier / 100
		gs.BankSavings -= loss
		if gs.BankSavings < 0 {
			gs.BankSavings = 0
		}
		e.sink.Show(printer.Sprintf("%s你的存款减少了 %d 元。", ev.Message, loss))

	default:
		if ev.CashMultiplier == 0 || gs.Cash <= 0 {
			return
		}
		mult := ev.CashMultiplier
		if mult < 0 {
			gain := gs.Cash * -mult / 100
			gs.Cash += gain
			e.sink.Show(printer.Sprintf("%s你得到了 %d 元。", ev.Message, gain))
			return
		}
		loss := gs.Cash * mult / 100
		gs.Cash -= loss
		if gs.Cash < 0 {
			gs.Cash = 0
		}
		e.sink.Show(printer.Sprintf("%s你花去了 %d 元。", ev.Message, loss))
	}
}

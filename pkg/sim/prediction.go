package sim

import (
	"github.com/google/uuid"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

const (
	predictionStatusActive  = "active"
	predictionStatusSettled = "settled"

	// Pari-mutuel odds after the house takes its cut, clamped so no
	// option ever pays below 1.1x or above 10x.
	predictionFee      = 0.05
	predictionMinOdds  = 1.1
	predictionMaxOdds  = 10.0
	predictionBaseOdds = 2.0
)

// advancePredictionMarket runs the side game's weekly lifecycle: settle
// events whose week has come, then top the board back up from templates.
func (e *Engine) advancePredictionMarket() {
	week := e.currentWeek()
	e.settlePredictionEvents(week)
	e.spawnPredictionEvents(week)
}

func (e *Engine) settlePredictionEvents(week int) {
	gs := e.state
	pm := &gs.Prediction
	remaining := pm.ActiveEvents[:0]
	for i := range pm.ActiveEvents {
		ev := pm.ActiveEvents[i]
		if week < ev.SettlementWeek {
			remaining = append(remaining, ev)
			continue
		}
		winner := e.rng.Intn(len(ev.Options))
		ev.Options[winner].IsCorrect = true
		ev.Status = predictionStatusSettled
		e.payOutPredictionBets(&ev, ev.Options[winner].ID)
		pm.SettledEvents = append(pm.SettledEvents, ev)
	}
	pm.ActiveEvents = remaining
}

func (e *Engine) payOutPredictionBets(ev *state.PredictionEvent, winningOption string) {
	gs := e.state
	pm := &gs.Prediction
	for i := range pm.Bets {
		bet := &pm.Bets[i]
		if bet.Settled || bet.EventID != ev.ID {
			continue
		}
		bet.Settled = true
		pm.Statistics.TotalPredictions++
		if bet.OptionID != winningOption {
			pm.Statistics.FailedPredictions++
			pm.Statistics.NetProfit -= bet.Amount
			e.sink.Show(printer.Sprintf("预测「%s」开奖了，你押错了，%d 元打了水漂。", ev.Title, bet.Amount))
			continue
		}
		payout := int(float64(bet.Amount) * bet.OddsAtBet)
		bet.Payout = payout
		gs.Cash += payout
		pm.TotalPayout += payout
		pm.Statistics.SuccessfulPredictions++
		pm.Statistics.NetProfit += payout - bet.Amount
		e.sink.Show(printer.Sprintf("预测「%s」开奖了，你押中了！赢得 %d 元。", ev.Title, payout))
	}
	if pm.Statistics.TotalPredictions > 0 {
		pm.Statistics.WinRate = float64(pm.Statistics.SuccessfulPredictions) / float64(pm.Statistics.TotalPredictions)
	}
}

func (e *Engine) spawnPredictionEvents(week int) {
	cfg := e.cat.Game.Prediction
	pm := &e.state.Prediction
	if len(cfg.Templates) == 0 {
		return
	}
	for len(pm.ActiveEvents) < cfg.MaxActive {
		tpl := cfg.Templates[e.rng.Intn(len(cfg.Templates))]
		options := make([]state.PredictionOption, len(tpl.Options))
		for i, text := range tpl.Options {
			options[i] = state.PredictionOption{
				ID:   uuid.NewString(),
				Text: text,
				Odds: predictionBaseOdds,
			}
		}
		pm.ActiveEvents = append(pm.ActiveEvents, state.PredictionEvent{
			ID:             uuid.NewString(),
			Title:          tpl.Title,
			Description:    tpl.Description,
			Options:        options,
			SettlementWeek: week + tpl.DurationWeeks,
			MinBet:         cfg.MinBet,
			MaxBet:         cfg.MaxBet,
			Status:         predictionStatusActive,
			CreatedAt:      week,
		})
	}
}

// PlaceBet stakes cash on one option of an active prediction event. Odds
// are recomputed pari-mutuel style after the stake lands and snapshotted
// onto the bet.
func (e *Engine) PlaceBet(eventID, optionID string, amount int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	pm := &gs.Prediction
	ev := pm.FindActiveEvent(eventID)
	if ev == nil {
		e.sink.Show("这个预测已经关盘了。")
		return false
	}
	if amount < ev.MinBet || (ev.MaxBet > 0 && amount > ev.MaxBet) {
		e.sink.Show(printer.Sprintf("下注金额要在 %d 到 %d 元之间。", ev.MinBet, ev.MaxBet))
		return false
	}
	if gs.Cash < amount {
		e.sink.Show("你身上没有这么多现金。")
		return false
	}
	var opt *state.PredictionOption
	for i := range ev.Options {
		if ev.Options[i].ID == optionID {
			opt = &ev.Options[i]
			break
		}
	}
	if opt == nil {
		e.sink.Show("没有这个选项。")
		return false
	}

	gs.Cash -= amount
	opt.TotalBets += amount
	pm.TotalBetsAmount += amount
	updatePredictionOdds(ev)

	pm.Bets = append(pm.Bets, state.PredictionBet{
		ID:        uuid.NewString(),
		EventID:   ev.ID,
		OptionID:  opt.ID,
		Amount:    amount,
		OddsAtBet: opt.Odds,
		BetAt:     e.currentWeek(),
	})
	e.sink.Show(printer.Sprintf("你在「%s」上押了 %d 元，当前赔率 %.2f。", ev.Title, amount, opt.Odds))
	return true
}

// updatePredictionOdds redistributes the pool over the options: each
// backed option pays the pool minus the fee, proportional to its share.
func updatePredictionOdds(ev *state.PredictionEvent) {
	pool := 0
	for i := range ev.Options {
		pool += ev.Options[i].TotalBets
	}
	if pool == 0 {
		return
	}
	for i := range ev.Options {
		opt := &ev.Options[i]
		if opt.TotalBets == 0 {
			opt.Odds = predictionMaxOdds
			continue
		}
		odds := float64(pool) * (1 - predictionFee) / float64(opt.TotalBets)
		if odds < predictionMinOdds {
			odds = predictionMinOdds
		}
		if odds > predictionMaxOdds {
			odds = predictionMaxOdds
		}
		opt.Odds = odds
	}
}

package sim

import (
	"log/slog"
	"time"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

// Engine drives one game session. It owns the tick sequence and the whole
// command surface; all mutation of the shared GameState flows through it,
// one command at a time. The engine itself is stateless beyond its
// references, so a fresh Engine over a loaded GameState resumes a session
// exactly where it left off.
type Engine struct {
	cat   *catalog.Catalog
	state *state.GameState
	rng   RNG
	sink  MessageSink
	sound SoundPlayer
	log   *slog.Logger

	bankHacking bool
}

// Option tweaks engine behavior at construction.
type Option func(*Engine)

// WithBankHacking toggles the random savings-theft feature.
func WithBankHacking(enabled bool) Option {
	return func(e *Engine) { e.bankHacking = enabled }
}

// NewEngine wires an engine over a session. The catalog is read-only and
// shared across sessions; everything else belongs to this session.
func NewEngine(cat *catalog.Catalog, gs *state.GameState, rng RNG, sink MessageSink, sound SoundPlayer, log *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		cat:         cat,
		state:       gs,
		rng:         rng,
		sink:        sink,
		sound:       sound,
		log:         log,
		bankHacking: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the session state for serialization. Callers must not
// mutate it; all mutation goes through engine commands.
func (e *Engine) State() *state.GameState {
	return e.state
}

func (e *Engine) currentCity() (*catalog.City, bool) {
	city, ok := e.cat.CityByName(e.state.CurrentCity)
	if !ok {
		e.log.Error("state references unknown city", "city", e.state.CurrentCity)
	}
	return city, ok
}

func (e *Engine) currentLocation() (catalog.Location, bool) {
	city, ok := e.currentCity()
	if !ok {
		return catalog.Location{}, false
	}
	loc, ok := city.Location(e.state.CurrentLocation)
	if !ok {
		e.log.Error("state references unknown location", "city", city.Key, "location", e.state.CurrentLocation)
	}
	return loc, ok
}

func (e *Engine) currentWeek() int {
	return e.state.CurrentWeek(e.cat.Game.Time.TotalWeeks)
}

// refuseIfOver reports whether the session has ended, narrating the
// refusal so a command against a finished game always answers with a line.
func (e *Engine) refuseIfOver() bool {
	if !e.state.IsGameOver {
		return false
	}
	e.sink.Show("这一局已经收场了，去看看最终成绩吧。")
	return true
}

// NextTime advances the simulation by one tick. The step order is fixed:
// prices, interest, rent drift and monthly rent, accommodation, prediction
// market, idle luggage risk, the three event pools, debt ceiling and bank
// hacking, forced hospitalization, time decrement, game-over evaluation.
// Refuses, with a terminal notice, when the game is already over.
func (e *Engine) NextTime() bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}

	e.regeneratePrices()
	e.processInterest()

	e.applyRentDrift()
	ticksPlayed := e.cat.Game.Time.TotalWeeks - gs.TimeLeft + 1
	if interval := e.cat.Game.Housing.RentIntervalWeeks; interval > 0 && ticksPlayed%interval == 0 {
		e.processRent()
	}
	if gs.IsGameOver {
		return true
	}

	e.settleAccommodation(city)
	if gs.IsGameOver {
		return true
	}

	e.advancePredictionMarket()
	e.rollIdleLuggageLoss()

	e.runCommercialEvents(city)
	e.runHealthEvents(city)
	if gs.IsGameOver {
		return true
	}
	e.runMoneyEvents(city)

	e.checkDebtLimit()
	if gs.IsGameOver {
		return true
	}
	e.checkBankHacking()

	hospitalized := e.checkForcedHospitalization(city)
	if !hospitalized {
		// Weekly trackers roll over with the clock; a hospital stay
		// consumes its own time and leaves them alone.
		gs.TimeLeft--
		gs.WorkVisits = make(map[string]int)
		gs.CityVisitsThisWeek = nil
	}
	gs.UpdatedAt = time.Now()

	if gs.TimeLeft <= 0 || gs.Health <= 0 {
		e.endGame()
		return true
	}
	if gs.TimeLeft == 1 {
		e.sink.Show("只剩最后一周了！赶紧把手里的货都卖掉，别砸在手里！")
	}
	return true
}

// settleAccommodation charges a week of hotel in an unleased city, or
// applies the homelessness penalty when even that is unaffordable.
func (e *Engine) settleAccommodation(city *catalog.City) {
	gs := e.state
	if gs.HasLease(gs.CurrentCity) {
		return
	}
	bill := city.Rent.HotelDailyPrice * 7
	if bill <= 0 {
		return
	}
	if gs.Cash >= bill {
		gs.Cash -= bill
		e.sink.Show(printer.Sprintf("你在旅馆住了一周，花去 %d 元。", bill))
		return
	}
	penalty := e.cat.Game.Housing.HomelessHealthPenalty
	gs.AddHealth(-penalty)
	e.sink.Show(printer.Sprintf("你付不起 %d 元的旅馆费，只能睡天桥底下，健康下降了 %d 点！", bill, penalty))
	if gs.Health <= 0 {
		e.endGame()
	}
}

// rollIdleLuggageLoss is the weekly risk of carrying stock with no place
// to lock it up.
func (e *Engine) rollIdleLuggageLoss() {
	gs := e.state
	if gs.TotalGoods == 0 || gs.HasLease(gs.CurrentCity) {
		return
	}
	if !e.rng.Chance(e.cat.Game.Travel.IdleLuggageLossChance) {
		return
	}
	e.wipeLuggage()
	e.sink.Show("你随身带的货物全被小偷顺走了！没个落脚的地方，货真是放不住。")
}

func (e *Engine) wipeLuggage() {
	gs := e.state
	for i := range gs.Goods {
		gs.Goods[i].Owned = 0
	}
	gs.TotalGoods = 0
}

// endGame freezes the session: score is cash + savings - debt, mapped to
// an evaluation tier. Idempotent.
func (e *Engine) endGame() {
	gs := e.state
	if gs.IsGameOver {
		return
	}
	total := e.cat.Game.Time.TotalWeeks
	score := gs.Cash + gs.BankSavings - gs.Debt
	gs.IsGameOver = true
	gs.GameResult = &state.GameResult{
		FinalScore: score,
		Evaluation: e.cat.Game.Evaluate(score),
		TimePlayed: total - gs.TimeLeft,
	}
	gs.UpdatedAt = time.Now()
	if gs.Health <= 0 {
		e.sink.Show("你的身体垮了，创业之路到此为止。")
	} else {
		e.sink.Show("时间到了，这一年的打拼结束了。")
	}
	e.sink.Show(printer.Sprintf("最终成绩：%d 元。%s", score, gs.GameResult.Evaluation))
}

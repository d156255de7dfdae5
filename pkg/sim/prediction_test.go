package sim

import (
	"testing"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

func predictionCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	game := testGameConfig()
	game.Prediction.MaxActive = 2
	game.Prediction.MinBet = 100
	game.Prediction.MaxBet = 10000
	game.Prediction.Templates = []catalog.PredictionTemplate{
		{Title: "下周香烟价格会涨吗？", Options: []string{"会", "不会"}, DurationWeeks: 2},
	}
	cat, err := catalog.New(game, testCities())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

func newPredictionEngine(t *testing.T, rng RNG) (*Engine, *state.GameState, *Recorder) {
	t.Helper()
	cat := predictionCatalog(t)
	gs, ok := state.NewGameState(cat, "beijing")
	if !ok {
		t.Fatal("failed to create game state")
	}
	rec := &Recorder{}
	return NewEngine(cat, gs, rng, rec, rec, testLogger()), gs, rec
}

func TestPredictionSpawnsUpToMaxActive(t *testing.T) {
	e, gs, _ := newPredictionEngine(t, &scriptedRNG{})
	e.advancePredictionMarket()
	if len(gs.Prediction.ActiveEvents) != 2 {
		t.Fatalf("active events = %d, want 2", len(gs.Prediction.ActiveEvents))
	}
	ev := gs.Prediction.ActiveEvents[0]
	if ev.SettlementWeek != 3 { // week 1 + 2 weeks duration
		t.Errorf("settlementWeek = %d, want 3", ev.SettlementWeek)
	}
	if len(ev.Options) != 2 {
		t.Errorf("options = %d, want 2", len(ev.Options))
	}
	if ev.Status != predictionStatusActive {
		t.Errorf("status = %q, want active", ev.Status)
	}
}

func TestPlaceBet(t *testing.T) {
	e, gs, _ := newPredictionEngine(t, &scriptedRNG{})
	e.advancePredictionMarket()
	ev := gs.Prediction.ActiveEvents[0]

	if !e.PlaceBet(ev.ID, ev.Options[0].ID, 500) {
		t.Fatal("bet failed")
	}
	if gs.Cash != 1500 {
		t.Errorf("cash = %d, want 1500", gs.Cash)
	}
	if len(gs.Prediction.Bets) != 1 {
		t.Fatalf("bets = %d, want 1", len(gs.Prediction.Bets))
	}
	bet := gs.Prediction.Bets[0]
	// Sole backer of the only backed option: odds clamp to the floor.
	if bet.OddsAtBet != predictionMinOdds {
		t.Errorf("oddsAtBet = %v, want %v", bet.OddsAtBet, predictionMinOdds)
	}
	// The empty option pays the ceiling.
	if got := gs.Prediction.ActiveEvents[0].Options[1].Odds; got != predictionMaxOdds {
		t.Errorf("unbacked odds = %v, want %v", got, predictionMaxOdds)
	}
}

func TestPlaceBetRejections(t *testing.T) {
	e, gs, _ := newPredictionEngine(t, &scriptedRNG{})
	e.advancePredictionMarket()
	ev := gs.Prediction.ActiveEvents[0]

	if e.PlaceBet("nope", ev.Options[0].ID, 500) {
		t.Error("unknown event should fail")
	}
	if e.PlaceBet(ev.ID, "nope", 500) {
		t.Error("unknown option should fail")
	}
	if e.PlaceBet(ev.ID, ev.Options[0].ID, 50) {
		t.Error("bet below minimum should fail")
	}
	if e.PlaceBet(ev.ID, ev.Options[0].ID, 20000) {
		t.Error("bet above maximum should fail")
	}
	gs.Cash = 100
	if e.PlaceBet(ev.ID, ev.Options[0].ID, 500) {
		t.Error("bet beyond cash should fail")
	}
	if len(gs.Prediction.Bets) != 0 {
		t.Error("rejected bets were recorded")
	}
}

func TestPredictionSettlement(t *testing.T) {
	// Intn draws: two template picks at spawn (0, 0), then winner index 0
	// at settlement.
	e, gs, _ := newPredictionEngine(t, &scriptedRNG{intn: []int{0, 0, 0}})
	e.advancePredictionMarket()
	ev := gs.Prediction.ActiveEvents[0]
	if !e.PlaceBet(ev.ID, ev.Options[0].ID, 1000) {
		t.Fatal("bet failed")
	}
	cashAfterBet := gs.Cash

	// Jump past the settlement week.
	gs.TimeLeft = e.cat.Game.Time.TotalWeeks - 10
	e.settlePredictionEvents(e.currentWeek())

	pm := &gs.Prediction
	if len(pm.SettledEvents) == 0 {
		t.Fatal("event not settled")
	}
	if pm.Statistics.TotalPredictions != 1 || pm.Statistics.SuccessfulPredictions != 1 {
		t.Errorf("stats = %+v, want one successful prediction", pm.Statistics)
	}
	wantPayout := int(1000 * predictionMinOdds)
	if gs.Cash != cashAfterBet+wantPayout {
		t.Errorf("cash = %d, want %d", gs.Cash, cashAfterBet+wantPayout)
	}
	if !pm.Bets[0].Settled || pm.Bets[0].Payout != wantPayout {
		t.Errorf("bet = %+v, want settled with payout %d", pm.Bets[0], wantPayout)
	}
}

func TestPredictionLosingBet(t *testing.T) {
	// Winner is option index 1; the bet is on option 0.
	e, gs, _ := newPredictionEngine(t, &scriptedRNG{intn: []int{0, 0, 1}})
	e.advancePredictionMarket()
	ev := gs.Prediction.ActiveEvents[0]
	if !e.PlaceBet(ev.ID, ev.Options[0].ID, 1000) {
		t.Fatal("bet failed")
	}
	cashAfterBet := gs.Cash

	gs.TimeLeft = e.cat.Game.Time.TotalWeeks - 10
	e.settlePredictionEvents(e.currentWeek())

	pm := &gs.Prediction
	if gs.Cash != cashAfterBet {
		t.Errorf("cash = %d, losing bet must pay nothing", gs.Cash)
	}
	if pm.Statistics.FailedPredictions != 1 {
		t.Errorf("stats = %+v, want one failed prediction", pm.Statistics)
	}
	if pm.Statistics.NetProfit != -1000 {
		t.Errorf("netProfit = %d, want -1000", pm.Statistics.NetProfit)
	}
}

package sim

import (
	"testing"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
)

func TestSwitchCityByTrain(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})
	if !e.SwitchCity("shanghai", "train") {
		t.Fatal("switch failed")
	}
	if gs.CurrentCity != "上海" {
		t.Errorf("city = %q, want 上海", gs.CurrentCity)
	}
	if gs.Cash != 2000-300 {
		t.Errorf("cash = %d, want 1700", gs.Cash)
	}
	if gs.CurrentLocation != 0 {
		t.Errorf("location = %d, want first location", gs.CurrentLocation)
	}
	if !gs.HasVisitedThisWeek("上海") {
		t.Error("visit not recorded")
	}
}

func TestSwitchCityRejections(t *testing.T) {
	t.Run("same city", func(t *testing.T) {
		e, gs, _ := newTestEngine(t, &scriptedRNG{})
		if e.SwitchCity("beijing", "train") {
			t.Error("same-city switch should fail")
		}
		if gs.Cash != 2000 {
			t.Error("rejected switch mutated cash")
		}
	})
	t.Run("unknown city", func(t *testing.T) {
		e, _, _ := newTestEngine(t, &scriptedRNG{})
		if e.SwitchCity("atlantis", "train") {
			t.Error("unknown city should fail")
		}
	})
	t.Run("unknown mode", func(t *testing.T) {
		e, _, _ := newTestEngine(t, &scriptedRNG{})
		if e.SwitchCity("shanghai", "teleport") {
			t.Error("unknown mode should fail")
		}
	})
	t.Run("unaffordable fare", func(t *testing.T) {
		e, gs, _ := newTestEngine(t, &scriptedRNG{})
		gs.Cash = 100
		if e.SwitchCity("shanghai", "train") {
			t.Error("unaffordable fare should pass")
		}
		if gs.CurrentCity != "北京" || gs.Cash != 100 {
			t.Error("rejected switch mutated state")
		}
	})
}

func TestSwitchCityWeeklyCap(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})
	gs.Cash = 100000
	// Two new cities already visited this week.
	gs.CityVisitsThisWeek = []string{"广州", "深圳"}

	if e.SwitchCity("shanghai", "train") {
		t.Error("third new city should exceed the weekly cap")
	}

	// Already-visited cities stay accessible.
	gs.CityVisitsThisWeek = []string{"上海", "广州"}
	if !e.SwitchCity("shanghai", "train") {
		t.Error("revisiting a counted city should pass")
	}
}

func TestSwitchCityLuggageLoss(t *testing.T) {
	e, gs, rec := newTestEngine(t, &scriptedRNG{chance: []bool{true}})
	g := gs.FindGoods(0)
	g.Owned = 10
	gs.TotalGoods = 10

	if !e.SwitchCity("shanghai", "plane") {
		t.Fatal("switch failed")
	}
	if gs.TotalGoods != 0 || gs.FindGoods(0).Owned != 0 {
		t.Error("luggage loss should wipe all owned goods")
	}
	if len(rec.Messages) < 2 {
		t.Error("expected a luggage-loss message")
	}
}

func TestSwitchCityRepricesMarket(t *testing.T) {
	e, gs, _ := newTestEngine(t, NewSeededRNG(3, 4))
	gs.Cash = 10000
	if !e.SwitchCity("shanghai", "train") {
		t.Fatal("switch failed")
	}
	priced := 0
	for i := range gs.Goods {
		g := gs.Goods[i]
		if g.Price <= 0 {
			continue
		}
		if cityID, _ := catalog.ParseGoodsID(g.ID); cityID != 1 {
			t.Errorf("goods %d from the origin city priced at %d after arriving in 上海", g.ID, g.Price)
		}
		priced++
	}
	if priced == 0 {
		t.Error("arrival should regenerate market prices")
	}
}

func TestTakeSubway(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})
	if !e.TakeSubway(1) {
		t.Fatal("subway failed")
	}
	if gs.CurrentLocation != 1 {
		t.Errorf("location = %d, want 1", gs.CurrentLocation)
	}
	if gs.Cash != 1997 {
		t.Errorf("cash = %d, want 1997", gs.Cash)
	}
}

func TestTakeSubwayRejections(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})
	if e.TakeSubway(0) {
		t.Error("riding to the current location should fail")
	}
	if e.TakeSubway(42) {
		t.Error("unknown location should fail")
	}
	gs.Cash = 0
	if e.TakeSubway(1) {
		t.Error("unaffordable fare should fail")
	}
}

package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ventureworks/hustle-engine/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	var game catalog.GameConfig
	game.Initial.Cash = 2000
	game.Initial.Debt = 5500
	game.Initial.Health = 100
	game.Initial.Stamina = 100
	game.Initial.Fame = 100
	game.Initial.Capacity = 100
	game.Time.TotalWeeks = 52
	game.Score = []catalog.ScoreTier{{Min: -1 << 30, Message: "done"}}

	beijing := &catalog.City{
		ID:   0,
		Key:  "beijing",
		Name: "北京",
		Locations: []catalog.Location{
			{ID: 0, Name: "北京站", HasMarket: true, IsTrainStation: true},
			{ID: 1, Name: "西直门", HasMarket: true},
		},
		Goods: []catalog.GoodsDefinition{
			{ID: catalog.GoodsID(0, 0), Name: "进口香烟", BasePrice: 100, PriceRange: 350, Unit: "条"},
			{ID: catalog.GoodsID(0, 1), Name: "假白酒", BasePrice: 1000, PriceRange: 3500, Unit: "瓶", FamePenalty: 10},
		},
	}
	shanghai := &catalog.City{
		ID:   1,
		Key:  "shanghai",
		Name: "上海",
		Locations: []catalog.Location{
			{ID: 0, Name: "上海站", HasMarket: true, IsTrainStation: true},
		},
		Goods: []catalog.GoodsDefinition{
			{ID: catalog.GoodsID(1, 0), Name: "外烟", BasePrice: 120, PriceRange: 380, Unit: "条"},
		},
	}

	cat, err := catalog.New(game, []*catalog.City{beijing, shanghai})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

func TestNewGameState(t *testing.T) {
	cat := testCatalog(t)

	gs, ok := NewGameState(cat, "beijing")
	if !ok {
		t.Fatal("NewGameState failed for known city")
	}

	if gs.Cash != 2000 || gs.Debt != 5500 || gs.Health != 100 || gs.Fame != 100 {
		t.Errorf("Initial vitals wrong: cash=%d debt=%d health=%d fame=%d", gs.Cash, gs.Debt, gs.Health, gs.Fame)
	}
	if gs.Stamina != 100 || gs.MaxStamina != 100 {
		t.Errorf("Stamina = %d/%d, want 100/100", gs.Stamina, gs.MaxStamina)
	}
	if gs.TimeLeft != 52 {
		t.Errorf("TimeLeft = %d, want 52", gs.TimeLeft)
	}
	if gs.CurrentCity != "北京" || gs.CurrentLocation != 0 {
		t.Errorf("Start position = %q loc %d", gs.CurrentCity, gs.CurrentLocation)
	}
	if gs.BaseCapacity != 100 || gs.MaxCapacity != 100 {
		t.Errorf("Capacity = %d/%d, want 100/100", gs.BaseCapacity, gs.MaxCapacity)
	}

	// The goods list covers the whole catalog, not just the starting city.
	if len(gs.Goods) != 3 {
		t.Fatalf("Expected 3 goods records, got %d", len(gs.Goods))
	}
	for _, g := range gs.Goods {
		if g.Price != 0 || g.Owned != 0 {
			t.Errorf("Goods %d should start unpriced and unowned: %+v", g.ID, g)
		}
	}
	liquor := gs.FindGoods(catalog.GoodsID(0, 1))
	if liquor == nil || liquor.FamePenalty != 10 {
		t.Errorf("Fame penalty not carried onto runtime record: %+v", liquor)
	}

	if gs.ID == uuid.Nil {
		t.Error("Game id not assigned")
	}
}

func TestNewGameStateUnknownCity(t *testing.T) {
	if _, ok := NewGameState(testCatalog(t), "atlantis"); ok {
		t.Error("NewGameState should fail for unknown city")
	}
}

func TestEnsureGoodsIdempotent(t *testing.T) {
	cat := testCatalog(t)
	gs, _ := NewGameState(cat, "beijing")

	def, _, _ := cat.GoodsByID(catalog.GoodsID(1, 0))
	before := len(gs.Goods)

	g := gs.EnsureGoods(def)
	if g == nil || len(gs.Goods) != before {
		t.Fatalf("EnsureGoods duplicated an existing record: %d -> %d", before, len(gs.Goods))
	}

	g.Owned = 7
	again := gs.EnsureGoods(def)
	if again.Owned != 7 {
		t.Error("EnsureGoods replaced an existing record")
	}
}

func TestEnsureGoodsMaterializes(t *testing.T) {
	cat := testCatalog(t)
	gs, _ := NewGameState(cat, "beijing")

	// Simulate an older session that predates a catalog addition.
	gs.Goods = gs.Goods[:1]
	def, _, _ := cat.GoodsByID(catalog.GoodsID(1, 0))

	g := gs.EnsureGoods(def)
	if g == nil || g.Name != "外烟" || g.Owned != 0 {
		t.Fatalf("EnsureGoods did not materialize: %+v", g)
	}
	if len(gs.Goods) != 2 {
		t.Errorf("Expected 2 goods records, got %d", len(gs.Goods))
	}
}

func TestEffectiveCapacity(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")
	gs.MaxCapacity = 160

	// Without a local lease only the suitcase counts.
	if got := gs.EffectiveCapacity(); got != 100 {
		t.Errorf("EffectiveCapacity unleased = %d, want 100", got)
	}

	gs.RentedHouses["北京"] = "flat"
	if got := gs.EffectiveCapacity(); got != 160 {
		t.Errorf("EffectiveCapacity leased = %d, want 160", got)
	}

	// A lease elsewhere does not help here.
	delete(gs.RentedHouses, "北京")
	gs.RentedHouses["上海"] = "flat"
	if got := gs.EffectiveCapacity(); got != 100 {
		t.Errorf("EffectiveCapacity with remote lease = %d, want 100", got)
	}
}

func TestCapacityRemaining(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")
	gs.TotalGoods = 90
	if got := gs.CapacityRemaining(); got != 10 {
		t.Errorf("CapacityRemaining = %d, want 10", got)
	}
	gs.TotalGoods = 120
	if got := gs.CapacityRemaining(); got != 0 {
		t.Errorf("CapacityRemaining over limit = %d, want 0", got)
	}
}

func TestRecountGoods(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")
	gs.Goods[0].Owned = 5
	gs.Goods[1].Owned = 12
	if got := gs.RecountGoods(); got != 17 {
		t.Errorf("RecountGoods = %d, want 17", got)
	}
}

func TestVitalClamps(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")

	gs.AddHealth(-150)
	if gs.Health != 0 {
		t.Errorf("Health = %d, want 0", gs.Health)
	}
	gs.AddHealth(999)
	if gs.Health != 100 {
		t.Errorf("Health = %d, want 100", gs.Health)
	}

	gs.AddStamina(-150)
	if gs.Stamina != 0 {
		t.Errorf("Stamina = %d, want 0", gs.Stamina)
	}
	gs.AddStamina(999)
	if gs.Stamina != gs.MaxStamina {
		t.Errorf("Stamina = %d, want %d", gs.Stamina, gs.MaxStamina)
	}
}

func TestRentMultiplierDefault(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")
	if got := gs.RentMultiplier("北京"); got != 1.0 {
		t.Errorf("RentMultiplier default = %v, want 1.0", got)
	}
	gs.RentMultipliers["北京"] = 1.25
	if got := gs.RentMultiplier("北京"); got != 1.25 {
		t.Errorf("RentMultiplier = %v, want 1.25", got)
	}
}

func TestCurrentWeek(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")

	tests := []struct {
		timeLeft int
		want     int
	}{
		{52, 1},
		{51, 2},
		{1, 52},
		{0, 52},  // clamped after the last tick
		{99, 1},  // clamped below week 1
	}
	for _, tc := range tests {
		gs.TimeLeft = tc.timeLeft
		if got := gs.CurrentWeek(52); got != tc.want {
			t.Errorf("CurrentWeek(timeLeft=%d) = %d, want %d", tc.timeLeft, got, tc.want)
		}
	}
}

func TestHasVisitedThisWeek(t *testing.T) {
	gs, _ := NewGameState(testCatalog(t), "beijing")
	if gs.HasVisitedThisWeek("上海") {
		t.Error("Fresh session should have no visits")
	}
	gs.CityVisitsThisWeek = append(gs.CityVisitsThisWeek, "上海")
	if !gs.HasVisitedThisWeek("上海") {
		t.Error("Visit not recorded")
	}
}

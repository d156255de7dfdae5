package sim

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

// scriptedRNG replays queued draws. When a queue runs dry it falls back
// to the most boring value: Intn 0, Range min, Chance false.
type scriptedRNG struct {
	intn   []int
	ranged []int
	chance []bool
}

func (s *scriptedRNG) Intn(n int) int {
	if len(s.intn) == 0 {
		return 0
	}
	v := s.intn[0]
	s.intn = s.intn[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptedRNG) Range(min, max int) int {
	if len(s.ranged) == 0 {
		return min
	}
	v := s.ranged[0]
	s.ranged = s.ranged[1:]
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func (s *scriptedRNG) Chance(pct int) bool {
	if len(s.chance) == 0 {
		return false
	}
	v := s.chance[0]
	s.chance = s.chance[1:]
	return v
}

func testGameConfig() catalog.GameConfig {
	var game catalog.GameConfig
	game.Initial.Cash = 2000
	game.Initial.Debt = 5000
	game.Initial.Health = 100
	game.Initial.Stamina = 100
	game.Initial.Fame = 100
	game.Initial.Capacity = 20
	game.Time.TotalWeeks = 52
	game.Time.Unit = "周"
	game.Financial.DebtInterestRate = 0.10
	game.Financial.BankInterestRate = 0.01
	game.Financial.MaxDebtLimit = 100000
	game.Financial.DebtHealthPenalty = 30
	game.PriceGeneration.DefaultLeaveOut = 3
	game.PriceGeneration.FinalWeeksLeaveOut = 0
	game.PriceGeneration.TransportationHubLeaveOut = 0
	game.Random.CommercialRange = 950
	game.Random.HealthRange = 1000
	game.Random.MoneyRange = 1000
	game.Travel.MaxNewCitiesPerWeek = 2
	game.Travel.SubwayLossChance = 5
	game.Travel.TrainLossChance = 10
	game.Travel.PlaneLossChance = 12
	game.Travel.IdleLuggageLossChance = 8
	game.Travel.TunnelFareMultiplier = 3
	game.Housing.RentIntervalWeeks = 4
	game.Housing.RentDriftChance = 5
	game.Housing.RentDriftUp = [2]int{10, 25}
	game.Housing.RentDriftDown = [2]int{5, 15}
	game.Housing.RentMultiplierMin = 0.5
	game.Housing.RentMultiplierMax = 1.5
	game.Housing.HomelessHealthPenalty = 15
	game.Score = []catalog.ScoreTier{
		{Min: 100000, Message: "商业奇才"},
		{Min: 0, Message: "不赔不赚"},
		{Min: -1000000, Message: "倾家荡产"},
	}
	return game
}

func testCities() []*catalog.City {
	beijing := &catalog.City{
		ID:   0,
		Key:  "beijing",
		Name: "北京",
		Locations: []catalog.Location{
			{ID: 0, Name: "车公庄", HasMarket: true},
			{ID: 1, Name: "北京站", IsTrainStation: true},
			{ID: 2, Name: "首都机场", IsAirport: true},
		},
		Goods: []catalog.GoodsDefinition{
			{ID: 0, Name: "进口香烟", BasePrice: 100, PriceRange: 350, Unit: "条"},
			{ID: 1, Name: "假白酒", BasePrice: 1000, PriceRange: 3500, Unit: "瓶", FamePenalty: 10},
			{ID: 2, Name: "走私汽车", BasePrice: 15000, PriceRange: 15000, Unit: "辆"},
			{ID: 3, Name: "盗版VCD", BasePrice: 5, PriceRange: 60, Unit: "张"},
		},
		Buildings: catalog.BuildingConfig{
			Hospital: catalog.HospitalConfig{CostPerPoint: 3500, TriggerHealth: 20},
			WorkTypes: []catalog.WorkType{
				{ID: "tutor", Name: "家教", Income: [2]int{100, 300}, StaminaCost: [2]int{10, 20}, DailyLimit: 2},
				{ID: "mover", Name: "搬运工", Income: [2]int{200, 500}, StaminaCost: [2]int{30, 50}, Deposit: 100},
			},
			HouseTypes: []catalog.HouseType{
				{ID: "flat", Name: "两居室", MonthlyRent: 5000, CapacityIncrease: 40},
				{ID: "villa", Name: "小别墅", MonthlyRent: 20000, CapacityIncrease: 100, DiscountThreshold: 90},
			},
			Restaurant: catalog.RestaurantConfig{
				Cost:            [2]int{20, 50},
				StaminaRecovery: [2]int{10, 30},
				PoisonChance:    5,
				PoisonDamage:    [2]int{5, 15},
			},
		},
		Fares: catalog.FareTable{
			Train:  map[string]int{"shanghai": 300},
			Plane:  map[string]int{"shanghai": 1200},
			Subway: 3,
		},
		Rent: catalog.RentConfig{HotelDailyPrice: 100},
	}
	shanghai := &catalog.City{
		ID:   1,
		Key:  "shanghai",
		Name: "上海",
		Locations: []catalog.Location{
			{ID: 0, Name: "浦东", HasMarket: true},
			{ID: 1, Name: "上海站", IsTrainStation: true},
		},
		Goods: []catalog.GoodsDefinition{
			{ID: catalog.GoodsID(1, 0), Name: "山寨手机", BasePrice: 500, PriceRange: 1000, Unit: "部"},
			{ID: catalog.GoodsID(1, 1), Name: "假冒化妆品", BasePrice: 200, PriceRange: 600, Unit: "盒", FamePenalty: 3},
			{ID: catalog.GoodsID(1, 2), Name: "走私手表", BasePrice: 1200, PriceRange: 2400, Unit: "块"},
			{ID: catalog.GoodsID(1, 3), Name: "进口洋酒", BasePrice: 800, PriceRange: 1600, Unit: "瓶"},
		},
		Buildings: catalog.BuildingConfig{
			Hospital: catalog.HospitalConfig{CostPerPoint: 3000, TriggerHealth: 20},
			HouseTypes: []catalog.HouseType{
				{ID: "loft", Name: "阁楼", MonthlyRent: 8000, CapacityIncrease: 60},
			},
			Restaurant: catalog.RestaurantConfig{
				Cost:            [2]int{30, 80},
				StaminaRecovery: [2]int{10, 30},
				PoisonChance:    5,
				PoisonDamage:    [2]int{5, 15},
			},
		},
		Fares: catalog.FareTable{
			Train:  map[string]int{"beijing": 300},
			Plane:  map[string]int{"beijing": 1200},
			Subway: 4,
		},
		Rent: catalog.RentConfig{HotelDailyPrice: 120},
	}
	return []*catalog.City{beijing, shanghai}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(testGameConfig(), testCities())
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine wires an engine over a fresh Beijing session with the
// given RNG and a recorder sink.
func newTestEngine(t *testing.T, rng RNG) (*Engine, *state.GameState, *Recorder) {
	t.Helper()
	cat := testCatalog(t)
	gs, ok := state.NewGameState(cat, "beijing")
	if !ok {
		t.Fatal("failed to create game state")
	}
	rec := &Recorder{}
	return NewEngine(cat, gs, rng, rec, rec, testLogger()), gs, rec
}

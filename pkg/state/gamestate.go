package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/ventureworks/hustle-engine/pkg/catalog"
)

// Goods is the runtime record for one tradeable good. Price and Owned are
// mutable; the definition fields mirror the catalog so the record is
// self-contained when serialized.
type Goods struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	BasePrice   int    `json:"base_price"`
	PriceRange  int    `json:"price_range"`
	Unit        string `json:"unit,omitempty"`
	FamePenalty int    `json:"fame_penalty,omitempty"`
	Price       int    `json:"price"`
	Owned       int    `json:"owned"`
}

// GameResult is the frozen outcome of a finished game.
type GameResult struct {
	FinalScore int    `json:"final_score"`
	Evaluation string `json:"evaluation"`
	TimePlayed int    `json:"time_played"`
}

// GameState is the single mutable aggregate for one game session. The
// engine and all managers share it by reference; exactly one command
// mutates it at a time.
type GameState struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cash        int `json:"cash"`
	Debt        int `json:"debt"`
	BankSavings int `json:"bank_savings"`
	Health      int `json:"health"`
	Stamina     int `json:"stamina"`
	MaxStamina  int `json:"max_stamina"`
	Fame        int `json:"fame"`
	TimeLeft    int `json:"time_left"`

	CurrentCity     string `json:"current_city"`
	CurrentLocation int    `json:"current_location"`

	Goods        []Goods `json:"goods"`
	TotalGoods   int     `json:"total_goods"`
	BaseCapacity int     `json:"base_capacity"`
	MaxCapacity  int     `json:"max_capacity"`

	// Housing: one lease per city at most. RentMultipliers drift with
	// rent-change events, bounded by the housing config.
	RentedCities    []string           `json:"rented_cities,omitempty"`
	RentedHouses    map[string]string  `json:"rented_houses,omitempty"`
	RentMultipliers map[string]float64 `json:"rent_multipliers,omitempty"`

	// WorkVisits counts jobs done this tick per work type; reset weekly.
	WorkVisits map[string]int `json:"work_visits,omitempty"`

	CityVisitsThisWeek []string `json:"city_visits_this_week,omitempty"`

	SoundEnabled bool        `json:"sound_enabled"`
	IsGameOver   bool        `json:"is_game_over"`
	GameResult   *GameResult `json:"game_result,omitempty"`

	Prediction PredictionMarket `json:"prediction_market"`
}

// NewGameState builds a fresh session starting in the given city. The
// goods list covers every good in the catalog so identity survives travel;
// everything starts unpriced and unowned.
func NewGameState(cat *catalog.Catalog, cityKey string) (*GameState, bool) {
	city, ok := cat.City(cityKey)
	if !ok {
		return nil, false
	}

	defs := cat.AllGoods()
	goods := make([]Goods, 0, len(defs))
	for _, def := range defs {
		goods = append(goods, Goods{
			ID:          def.ID,
			Name:        def.Name,
			BasePrice:   def.BasePrice,
			PriceRange:  def.PriceRange,
			Unit:        def.Unit,
			FamePenalty: def.FamePenalty,
		})
	}

	cfg := cat.Game
	return &GameState{
		ID:              uuid.New(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		Cash:            cfg.Initial.Cash,
		Debt:            cfg.Initial.Debt,
		Health:          cfg.Initial.Health,
		Stamina:         cfg.Initial.Stamina,
		MaxStamina:      cfg.Initial.Stamina,
		Fame:            cfg.Initial.Fame,
		TimeLeft:        cfg.Time.TotalWeeks,
		CurrentCity:     city.Name,
		CurrentLocation: city.FirstLocation().ID,
		Goods:           goods,
		BaseCapacity:    cfg.Initial.Capacity,
		MaxCapacity:     cfg.Initial.Capacity,
		RentedHouses:    make(map[string]string),
		RentMultipliers: make(map[string]float64),
		WorkVisits:      make(map[string]int),
		SoundEnabled:    true,
		Prediction:      NewPredictionMarket(),
	}, true
}

// FindGoods returns a pointer to the runtime record for a goods id, or nil.
// The pointer is into the Goods slice: do not hold it across EnsureGoods.
func (gs *GameState) FindGoods(id int) *Goods {
	for i := range gs.Goods {
		if gs.Goods[i].ID == id {
			return &gs.Goods[i]
		}
	}
	return nil
}

// EnsureGoods materializes a zero-state record for a catalog definition if
// the session has never seen the good. Idempotent; never touches an
// existing record.
func (gs *GameState) EnsureGoods(def catalog.GoodsDefinition) *Goods {
	if g := gs.FindGoods(def.ID); g != nil {
		return g
	}
	gs.Goods = append(gs.Goods, Goods{
		ID:          def.ID,
		Name:        def.Name,
		BasePrice:   def.BasePrice,
		PriceRange:  def.PriceRange,
		Unit:        def.Unit,
		FamePenalty: def.FamePenalty,
	})
	return &gs.Goods[len(gs.Goods)-1]
}

// HasLease reports whether the player holds a lease in the named city.
func (gs *GameState) HasLease(city string) bool {
	_, ok := gs.RentedHouses[city]
	return ok
}

// RentMultiplier returns the drifted rent multiplier for a city, 1.0 by default.
func (gs *GameState) RentMultiplier(city string) float64 {
	if m, ok := gs.RentMultipliers[city]; ok {
		return m
	}
	return 1.0
}

// EffectiveCapacity is the inventory ceiling at the player's current
// position: full MaxCapacity only where a lease provides storage,
// otherwise just the suitcase.
func (gs *GameState) EffectiveCapacity() int {
	if gs.HasLease(gs.CurrentCity) {
		return gs.MaxCapacity
	}
	return gs.BaseCapacity
}

// CapacityRemaining is the free space under the effective capacity.
func (gs *GameState) CapacityRemaining() int {
	rem := gs.EffectiveCapacity() - gs.TotalGoods
	if rem < 0 {
		return 0
	}
	return rem
}

// RecountGoods recomputes the owned total from the goods list. Mutators
// keep TotalGoods in sync; this exists for integrity checks.
func (gs *GameState) RecountGoods() int {
	total := 0
	for i := range gs.Goods {
		total += gs.Goods[i].Owned
	}
	return total
}

// AddHealth moves health by delta, clamped to [0, 100].
func (gs *GameState) AddHealth(delta int) {
	gs.Health += delta
	if gs.Health < 0 {
		gs.Health = 0
	}
	if gs.Health > 100 {
		gs.Health = 100
	}
}

// AddStamina moves stamina by delta, clamped to [0, MaxStamina].
func (gs *GameState) AddStamina(delta int) {
	gs.Stamina += delta
	if gs.Stamina < 0 {
		gs.Stamina = 0
	}
	if gs.Stamina > gs.MaxStamina {
		gs.Stamina = gs.MaxStamina
	}
}

// CurrentWeek converts remaining time to a 1-based week number.
func (gs *GameState) CurrentWeek(totalWeeks int) int {
	week := totalWeeks - gs.TimeLeft + 1
	if week < 1 {
		week = 1
	}
	if week > totalWeeks {
		week = totalWeeks
	}
	return week
}

// HasVisitedThisWeek reports whether the city already counts against the
// weekly new-city cap.
func (gs *GameState) HasVisitedThisWeek(city string) bool {
	for _, name := range gs.CityVisitsThisWeek {
		if name == city {
			return true
		}
	}
	return false
}

package catalog

import (
	"fmt"
	"sort"
)

// ScoreTier maps a final score to an evaluation line. Tiers are matched in
// descending Min order; the last tier is the floor.
type ScoreTier struct {
	Min     int    `yaml:"min" json:"min"`
	Message string `yaml:"message" json:"message"`
}

// PredictionTemplate seeds the prediction-market side game.
type PredictionTemplate struct {
	Title         string   `yaml:"title" json:"title"`
	Description   string   `yaml:"description" json:"description,omitempty"`
	Options       []string `yaml:"options" json:"options"`
	DurationWeeks int      `yaml:"duration_weeks" json:"duration_weeks"`
}

// GameConfig is the global tuning table, loaded from game.yaml. All fields
// are required and fully populated at load time; components never fall back
// to scattered defaults.
type GameConfig struct {
	Initial struct {
		Cash     int `yaml:"cash"`
		Debt     int `yaml:"debt"`
		Health   int `yaml:"health"`
		Stamina  int `yaml:"stamina"`
		Fame     int `yaml:"fame"`
		Capacity int `yaml:"capacity"`
	} `yaml:"initial"`

	Time struct {
		TotalWeeks int    `yaml:"total_weeks"`
		Unit       string `yaml:"unit"`
	} `yaml:"time"`

	Financial struct {
		DebtInterestRate  float64 `yaml:"debt_interest_rate"`
		BankInterestRate  float64 `yaml:"bank_interest_rate"`
		MaxDebtLimit      int     `yaml:"max_debt_limit"`
		DebtHealthPenalty int     `yaml:"debt_health_penalty"`
	} `yaml:"financial"`

	PriceGeneration struct {
		DefaultLeaveOut           int `yaml:"default_leave_out"`
		FinalWeeksLeaveOut        int `yaml:"final_weeks_leave_out"`
		TransportationHubLeaveOut int `yaml:"transportation_hub_leave_out"`
	} `yaml:"price_generation"`

	Random struct {
		CommercialRange int `yaml:"commercial_range"`
		HealthRange     int `yaml:"health_range"`
		MoneyRange      int `yaml:"money_range"`
	} `yaml:"random"`

	Travel struct {
		MaxNewCitiesPerWeek   int `yaml:"max_new_cities_per_week"`
		SubwayLossChance      int `yaml:"subway_loss_chance"`
		TrainLossChance       int `yaml:"train_loss_chance"`
		PlaneLossChance       int `yaml:"plane_loss_chance"`
		IdleLuggageLossChance int `yaml:"idle_luggage_loss_chance"`
		TunnelFareMultiplier  int `yaml:"tunnel_fare_multiplier"`
	} `yaml:"travel"`

	Housing struct {
		RentIntervalWeeks     int     `yaml:"rent_interval_weeks"`
		RentDriftChance       int     `yaml:"rent_drift_chance"`
		RentDriftUp           [2]int  `yaml:"rent_drift_up"`
		RentDriftDown         [2]int  `yaml:"rent_drift_down"`
		RentMultiplierMin     float64 `yaml:"rent_multiplier_min"`
		RentMultiplierMax     float64 `yaml:"rent_multiplier_max"`
		HomelessHealthPenalty int     `yaml:"homeless_health_penalty"`
	} `yaml:"housing"`

	Prediction struct {
		MaxActive int                  `yaml:"max_active"`
		MinBet    int                  `yaml:"min_bet"`
		MaxBet    int                  `yaml:"max_bet"`
		Templates []PredictionTemplate `yaml:"templates"`
	} `yaml:"prediction"`

	Score []ScoreTier `yaml:"score"`
}

// Evaluate maps a final score to its evaluation tier message.
func (c *GameConfig) Evaluate(score int) string {
	for _, tier := range c.Score {
		if score >= tier.Min {
			return tier.Message
		}
	}
	if len(c.Score) == 0 {
		return ""
	}
	return c.Score[len(c.Score)-1].Message
}

// Catalog is the immutable content catalog: one global config plus every
// city's static tables. Loaded once at startup and passed by reference to
// every component that needs city, goods, or event data.
type Catalog struct {
	Game GameConfig

	cities []*City
	byKey  map[string]*City
	byName map[string]*City
	goods  map[int]goodsRef
}

type goodsRef struct {
	def  GoodsDefinition
	city *City
}

// New assembles and validates a catalog from already-decoded parts. Load is
// the usual entry point; New exists so tests can build catalogs in code.
func New(game GameConfig, cities []*City) (*Catalog, error) {
	cat := &Catalog{
		Game:   game,
		byKey:  make(map[string]*City),
		byName: make(map[string]*City),
		goods:  make(map[int]goodsRef),
	}
	for _, city := range cities {
		if _, dup := cat.byKey[city.Key]; dup {
			return nil, fmt.Errorf("duplicate city key %q", city.Key)
		}
		cat.cities = append(cat.cities, city)
		cat.byKey[city.Key] = city
		cat.byName[city.Name] = city
		for _, g := range city.Goods {
			if prev, dup := cat.goods[g.ID]; dup {
				return nil, fmt.Errorf("goods id %d defined by both %s and %s", g.ID, prev.city.Key, city.Key)
			}
			cat.goods[g.ID] = goodsRef{def: g, city: city}
		}
	}
	sort.Slice(cat.cities, func(i, j int) bool { return cat.cities[i].ID < cat.cities[j].ID })
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Cities returns every city ordered by id.
func (c *Catalog) Cities() []*City {
	return c.cities
}

// City returns a city by its config key (e.g. "shanghai").
func (c *Catalog) City(key string) (*City, bool) {
	city, ok := c.byKey[key]
	return city, ok
}

// CityByName returns a city by its display name (e.g. "上海").
func (c *Catalog) CityByName(name string) (*City, bool) {
	city, ok := c.byName[name]
	return city, ok
}

// GoodsByID resolves a global goods id to its definition and home city.
func (c *Catalog) GoodsByID(id int) (GoodsDefinition, *City, bool) {
	ref, ok := c.goods[id]
	if !ok {
		return GoodsDefinition{}, nil, false
	}
	return ref.def, ref.city, true
}

// AllGoods returns every goods definition across all cities, ordered by id.
func (c *Catalog) AllGoods() []GoodsDefinition {
	out := make([]GoodsDefinition, 0, len(c.goods))
	for _, ref := range c.goods {
		out = append(out, ref.def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// validate enforces data integrity across the catalog. A violation here is
// a content bug, not a runtime condition: the loader refuses the catalog.
func (c *Catalog) validate() error {
	if len(c.cities) == 0 {
		return fmt.Errorf("catalog has no cities")
	}
	if c.Game.Time.TotalWeeks <= 0 {
		return fmt.Errorf("time.total_weeks must be positive")
	}
	if len(c.Game.Score) == 0 {
		return fmt.Errorf("score table is empty")
	}
	for _, city := range c.cities {
		if len(city.Locations) == 0 {
			return fmt.Errorf("city %s has no locations", city.Key)
		}
		for _, g := range city.Goods {
			if gotCity, _ := ParseGoodsID(g.ID); gotCity != city.ID {
				return fmt.Errorf("city %s: goods %q id %d does not encode city id %d", city.Key, g.Name, g.ID, city.ID)
			}
		}
		for i, ev := range city.Events.Commercial {
			if ev.Freq <= 0 {
				return fmt.Errorf("city %s: commercial event %d has freq %d", city.Key, i, ev.Freq)
			}
			if ev.PriceMultiplier > 0 && ev.PriceDivider > 0 {
				return fmt.Errorf("city %s: commercial event %d sets both multiplier and divider", city.Key, i)
			}
			if _, _, ok := c.GoodsByID(ev.GoodsID); !ok {
				return fmt.Errorf("city %s: commercial event %d references unknown goods id %d", city.Key, i, ev.GoodsID)
			}
		}
		for i, ev := range city.Events.Health {
			if ev.Freq <= 0 {
				return fmt.Errorf("city %s: health event %d has freq %d", city.Key, i, ev.Freq)
			}
		}
		for i, ev := range city.Events.Money {
			if ev.Freq <= 0 {
				return fmt.Errorf("city %s: money event %d has freq %d", city.Key, i, ev.Freq)
			}
			if ev.CashBased && ev.TargetsSavings {
				return fmt.Errorf("city %s: money event %d is both cash_based and targets_savings", city.Key, i)
			}
		}
		for _, loc := range city.Locations {
			if loc.Tunnel != nil {
				if _, ok := c.byKey[loc.Tunnel.City]; !ok {
					return fmt.Errorf("city %s: location %q tunnels to unknown city %q", city.Key, loc.Name, loc.Tunnel.City)
				}
			}
		}
		for dest := range city.Fares.Train {
			if _, ok := c.byKey[dest]; !ok {
				return fmt.Errorf("city %s: train fare to unknown city %q", city.Key, dest)
			}
		}
		for dest := range city.Fares.Plane {
			if _, ok := c.byKey[dest]; !ok {
				return fmt.Errorf("city %s: plane fare to unknown city %q", city.Key, dest)
			}
		}
	}
	return nil
}

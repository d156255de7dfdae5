package catalog

// GoodsIDBase separates the city component of a global goods id from the
// local index: id = cityID*GoodsIDBase + localIndex. A good keeps its
// identity when the player carries it into another city.
const GoodsIDBase = 100000

// GoodsID builds a global goods id from a city id and a local index.
func GoodsID(cityID, localIndex int) int {
	return cityID*GoodsIDBase + localIndex
}

// ParseGoodsID splits a global goods id into city id and local index.
func ParseGoodsID(id int) (cityID, localIndex int) {
	return id / GoodsIDBase, id % GoodsIDBase
}

// GoodsDefinition is a catalog entry for a tradeable good. ID is global;
// runtime price and inventory live in state, not here.
type GoodsDefinition struct {
	ID         int    `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	BasePrice  int    `yaml:"base_price" json:"base_price"`
	PriceRange int    `yaml:"price_range" json:"price_range"`
	Unit       string `yaml:"unit" json:"unit,omitempty"`
	// FamePenalty is the reputation cost per unit sold, for goods the
	// neighbourhood frowns upon. Zero for respectable merchandise.
	FamePenalty int `yaml:"fame_penalty" json:"fame_penalty,omitempty"`
}

// Tunnel marks a location as an intercity interchange: subway travel from
// here reaches another city directly, without a train or plane fare.
type Tunnel struct {
	City string `yaml:"city" json:"city"`
	Mode string `yaml:"mode" json:"mode,omitempty"`
}

// Location is a spot inside a city.
type Location struct {
	ID             int     `yaml:"id" json:"id"`
	Name           string  `yaml:"name" json:"name"`
	Description    string  `yaml:"description" json:"description,omitempty"`
	HasMarket      bool    `yaml:"has_market" json:"has_market,omitempty"`
	IsTrainStation bool    `yaml:"is_train_station" json:"is_train_station,omitempty"`
	IsAirport      bool    `yaml:"is_airport" json:"is_airport,omitempty"`
	Tunnel         *Tunnel `yaml:"tunnel" json:"tunnel,omitempty"`
}

// IsTransportationHub reports whether the location is a train station or
// airport. Hubs are always fully stocked by the price generator.
func (l Location) IsTransportationHub() bool {
	return l.IsTrainStation || l.IsAirport
}

// WorkType is one job offered at a city's work board.
type WorkType struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	Income      [2]int `yaml:"income" json:"income"`
	StaminaCost [2]int `yaml:"stamina_cost" json:"stamina_cost"`
	Deposit     int    `yaml:"deposit" json:"deposit,omitempty"`
	DailyLimit  int    `yaml:"daily_limit" json:"daily_limit,omitempty"`
}

// HouseType is one lease option offered by a city's rental agency.
type HouseType struct {
	ID                string `yaml:"id" json:"id"`
	Name              string `yaml:"name" json:"name"`
	MonthlyRent       int    `yaml:"monthly_rent" json:"monthly_rent"`
	CapacityIncrease  int    `yaml:"capacity_increase" json:"capacity_increase"`
	DiscountThreshold int    `yaml:"discount_threshold" json:"discount_threshold,omitempty"`
}

// HospitalConfig tunes the city hospital.
type HospitalConfig struct {
	CostPerPoint  int `yaml:"cost_per_point" json:"cost_per_point"`
	TriggerHealth int `yaml:"trigger_health" json:"trigger_health"`
}

// RestaurantConfig tunes the city restaurant: a meal charges a random
// cost, restores random stamina, and occasionally poisons the diner.
type RestaurantConfig struct {
	Cost            [2]int `yaml:"cost" json:"cost"`
	StaminaRecovery [2]int `yaml:"stamina_recovery" json:"stamina_recovery"`
	PoisonChance    int    `yaml:"poison_chance" json:"poison_chance"`
	PoisonDamage    [2]int `yaml:"poison_damage" json:"poison_damage"`
}

// BuildingConfig groups the per-city building tables.
type BuildingConfig struct {
	Hospital   HospitalConfig   `yaml:"hospital" json:"hospital"`
	WorkTypes  []WorkType       `yaml:"work_types" json:"work_types"`
	HouseTypes []HouseType      `yaml:"house_types" json:"house_types"`
	Restaurant RestaurantConfig `yaml:"restaurant" json:"restaurant"`
}

// FareTable holds intercity fares keyed by destination city key, plus the
// flat in-city subway fare.
type FareTable struct {
	Train  map[string]int `yaml:"train" json:"train"`
	Plane  map[string]int `yaml:"plane" json:"plane"`
	Subway int            `yaml:"subway" json:"subway"`
}

// RentConfig holds city-wide accommodation pricing outside the lease
// tables: the hotel rate charged weekly when the player has no lease.
type RentConfig struct {
	HotelDailyPrice int `yaml:"hotel_daily_price" json:"hotel_daily_price"`
}

// City is one playable city: static tables only, immutable after load.
type City struct {
	ID        int               `yaml:"id" json:"id"`
	Key       string            `yaml:"key" json:"key"`
	Name      string            `yaml:"name" json:"name"`
	ShortName string            `yaml:"short_name" json:"short_name"`
	Locations []Location        `yaml:"locations" json:"locations"`
	Goods     []GoodsDefinition `yaml:"goods" json:"goods"`
	Buildings BuildingConfig    `yaml:"buildings" json:"buildings"`
	Fares     FareTable         `yaml:"fares" json:"fares"`
	Rent      RentConfig        `yaml:"rent" json:"rent"`
	Events    EventSet          `yaml:"events" json:"events"`
}

// Location returns the location with the given id.
func (c *City) Location(id int) (Location, bool) {
	for _, loc := range c.Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

// FirstLocation returns the arrival point for travellers: the first
// location in the city's table.
func (c *City) FirstLocation() Location {
	if len(c.Locations) == 0 {
		return Location{ID: -1}
	}
	return c.Locations[0]
}

// FindLocation returns the first location matching the predicate.
func (c *City) FindLocation(match func(Location) bool) (Location, bool) {
	for _, loc := range c.Locations {
		if match(loc) {
			return loc, true
		}
	}
	return Location{}, false
}

// WorkType returns the work type with the given id.
func (c *City) WorkType(id string) (WorkType, bool) {
	for _, wt := range c.Buildings.WorkTypes {
		if wt.ID == id {
			return wt, true
		}
	}
	return WorkType{}, false
}

// HouseType returns the house type with the given id.
func (c *City) HouseType(id string) (HouseType, bool) {
	for _, ht := range c.Buildings.HouseTypes {
		if ht.ID == id {
			return ht, true
		}
	}
	return HouseType{}, false
}

// GoodsByID returns the city's definition of a good, if the city trades it.
func (c *City) GoodsByID(id int) (GoodsDefinition, bool) {
	for _, g := range c.Goods {
		if g.ID == id {
			return g, true
		}
	}
	return GoodsDefinition{}, false
}

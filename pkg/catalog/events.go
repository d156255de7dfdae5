package catalog

// CommercialEvent shifts the price of one good and may hand goods to the
// player. Exactly one of PriceMultiplier or PriceDivider is set when the
// event moves a price; both are zero for pure-grant events.
type CommercialEvent struct {
	Freq            int      `yaml:"freq" json:"freq"`
	Message         string   `yaml:"message" json:"message"`
	GoodsID         int      `yaml:"goods_id" json:"goods_id"`
	PriceMultiplier int      `yaml:"price_multiplier" json:"price_multiplier,omitempty"`
	PriceDivider    int      `yaml:"price_divider" json:"price_divider,omitempty"`
	GoodsGiven      int      `yaml:"goods_given" json:"goods_given,omitempty"`
	Cost            int      `yaml:"cost" json:"cost,omitempty"`
	Tags            []string `yaml:"tags" json:"tags,omitempty"`
}

// IsGrantOnly reports whether the event only hands out goods without
// touching the price. Grant-only events fire even when the good is
// currently withheld from the market.
func (e CommercialEvent) IsGrantOnly() bool {
	return e.GoodsGiven > 0 && e.PriceMultiplier == 0 && e.PriceDivider == 0
}

// HealthEvent damages the player. Tags restrict the event to a season
// ("spring".."winter"), an exact solar-term name, or "transition"
// (eligible during spring and autumn).
type HealthEvent struct {
	Freq    int      `yaml:"freq" json:"freq"`
	Message string   `yaml:"message" json:"message"`
	Damage  int      `yaml:"damage" json:"damage"`
	Sound   string   `yaml:"sound" json:"sound,omitempty"`
	Tags    []string `yaml:"tags" json:"tags,omitempty"`
}

// MoneyEvent moves cash (or bank savings) when it fires.
//
// Three shapes exist in content:
//   - cash_based: a wager with a stake clamped to [min_cash, max_cash];
//     is_profit pins the outcome, otherwise a fair coin decides.
//   - targets_savings: drains cash_multiplier percent of bank savings.
//     Historically these were the events at pool positions 4 and 5; the
//     flag makes the special case explicit in data.
//   - plain: cash_multiplier percent of cash, spent when positive and
//     earned when negative.
type MoneyEvent struct {
	Freq             int     `yaml:"freq" json:"freq"`
	Message          string  `yaml:"message" json:"message"`
	CashMultiplier   int     `yaml:"cash_multiplier" json:"cash_multiplier,omitempty"`
	CashBased        bool    `yaml:"cash_based" json:"cash_based,omitempty"`
	TargetsSavings   bool    `yaml:"targets_savings" json:"targets_savings,omitempty"`
	MinCash          int     `yaml:"min_cash" json:"min_cash,omitempty"`
	MaxCash          int     `yaml:"max_cash" json:"max_cash,omitempty"`
	ProfitMultiplier float64 `yaml:"profit_multiplier" json:"profit_multiplier,omitempty"`
	LossMultiplier   float64 `yaml:"loss_multiplier" json:"loss_multiplier,omitempty"`
	IsProfit         *bool   `yaml:"is_profit" json:"is_profit,omitempty"`
}

// EventSet is the per-city pool of random events.
type EventSet struct {
	Commercial []CommercialEvent `yaml:"commercial" json:"commercial"`
	Health     []HealthEvent     `yaml:"health" json:"health"`
	Money      []MoneyEvent      `yaml:"money" json:"money"`
}

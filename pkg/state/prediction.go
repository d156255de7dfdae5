package state

// PredictionOption is one outcome of a prediction event. Odds move with
// the pool (pari-mutuel style) and are snapshotted onto bets.
type PredictionOption struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Odds      float64 `json:"odds"`
	TotalBets int     `json:"total_bets"`
	IsCorrect bool    `json:"is_correct,omitempty"`
}

// PredictionEvent is one open or settled question on the prediction market.
type PredictionEvent struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Options        []PredictionOption `json:"options"`
	SettlementWeek int                `json:"settlement_week"`
	MinBet         int                `json:"min_bet"`
	MaxBet         int                `json:"max_bet"`
	Status         string             `json:"status"` // "active" or "settled"
	CreatedAt      int                `json:"created_at"`
}

// PredictionBet is a player's stake on one option.
type PredictionBet struct {
	ID        string  `json:"id"`
	EventID   string  `json:"event_id"`
	OptionID  string  `json:"option_id"`
	Amount    int     `json:"amount"`
	OddsAtBet float64 `json:"odds_at_bet"`
	BetAt     int     `json:"bet_at"`
	Settled   bool    `json:"settled"`
	Payout    int     `json:"payout"`
}

// PredictionStatistics aggregates the player's prediction record.
type PredictionStatistics struct {
	TotalPredictions      int     `json:"total_predictions"`
	SuccessfulPredictions int     `json:"successful_predictions"`
	FailedPredictions     int     `json:"failed_predictions"`
	WinRate               float64 `json:"win_rate"`
	NetProfit             int     `json:"net_profit"`
}

// PredictionMarket is the auxiliary side-game state, advanced once per tick.
type PredictionMarket struct {
	ActiveEvents    []PredictionEvent    `json:"active_events"`
	SettledEvents   []PredictionEvent    `json:"settled_events"`
	Bets            []PredictionBet      `json:"bets"`
	TotalBetsAmount int                  `json:"total_bets_amount"`
	TotalPayout     int                  `json:"total_payout"`
	Statistics      PredictionStatistics `json:"statistics"`
}

// NewPredictionMarket returns an empty market.
func NewPredictionMarket() PredictionMarket {
	return PredictionMarket{
		ActiveEvents:  make([]PredictionEvent, 0),
		SettledEvents: make([]PredictionEvent, 0),
		Bets:          make([]PredictionBet, 0),
	}
}

// FindActiveEvent returns the active event with the given id, or nil.
func (pm *PredictionMarket) FindActiveEvent(id string) *PredictionEvent {
	for i := range pm.ActiveEvents {
		if pm.ActiveEvents[i].ID == id {
			return &pm.ActiveEvents[i]
		}
	}
	return nil
}

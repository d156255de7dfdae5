package sim

import "github.com/ventureworks/hustle-engine/pkg/catalog"

// runHealthEvents rolls the city's health pool. Unlike the commercial
// scan, the first eligible event that fires ends the pass; misfortunes
// don't pile up in one week. Health-death is checked immediately.
func (e *Engine) runHealthEvents(city *catalog.City) {
	gs := e.state
	total := e.cat.Game.Time.TotalWeeks
	week := e.currentWeek()
	season := Season(week, total)
	term := SolarTerm(week, total)

	for _, ev := range city.Events.Health {
		if !healthEventEligible(ev, season, term) {
			continue
		}
		r := e.rng.Intn(e.cat.Game.Random.HealthRange)
		if r%ev.Freq != 0 {
			continue
		}
		gs.AddHealth(-ev.Damage)
		e.sink.Show(ev.Message)
		if ev.Sound != "" && gs.SoundEnabled {
			e.sound.Play(ev.Sound)
		}
		if gs.Health <= 0 {
			e.endGame()
		}
		return
	}
}

// healthEventEligible applies the event's calendar tags: untagged events
// always qualify; tagged events need the current season, the exact solar
// term, or "transition" during spring and autumn.
func healthEventEligible(ev catalog.HealthEvent, season, term string) bool {
	if len(ev.Tags) == 0 {
		return true
	}
	for _, tag := range ev.Tags {
		switch {
		case tag == season:
			return true
		case tag == term:
			return true
		case tag == "transition" && (season == SeasonSpring || season == SeasonAutumn):
			return true
		}
	}
	return false
}

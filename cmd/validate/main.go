package main

import (
	"fmt"
	"os"

	"github.com/ventureworks/hustle-engine/pkg/catalog"
)

// validate loads a content directory through the real catalog loader and
// reports what a server booted against it would see. The loader already
// enforces referential integrity; this adds content-quality warnings.
func main() {
	dir := "./data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Printf("Validating %s...\n", dir)

	cat, err := catalog.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	warnings := lint(cat)
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	fmt.Printf("Catalog is valid: %d cities, %d goods, %d score tiers\n",
		len(cat.Cities()), len(cat.AllGoods()), len(cat.Game.Score))
	if len(warnings) > 0 {
		fmt.Printf("%d warnings\n", len(warnings))
	}
}

func lint(cat *catalog.Catalog) []string {
	var warnings []string
	for _, city := range cat.Cities() {
		if len(city.Goods) == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s trades no goods", city.Key))
		}
		if len(city.Events.Commercial) == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s has no commercial events", city.Key))
		}
		if len(city.Events.Health) == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s has no health events", city.Key))
		}
		if len(city.Events.Money) == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s has no money events", city.Key))
		}
		if len(city.Buildings.WorkTypes) == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s offers no work", city.Key))
		}
		if len(city.Buildings.HouseTypes) == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s offers no housing", city.Key))
		}
		if _, ok := city.FindLocation(func(l catalog.Location) bool { return l.HasMarket }); !ok {
			warnings = append(warnings, fmt.Sprintf("city %s has no market location", city.Key))
		}
		if city.Rent.HotelDailyPrice == 0 {
			warnings = append(warnings, fmt.Sprintf("city %s has a free hotel", city.Key))
		}
		for i, ev := range city.Events.Money {
			if ev.CashBased && ev.ProfitMultiplier == 0 && ev.LossMultiplier == 0 {
				warnings = append(warnings, fmt.Sprintf("city %s: money event %d wagers with zero multipliers", city.Key, i))
			}
		}
	}
	return warnings
}

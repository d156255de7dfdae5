package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads game.yaml and cities/*.yaml from dir and assembles the
// catalog. Goods ids in the files are local indices; the loader promotes
// them to global ids (cityID*GoodsIDBase + index) before assembly.
func Load(dir string) (*Catalog, error) {
	gamePath := filepath.Join(dir, "game.yaml")
	raw, err := os.ReadFile(gamePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var game GameConfig
	if err := yaml.Unmarshal(raw, &game); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", gamePath, err)
	}

	citiesDir := filepath.Join(dir, "cities")
	var cities []*City
	err = filepath.WalkDir(citiesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		city, err := loadCity(path)
		if err != nil {
			return err
		}
		cities = append(cities, city)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	return New(game, cities)
}

func loadCity(path string) (*City, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read city file: %w", err)
	}

	var city City
	if err := yaml.Unmarshal(raw, &city); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if city.Key == "" {
		city.Key = trimExt(filepath.Base(path))
	}

	// City files carry local goods indices; promote to global ids.
	for i := range city.Goods {
		city.Goods[i].ID = GoodsID(city.ID, city.Goods[i].ID)
		if city.Goods[i].Unit == "" {
			city.Goods[i].Unit = "件"
		}
	}
	for i := range city.Events.Commercial {
		city.Events.Commercial[i].GoodsID = GoodsID(city.ID, city.Events.Commercial[i].GoodsID)
	}
	return &city, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

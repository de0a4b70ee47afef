package domain

// SeedZones returns the built-in default zone collection. It is the
// fallback whenever the store is empty, absent, or fails validation, and
// the replacement written on a schema reseed. Each call builds fresh
// slices so callers may mutate the result.
func SeedZones() []Zone {
	return []Zone{
		{
			ID:          "seed-front-beds",
			Name:        "Front Border Beds",
			Area:        AreaFrontYard,
			Type:        "Perennial bed",
			Orientation: OrientationWest,
			Sun:         "Full afternoon sun",
			Emoji:       "🌸",
			Tags:        []string{"perennials", "drip-line"},
			Notes: []string{
				"Deadhead weekly through summer.",
				"Drip line runs 20 minutes on odd days.",
			},
			Subzones: []Zone{
				{
					ID:          "seed-front-beds-roses",
					Name:        "Rose Corner",
					Area:        AreaFrontYard,
					Type:        "Shrub rose",
					Orientation: OrientationWest,
					Sun:         "Full sun",
					Notes:       []string{"Feed after each flush of blooms."},
				},
				{
					ID:          "seed-front-beds-lavender",
					Name:        "Lavender Edge",
					Area:        AreaFrontYard,
					Type:        "Mediterranean herb",
					Orientation: OrientationWest,
					Sun:         "Full sun, sharp drainage",
				},
			},
		},
		{
			ID:          "seed-back-lawn",
			Name:        "Back Lawn",
			Area:        AreaBackYard,
			Type:        "Turf",
			Orientation: OrientationEast,
			Sun:         "Morning sun, afternoon shade",
			Tags:        []string{"turf", "overseed"},
			Notes:       []string{"Mow high; never remove more than a third of the blade."},
		},
		{
			ID:          "seed-koi-pond",
			Name:        "Koi Pond",
			Area:        AreaBackYard,
			Type:        "Water feature",
			Orientation: OrientationEast,
			Sun:         "Partial shade",
			Emoji:       "🐟",
			Tags:        []string{"pond", "aquatic"},
			Notes: []string{
				"Top off weekly in hot weather.",
				"Rinse the pump filter on the first of the month.",
			},
		},
		{
			ID:          "seed-side-path",
			Name:        "Side Yard Path",
			Area:        AreaSideYard,
			Type:        "Gravel path with shade plantings",
			Orientation: OrientationNA,
			Sun:         "Deep shade",
			Tags:        []string{"hostas"},
			Notes:       []string{"Hand-water the hostas; the path has no irrigation."},
		},
		{
			ID:          "seed-south-espalier",
			Name:        "South Wall Espalier",
			Area:        AreaSouthSide,
			Type:        "Fruit espalier",
			Orientation: OrientationSouth,
			Sun:         "Full sun all day",
			Emoji:       "🍏",
			Tags:        []string{"fruit", "apple"},
			Notes:       []string{"Tie in new leaders in June; summer-prune in August."},
		},
		{
			ID:          "seed-yard-total",
			Name:        "Whole Yard",
			Area:        AreaYardTotal,
			Type:        "Overview",
			Orientation: OrientationNA,
			Sun:         "Mixed exposure",
			Notes:       []string{"Walk the yard after every storm and note damage here."},
		},
	}
}

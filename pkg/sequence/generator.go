package sequence

import (
	"math/rand"
	"sort"
	"time"
)

// Generate builds the full record list for cfg: duration slots of rate
// records each, ids allocated sequentially in generation order, colour and
// material resampled independently for every record. The rng and start time
// are explicit parameters so runs can be pinned in tests.
//
// Duration and rate resolve before any record is built, so a bad config
// fails with zero output. The returned list is stable-sorted ascending by
// the formatted timestamp string.
func Generate(cfg map[string]any, rng *rand.Rand, start time.Time) ([]Record, error) {
	duration, err := ResolveDuration(cfg)
	if err != nil {
		return nil, err
	}
	rate, err := ResolveRate(cfg, rng)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, duration*rate)
	id := 1
	for slot := 0; slot < duration; slot++ {
		for unit := 0; unit < rate; unit++ {
			rec := BuildRecord(id, start)
			id++

			colour, ok, err := ResolveAttribute(cfg, "colour", rng)
			if err != nil {
				return nil, err
			}
			if ok {
				rec.Colour = colour
			}

			material, ok, err := ResolveAttribute(cfg, "material", rng)
			if err != nil {
				return nil, err
			}
			if ok {
				rec.Material = material
			}

			records = append(records, rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

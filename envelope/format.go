package envelope

import "github.com/arloliu/sensorenv/measurement"

// Format hoists the most repeated metadata of env to the envelope level.
//
// For each measurement, Format counts how many measurements share its exact
// metadata. The earliest measurement reaching a new strictly greater count
// wins, so ties favor the earlier index. When the winning count is at least 2,
// the winner's metadata becomes env.Meta, env.HasMeta is set, and every
// measurement whose metadata equals it has HasMeta cleared. The metadata value
// itself is kept in the measurement but must be treated as absent.
//
// Returns the number of measurements sharing the hoisted metadata, or 1 when
// no metadata is repeated (including an empty envelope). The count is
// diagnostic only.
func Format(env *measurement.Envelope) int {
	ms := env.Measurements()

	best := 1
	winner := -1
	for i := range ms {
		count := 1
		for j := range ms {
			if i == j {
				continue
			}
			if ms[i].Meta.Equal(ms[j].Meta) {
				count++
			}
		}

		if count > best {
			best = count
			winner = i
		}
	}

	if best < 2 {
		return 1
	}

	env.Meta = ms[winner].Meta
	env.HasMeta = true
	for i := range ms {
		if ms[i].Meta.Equal(env.Meta) {
			ms[i].HasMeta = false
		}
	}

	return best
}

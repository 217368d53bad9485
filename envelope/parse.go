package envelope

import (
	"fmt"

	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/measurement"
)

// Parse restores per-measurement metadata from the envelope's hoisted record.
//
// Without hoisted metadata every measurement must already carry its own;
// otherwise ErrIncompleteMetadata is returned and env is left untouched. With
// hoisted metadata, each measurement lacking its own receives a copy of it and
// measurements with differing metadata are left as they are.
func Parse(env *measurement.Envelope) error {
	ms := env.Measurements()

	if !env.HasMeta {
		for i := range ms {
			if !ms[i].HasMeta {
				return fmt.Errorf("%w: measurement %d has no metadata and none is hoisted",
					errs.ErrIncompleteMetadata, i)
			}
		}

		return nil
	}

	for i := range ms {
		if !ms[i].HasMeta {
			ms[i].Meta = env.Meta
			ms[i].HasMeta = true
		}
	}

	return nil
}

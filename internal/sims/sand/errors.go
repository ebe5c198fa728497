package sand

import "errors"

var (
	// ErrSourceBlocked indicates the spawn point is itself a rock.
	ErrSourceBlocked = errors.New("sand: source coincides with a rock")
	// ErrSourceBelowFloor indicates a closed-floor source at or under the floor row.
	ErrSourceBelowFloor = errors.New("sand: source lies on or below the floor")
)

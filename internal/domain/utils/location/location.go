package location

import (
	"fmt"
	"time"
)

// Load resolves the time zone used for log timestamps. An empty name returns nil,
// which leaves the logger on UTC.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("error while load time location: %w", err)
	}
	return loc, nil
}

package schoolyear

import "time"

// Cache holds at most one active school year.
type Cache interface {
	Get() (*SchoolYear, bool)
	Set(year *SchoolYear, ttl time.Duration)
	Clear()
}

type noopCache struct{}

func (noopCache) Get() (*SchoolYear, bool) {
	return nil, false
}

func (noopCache) Set(*SchoolYear, time.Duration) {}

func (noopCache) Clear() {}

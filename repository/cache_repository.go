package repository

// CacheRepository memoizes computed results. Calculations are pure, so a hit
// can be served without recomputing; a miss is never an error.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

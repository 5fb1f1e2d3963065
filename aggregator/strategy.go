package aggregator

// CollisionStrategy defines how a key declared by more than one unit is
// resolved.
type CollisionStrategy string

const (
	// StrategyAcceptRight keeps the value from the last unit (overwrites).
	// This is the default.
	StrategyAcceptRight CollisionStrategy = "accept-right"
	// StrategyAcceptLeft keeps the value from the first unit.
	StrategyAcceptLeft CollisionStrategy = "accept-left"
	// StrategyFailOnCollision returns an error if any collision is detected.
	StrategyFailOnCollision CollisionStrategy = "fail"
)

// ValidStrategies returns all valid collision strategy strings
func ValidStrategies() []string {
	return []string{
		string(StrategyAcceptRight),
		string(StrategyAcceptLeft),
		string(StrategyFailOnCollision),
	}
}

// IsValidStrategy checks if a strategy string is valid
func IsValidStrategy(strategy string) bool {
	switch CollisionStrategy(strategy) {
	case StrategyAcceptRight, StrategyAcceptLeft, StrategyFailOnCollision:
		return true
	default:
		return false
	}
}

// Collision records one key declared by two units.
type Collision struct {
	// Section is the map the key lives in, e.g. "paths" or "components.links"
	Section string
	// Key is the colliding path, schema, resource or component name
	Key string
	// First is the unit whose value was in place
	First string
	// Second is the unit that declared the key again
	Second string
	// Strategy is the strategy that resolved the collision
	Strategy CollisionStrategy
	// Kept names the unit whose value survived
	Kept string
}

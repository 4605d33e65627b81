package config

// Simulation configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// TickStep is the fixed integration timestep applied every tick.
	// Deliberately not derived from measured frame time: a constant step
	// keeps motion deterministic across machines and frame rates.
	TickStep = 0.05

	// SpawnSpeedRange is the width of the symmetric interval velocity
	// components are drawn from: each component is uniform in
	// [-SpawnSpeedRange/2, SpawnSpeedRange/2)
	SpawnSpeedRange = 16.0

	// CircleChance is the probability a spawned shape is a circle rather
	// than a square
	CircleChance = 0.5

	// Spawned circle radius range [min, max)
	CircleRadiusMin = 10.0
	CircleRadiusMax = 30.0

	// Spawned square side range [min, max)
	SquareSideMin = 20.0
	SquareSideMax = 60.0

	// Seed entity: a motionless circle placed at startup so the window is
	// never empty
	SeedCircleX      = 100.0
	SeedCircleY      = 100.0
	SeedCircleRadius = 20.0
)

// GetWindowSize returns the window dimensions in pixels
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}

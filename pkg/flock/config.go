package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// NeighborSelection picks how an agent's neighbor set is bounded.
type NeighborSelection string

const (
	// SelectRadius takes every agent within the vision range.
	SelectRadius NeighborSelection = "radius"
	// SelectKNearest caps per-agent work at the k closest agents, which
	// is the better bound when local density is very high.
	SelectKNearest NeighborSelection = "kNearest"
)

// IndexKind picks the spatial index implementation.
type IndexKind string

const (
	IndexKDTree IndexKind = "kdtree"
	IndexGrid   IndexKind = "grid"
)

// BoundaryMode picks how agents are kept inside the world.
type BoundaryMode string

const (
	// BoundarySteer nudges the velocity back toward the interior by the
	// turn factor, one axis at a time. Agents overshoot the soft border
	// and curve back, which reads naturally.
	BoundarySteer BoundaryMode = "steer"
	// BoundaryBounce reflects the agent off the border like a billiard
	// ball. The simplest deployment mode.
	BoundaryBounce BoundaryMode = "bounce"
)

// Config holds every tunable of a simulation run. It is read-only once the
// run starts; validation happens exactly once at startup and is the only
// place allowed to halt the process.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
	// BoundsMargin is the fraction of each world dimension kept as a soft
	// margin; agents crossing into it are steered back toward the interior.
	BoundsMargin float64 `json:"boundsMargin"`

	// Population
	AgentCount int `json:"agentCount"`

	// Perception
	VisionRange    float64 `json:"visionRange"`    // How far can they see?
	ProtectedRange float64 `json:"protectedRange"` // Personal space radius
	FovEnabled     bool    `json:"fovEnabled"`     // Ignore neighbors behind?
	FovDegrees     float64 `json:"fovDegrees"`     // Full cone angle, centered on heading

	// Steering weights
	CenteringFactor float64 `json:"centeringFactor"` // Cohesion strength
	MatchingFactor  float64 `json:"matchingFactor"`  // Alignment strength
	AvoidFactor     float64 `json:"avoidFactor"`     // Separation strength
	TurnFactor      float64 `json:"turnFactor"`      // Edge turning strength
	SeekFactor      float64 `json:"seekFactor"`      // Pull toward the optional target

	// Speed envelope
	MinSpeed   float64 `json:"minSpeed"`
	MaxSpeed   float64 `json:"maxSpeed"`
	SpeedDecay float64 `json:"speedDecay"` // Multiplicative per-tick damping, 1 = none

	// Neighbor query strategy
	NeighborSelection NeighborSelection `json:"neighborSelection"`
	NeighborLimit     int               `json:"neighborLimit"` // k for kNearest
	SpatialIndex      IndexKind         `json:"spatialIndex"`
	IndexRebuildEvery int               `json:"indexRebuildEvery"` // in ticks

	// Scheduling
	WorkerCount int `json:"workerCount"` // 0 = number of CPUs
	TickRate    int `json:"tickRate"`    // fixed simulation ticks per second

	BoundaryMode BoundaryMode `json:"boundaryMode"`

	// Seed for the initial velocity scatter; runs with the same seed and
	// config are reproducible tick for tick.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the parameters of the reference flock: 1000 agents
// in an 800x600 world with the classic vision 40 / protected 8 envelope.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:        800,
		WorldHeight:       600,
		BoundsMargin:      1.0 / 6.0,
		AgentCount:        1000,
		VisionRange:       40.0,
		ProtectedRange:    8.0,
		FovEnabled:        false,
		FovDegrees:        240.0,
		CenteringFactor:   0.0005,
		MatchingFactor:    0.05,
		AvoidFactor:       0.05,
		TurnFactor:        0.2,
		SeekFactor:        0.005,
		MinSpeed:          2.0,
		MaxSpeed:          4.0,
		SpeedDecay:        1.0,
		NeighborSelection: SelectRadius,
		NeighborLimit:     16,
		SpatialIndex:      IndexKDTree,
		IndexRebuildEvery: 1,
		WorkerCount:       0,
		TickRate:          60,
		BoundaryMode:      BoundarySteer,
		Seed:              1,
	}
}

// Validate checks the configuration invariants once at startup. Any error
// returned here is fatal; a bad configuration must never silently corrupt
// the simulation mid-run.
func (c *Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %gx%g", c.WorldWidth, c.WorldHeight)
	}
	if c.BoundsMargin < 0 || c.BoundsMargin >= 0.5 {
		return fmt.Errorf("boundsMargin must be in [0, 0.5), got %g", c.BoundsMargin)
	}
	if c.AgentCount <= 0 {
		return fmt.Errorf("agentCount must be positive, got %d", c.AgentCount)
	}
	if c.VisionRange <= 0 {
		return fmt.Errorf("visionRange must be positive, got %g", c.VisionRange)
	}
	if c.ProtectedRange < 0 || c.ProtectedRange > c.VisionRange {
		return fmt.Errorf("protectedRange must be in [0, visionRange], got %g", c.ProtectedRange)
	}
	if c.FovEnabled && (c.FovDegrees <= 0 || c.FovDegrees > 360) {
		return fmt.Errorf("fovDegrees must be in (0, 360], got %g", c.FovDegrees)
	}
	if c.MinSpeed < 0 || c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("need 0 <= minSpeed <= maxSpeed, got min %g max %g", c.MinSpeed, c.MaxSpeed)
	}
	if c.SpeedDecay <= 0 || c.SpeedDecay > 1 {
		return fmt.Errorf("speedDecay must be in (0, 1], got %g", c.SpeedDecay)
	}
	switch c.NeighborSelection {
	case SelectRadius:
	case SelectKNearest:
		if c.NeighborLimit <= 0 {
			return fmt.Errorf("neighborLimit must be positive in kNearest mode, got %d", c.NeighborLimit)
		}
		if c.SpatialIndex == IndexGrid {
			return fmt.Errorf("the grid index cannot answer kNearest queries; use %q", IndexKDTree)
		}
	default:
		return fmt.Errorf("unknown neighborSelection %q", c.NeighborSelection)
	}
	switch c.SpatialIndex {
	case IndexKDTree, IndexGrid:
	default:
		return fmt.Errorf("unknown spatialIndex %q", c.SpatialIndex)
	}
	switch c.BoundaryMode {
	case BoundarySteer, BoundaryBounce:
	default:
		return fmt.Errorf("unknown boundaryMode %q", c.BoundaryMode)
	}
	if c.IndexRebuildEvery <= 0 {
		return fmt.Errorf("indexRebuildEvery must be positive, got %d", c.IndexRebuildEvery)
	}
	if c.WorkerCount < 0 {
		return fmt.Errorf("workerCount must be >= 0, got %d", c.WorkerCount)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}
	return nil
}

// InnerBounds returns the soft boundary rectangle agents are steered back
// into: the world rectangle inset by the configured margin.
func (c *Config) InnerBounds() geometry.Rect {
	world := geometry.NewRect(0, 0, c.WorldWidth, c.WorldHeight)
	return world.Inset(c.WorldWidth*c.BoundsMargin, c.WorldHeight*c.BoundsMargin)
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema, then against the semantic rules in Validate.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate against the schema
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into the struct, on top of the defaults so a partial
	// file only overrides what it names.
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

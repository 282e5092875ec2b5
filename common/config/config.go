package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type SimulationConfig struct {
	Tps int

	// RetargetInterval is the number of ticks between target re-evaluations
	// for agents that already hold a valid target; target loss always forces
	// an immediate re-evaluation.
	RetargetInterval int

	// BacktrackDistance is how far behind its advance axis an agent will
	// still chase a target.
	BacktrackDistance float64
}

type BattlefieldConfig struct {
	Width  float64
	Height float64
}

type UnitConfig struct {
	Health         float64
	Damage         float64
	AttackRange    float64
	AttackCooldown float64 // seconds between shots
	MoveSpeed      float64
	Radius         float64
}

type StructureConfig struct {
	Health     float64
	HalfWidth  float64
	HalfHeight float64

	// Combat stats; a structure with Damage 0 does not attack.
	Damage         float64
	AttackRange    float64
	AttackCooldown float64
}

type ProjectileConfig struct {
	Speed  float64
	Radius float64
}

type BattleConfig struct {
	Simulation  SimulationConfig
	Battlefield BattlefieldConfig
	Unit        UnitConfig
	Building    StructureConfig
	Fortress    StructureConfig
	Projectile  ProjectileConfig
}

// Default returns the prototype balance values.
func Default() BattleConfig {
	return BattleConfig{
		Simulation: SimulationConfig{
			Tps:               20,
			RetargetInterval:  10,
			BacktrackDistance: 128,
		},
		Battlefield: BattlefieldConfig{
			Width:  1280,
			Height: 640,
		},
		Unit: UnitConfig{
			Health:         100,
			Damage:         10,
			AttackRange:    30,
			AttackCooldown: 1,
			MoveSpeed:      50,
			Radius:         12,
		},
		Building: StructureConfig{
			Health:     300,
			HalfWidth:  30,
			HalfHeight: 30,
		},
		Fortress: StructureConfig{
			Health:         1000,
			HalfWidth:      64,
			HalfHeight:     320,
			Damage:         50,
			AttackRange:    200,
			AttackCooldown: 2,
		},
		Projectile: ProjectileConfig{
			Speed:  200,
			Radius: 2,
		},
	}
}

// Load reads a TOML battle configuration; fields absent from the file keep
// their Default() values.
func Load(filename string) (BattleConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, "config: could not read "+filename)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: could not parse "+filename)
	}

	return cfg, cfg.Validate()
}

func (cfg BattleConfig) Validate() error {
	if cfg.Simulation.Tps <= 0 {
		return errors.New("config: Tps must be positive")
	}

	if cfg.Simulation.RetargetInterval <= 0 {
		return errors.New("config: RetargetInterval must be positive")
	}

	if cfg.Unit.Radius <= 0 {
		return errors.New("config: unit Radius must be positive")
	}

	if cfg.Projectile.Speed <= 0 {
		return errors.New("config: projectile Speed must be positive")
	}

	return nil
}

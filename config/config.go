// Package config loads static simulation settings from TOML and the environment
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/pattern"
	"github.com/kako-jun/yatagarrage/physics"
	"github.com/kako-jun/yatagarrage/system"
)

// EnvPrefix namespaces environment overrides, e.g. YATAGARRAGE_SIMULATION_MODE
const EnvPrefix = "YATAGARRAGE"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full static configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Pools      PoolConfig       `mapstructure:"pools"`
	Gravity    GravityConfig    `mapstructure:"gravity"`
	Enemy      EnemyConfig      `mapstructure:"enemy"`
	Player     PlayerConfig     `mapstructure:"player"`
	Log        LogConfig        `mapstructure:"log"`
}

// SimulationConfig drives the fixed-step loop
type SimulationConfig struct {
	Mode     string        `mapstructure:"mode"`
	TickRate int           `mapstructure:"tick_rate"`
	MaxDelta time.Duration `mapstructure:"max_delta"`
	// Seed 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
}

// PoolConfig sizes every fixed-capacity pool
type PoolConfig struct {
	PlayerBullets int `mapstructure:"player_bullets"`
	EnemyBullets  int `mapstructure:"enemy_bullets"`
	Enemies       int `mapstructure:"enemies"`
	Emissions     int `mapstructure:"emissions"`
}

// GravityConfig places the field and its orbiters
type GravityConfig struct {
	Enabled       bool           `mapstructure:"enabled"`
	CenterX       float64        `mapstructure:"center_x"`
	CenterY       float64        `mapstructure:"center_y"`
	MinDistanceSq float64        `mapstructure:"min_distance_sq"`
	Sources       []SourceConfig `mapstructure:"sources"`
}

// SourceConfig is one orbiter
type SourceConfig struct {
	ID       string  `mapstructure:"id"`
	Radius   float64 `mapstructure:"radius"`
	Speed    float64 `mapstructure:"speed"`
	Strength float64 `mapstructure:"strength"`
	Size     float64 `mapstructure:"size"`
	Color    uint32  `mapstructure:"color"`
	Angle    float64 `mapstructure:"angle"`
}

type EnemyConfig struct {
	SpawnInterval   time.Duration `mapstructure:"spawn_interval"`
	FireIntervalMin time.Duration `mapstructure:"fire_interval_min"`
	FireIntervalMax time.Duration `mapstructure:"fire_interval_max"`
	// Pattern is "aimed", "random" or a catalog id
	Pattern string `mapstructure:"pattern"`
}

type PlayerConfig struct {
	FireCooldown time.Duration `mapstructure:"fire_cooldown"`
	BulletSpeed  float64       `mapstructure:"bullet_speed"`
	MoveSpeed    float64       `mapstructure:"move_speed"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// Default returns the reference configuration
func Default() Config {
	sources := make([]SourceConfig, len(parameter.GravitySourceDefaults))
	for i, d := range parameter.GravitySourceDefaults {
		sources[i] = SourceConfig{
			ID: d.ID, Radius: d.Radius, Speed: d.Speed, Strength: d.Strength,
			Size: d.Size, Color: d.Color, Angle: d.Angle,
		}
	}
	return Config{
		Simulation: SimulationConfig{
			Mode:     core.ModeGame.String(),
			TickRate: parameter.DefaultTickRate,
			MaxDelta: parameter.DefaultMaxDelta,
		},
		Pools: PoolConfig{
			PlayerBullets: parameter.PlayerBulletCapacity,
			EnemyBullets:  parameter.EnemyBulletCapacity,
			Enemies:       parameter.EnemyCapacity,
			Emissions:     parameter.EmissionCapacity,
		},
		Gravity: GravityConfig{
			Enabled:       true,
			CenterX:       parameter.GravityCenterX,
			CenterY:       parameter.GravityCenterY,
			MinDistanceSq: parameter.GravityMinDistSq,
			Sources:       sources,
		},
		Enemy: EnemyConfig{
			SpawnInterval:   parameter.EnemySpawnInterval,
			FireIntervalMin: parameter.EnemyFireIntervalMin,
			FireIntervalMax: parameter.EnemyFireIntervalMax,
			Pattern:         system.SelectAimed,
		},
		Player: PlayerConfig{
			FireCooldown: parameter.PlayerFireCooldown,
			BulletSpeed:  parameter.PlayerBulletSpeed,
			MoveSpeed:    parameter.PlayerMoveSpeed,
		},
		Log: LogConfig{
			Level: "info",
			File:  "logs/yatagarrage.log",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides resolve during Unmarshal
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("simulation.mode", d.Simulation.Mode)
	v.SetDefault("simulation.tick_rate", d.Simulation.TickRate)
	v.SetDefault("simulation.max_delta", d.Simulation.MaxDelta)
	v.SetDefault("simulation.seed", d.Simulation.Seed)

	v.SetDefault("pools.player_bullets", d.Pools.PlayerBullets)
	v.SetDefault("pools.enemy_bullets", d.Pools.EnemyBullets)
	v.SetDefault("pools.enemies", d.Pools.Enemies)
	v.SetDefault("pools.emissions", d.Pools.Emissions)

	v.SetDefault("gravity.enabled", d.Gravity.Enabled)
	v.SetDefault("gravity.center_x", d.Gravity.CenterX)
	v.SetDefault("gravity.center_y", d.Gravity.CenterY)
	v.SetDefault("gravity.min_distance_sq", d.Gravity.MinDistanceSq)
	sources := make([]map[string]any, len(d.Gravity.Sources))
	for i, s := range d.Gravity.Sources {
		sources[i] = map[string]any{
			"id": s.ID, "radius": s.Radius, "speed": s.Speed, "strength": s.Strength,
			"size": s.Size, "color": s.Color, "angle": s.Angle,
		}
	}
	v.SetDefault("gravity.sources", sources)

	v.SetDefault("enemy.spawn_interval", d.Enemy.SpawnInterval)
	v.SetDefault("enemy.fire_interval_min", d.Enemy.FireIntervalMin)
	v.SetDefault("enemy.fire_interval_max", d.Enemy.FireIntervalMax)
	v.SetDefault("enemy.pattern", d.Enemy.Pattern)

	v.SetDefault("player.fire_cooldown", d.Player.FireCooldown)
	v.SetDefault("player.bullet_speed", d.Player.BulletSpeed)
	v.SetDefault("player.move_speed", d.Player.MoveSpeed)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Validate fails fast on settings the simulation cannot run with
func (c Config) Validate() error {
	if _, err := core.ParseMode(c.Simulation.Mode); err != nil {
		return fmt.Errorf("%w: simulation.mode: %v", ErrInvalidConfig, err)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("%w: simulation.tick_rate %d must be positive", ErrInvalidConfig, c.Simulation.TickRate)
	}
	if c.Simulation.MaxDelta <= 0 {
		return fmt.Errorf("%w: simulation.max_delta %v must be positive", ErrInvalidConfig, c.Simulation.MaxDelta)
	}

	pools := []struct {
		key string
		n   int
	}{
		{"pools.player_bullets", c.Pools.PlayerBullets},
		{"pools.enemy_bullets", c.Pools.EnemyBullets},
		{"pools.enemies", c.Pools.Enemies},
		{"pools.emissions", c.Pools.Emissions},
	}
	for _, p := range pools {
		if p.n <= 0 {
			return fmt.Errorf("%w: %s %d must be positive", ErrInvalidConfig, p.key, p.n)
		}
	}

	if !finite(c.Gravity.CenterX, c.Gravity.CenterY) {
		return fmt.Errorf("%w: gravity center (%v, %v) must be finite", ErrInvalidConfig, c.Gravity.CenterX, c.Gravity.CenterY)
	}
	if !finite(c.Gravity.MinDistanceSq) || c.Gravity.MinDistanceSq <= 0 {
		return fmt.Errorf("%w: gravity.min_distance_sq %v must be positive and finite", ErrInvalidConfig, c.Gravity.MinDistanceSq)
	}
	for i, s := range c.Gravity.Sources {
		if !finite(s.Radius, s.Speed, s.Strength, s.Angle) {
			return fmt.Errorf("%w: gravity.sources[%d] radius, speed, strength and angle must be finite", ErrInvalidConfig, i)
		}
		if s.Radius < 0 || s.Strength < 0 {
			return fmt.Errorf("%w: gravity.sources[%d] radius and strength must not be negative", ErrInvalidConfig, i)
		}
	}

	if c.Enemy.SpawnInterval <= 0 {
		return fmt.Errorf("%w: enemy.spawn_interval %v must be positive", ErrInvalidConfig, c.Enemy.SpawnInterval)
	}
	if c.Enemy.FireIntervalMin <= 0 || c.Enemy.FireIntervalMax < c.Enemy.FireIntervalMin {
		return fmt.Errorf("%w: enemy fire interval [%v, %v] is not a valid range",
			ErrInvalidConfig, c.Enemy.FireIntervalMin, c.Enemy.FireIntervalMax)
	}
	switch c.Enemy.Pattern {
	case system.SelectAimed, system.SelectRandom:
	default:
		if _, ok := pattern.Find(c.Enemy.Pattern); !ok {
			return fmt.Errorf("%w: enemy.pattern %q is not in the catalog", ErrInvalidConfig, c.Enemy.Pattern)
		}
	}

	if c.Player.FireCooldown < 0 || c.Player.BulletSpeed <= 0 || c.Player.MoveSpeed < 0 {
		return fmt.Errorf("%w: player settings out of range", ErrInvalidConfig)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Mode returns the parsed simulation mode, game for anything invalid
func (c Config) Mode() core.Mode {
	m, _ := core.ParseMode(c.Simulation.Mode)
	return m
}

// Step returns the fixed tick length
func (c Config) Step() time.Duration {
	return time.Second / time.Duration(c.Simulation.TickRate)
}

// LogLevel returns the slog level, info if unparsable
func (c Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// World converts to engine sizing
func (c Config) World() engine.WorldConfig {
	w := engine.DefaultWorldConfig(c.Mode())
	w.Seed = c.Simulation.Seed
	w.PlayerBullets = c.Pools.PlayerBullets
	w.EnemyBullets = c.Pools.EnemyBullets
	w.Enemies = c.Pools.Enemies
	w.Emissions = c.Pools.Emissions

	w.GravityEnabled = c.Gravity.Enabled
	w.GravityCenterX = c.Gravity.CenterX
	w.GravityCenterY = c.Gravity.CenterY
	w.GravityMinDistSq = c.Gravity.MinDistanceSq
	w.GravitySources = make([]physics.SourceConfig, len(c.Gravity.Sources))
	for i, s := range c.Gravity.Sources {
		w.GravitySources[i] = physics.SourceConfig{
			ID: s.ID, Radius: s.Radius, Speed: s.Speed, Strength: s.Strength,
			Size: s.Size, Color: s.Color, Angle: s.Angle,
		}
	}
	return w
}

// EnemySettings converts to the enemy system tuning
func (c Config) EnemySettings() system.EnemySettings {
	return system.EnemySettings{
		SpawnInterval:   c.Enemy.SpawnInterval,
		FireIntervalMin: c.Enemy.FireIntervalMin,
		FireIntervalMax: c.Enemy.FireIntervalMax,
		Pattern:         c.Enemy.Pattern,
	}
}

// PlayerSettings converts to the player system tuning
func (c Config) PlayerSettings() system.PlayerSettings {
	return system.PlayerSettings{
		FireCooldown: c.Player.FireCooldown,
		BulletSpeed:  c.Player.BulletSpeed,
		MoveSpeed:    c.Player.MoveSpeed,
	}
}

// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters of the particle field. The engine reads
// it once per tick and never writes it; the control panel and config file own
// all mutation. Out-of-range values are tolerated, not validated - the
// integrator stays finite under any finite input.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Field       FieldConfig       `yaml:"field"`
	Layout      LayoutConfig      `yaml:"layout"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Convection  ConvectionConfig  `yaml:"convection"`
	Pointer     PointerConfig     `yaml:"pointer"`
	Boundary    BoundaryConfig    `yaml:"boundary"`
	Temperature TemperatureConfig `yaml:"temperature"`
	Wind        WindConfig        `yaml:"wind"`
	Gravity     GravityConfig     `yaml:"gravity"`
	Vortex      VortexConfig      `yaml:"vortex"`
	Obstacle    ObstacleConfig    `yaml:"obstacle"`
	Corona      CoronaConfig      `yaml:"corona"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds particle count and rendering-adjacent parameters.
type FieldConfig struct {
	Count   int     `yaml:"count"`   // changing this forces a full reinit
	Size    float32 `yaml:"size"`    // point sprite radius in field units
	Speed   float32 `yaml:"speed"`   // global velocity multiplier
	Opacity float32 `yaml:"opacity"` // base sprite alpha in [0,1]
	Color   string  `yaml:"color"`   // base sprite color, "#rrggbb"
}

// LayoutConfig holds initial distribution parameters.
type LayoutConfig struct {
	SpreadX         float32 `yaml:"spread_x"`         // horizontal jitter multiplier
	SpreadY         float32 `yaml:"spread_y"`         // vertical jitter multiplier
	ClusterCount    int     `yaml:"cluster_count"`    // 0 = uniform angles
	ClusterRadius   float32 `yaml:"cluster_radius"`   // arc length of each cluster
	InitialVelocity float32 `yaml:"initial_velocity"` // outward speed in procedural mode
}

// PhysicsConfig holds damping and turbulence parameters.
type PhysicsConfig struct {
	Damping         float32 `yaml:"damping"`
	Turbulence      float32 `yaml:"turbulence"`
	TurbulenceScale float32 `yaml:"turbulence_scale"`
}

// ConvectionConfig holds the fluid-like circulation parameters.
type ConvectionConfig struct {
	Strength             float32 `yaml:"strength"`
	SpeedX               float32 `yaml:"speed_x"` // temporal frequency of the radial flow
	SpeedY               float32 `yaml:"speed_y"`
	ScaleX               float32 `yaml:"scale_x"` // spatial frequency of the radial flow
	ScaleY               float32 `yaml:"scale_y"`
	Buoyancy             float32 `yaml:"buoyancy"`
	TemperatureDiffusion float32 `yaml:"temperature_diffusion"`
}

// PointerConfig holds pointer interaction parameters.
type PointerConfig struct {
	Radius float32 `yaml:"radius"`
	Force  float32 `yaml:"force"`
	Heat   float32 `yaml:"heat"` // temperature added per tick inside the radius
}

// BoundaryConfig holds edge reflection parameters.
type BoundaryConfig struct {
	Damping float32 `yaml:"damping"` // velocity retained after a bounce
	Padding float32 `yaml:"padding"` // inset from the field edge
}

// TemperatureConfig holds boundary heat exchange parameters.
type TemperatureConfig struct {
	CoolingRate float32 `yaml:"cooling_rate"` // multiplier applied on top-edge contact
	HeatingRate float32 `yaml:"heating_rate"` // multiplier applied on bottom-edge contact
}

// WindConfig holds the constant drift force.
type WindConfig struct {
	X         float32 `yaml:"x"`
	Y         float32 `yaml:"y"`
	Variation float32 `yaml:"variation"` // uniform jitter amplitude per axis
}

// GravityConfig holds the central gravity well.
type GravityConfig struct {
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	Range float32 `yaml:"range"`
}

// VortexConfig holds the rotational force near the origin.
type VortexConfig struct {
	Strength float32 `yaml:"strength"`
	Radius   float32 `yaml:"radius"`
}

// ObstacleConfig holds the static circular repulsor at the field center.
type ObstacleConfig struct {
	Enabled bool    `yaml:"enabled"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Radius  float32 `yaml:"radius"`
	Force   float32 `yaml:"force"`
	Heat    float32 `yaml:"heat"`
}

// CoronaConfig holds radial alpha falloff shaping. Consumed only by the
// renderer, never by the integrator.
type CoronaConfig struct {
	InnerBoundary  float32 `yaml:"inner_boundary"`
	OuterBoundary  float32 `yaml:"outer_boundary"`
	SlopeSharpness float32 `yaml:"slope_sharpness"`
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds between stat emissions
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration is inconsistent.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

type Config struct {
	// Viewport at start, the window can be resized later
	ViewportWidth  float64 `json:"viewportWidth" yaml:"viewportWidth"`
	ViewportHeight float64 `json:"viewportHeight" yaml:"viewportHeight"`

	// Text region, centered, as a fraction of the viewport
	TextBoxWidthRatio  float64 `json:"textBoxWidthRatio" yaml:"textBoxWidthRatio"`
	TextBoxHeightRatio float64 `json:"textBoxHeightRatio" yaml:"textBoxHeightRatio"`

	// Population sampling
	NumBirdsMin          int     `json:"numBirdsMin" yaml:"numBirdsMin"`
	NumBirdsMax          int     `json:"numBirdsMax" yaml:"numBirdsMax"`
	SizeMin              float64 `json:"sizeMin" yaml:"sizeMin"`
	SizeMax              float64 `json:"sizeMax" yaml:"sizeMax"`
	SpeedMin             float64 `json:"speedMin" yaml:"speedMin"`
	SpeedMax             float64 `json:"speedMax" yaml:"speedMax"`
	RotationAmplitudeMax float64 `json:"rotationAmplitudeMax" yaml:"rotationAmplitudeMax"` // deg/frame
	RotationFrequencyMin float64 `json:"rotationFrequencyMin" yaml:"rotationFrequencyMin"`
	RotationFrequencyMax float64 `json:"rotationFrequencyMax" yaml:"rotationFrequencyMax"`
	ScaleAmplitudeMax    float64 `json:"scaleAmplitudeMax" yaml:"scaleAmplitudeMax"`
	ScaleFrequencyMin    float64 `json:"scaleFrequencyMin" yaml:"scaleFrequencyMin"`
	ScaleFrequencyMax    float64 `json:"scaleFrequencyMax" yaml:"scaleFrequencyMax"`

	// Steering tunables (see behavior.Settings)
	FramesPerSecond          float64 `json:"framesPerSecond" yaml:"framesPerSecond"`
	ViewportMargin           float64 `json:"viewportMargin" yaml:"viewportMargin"`
	BaseBirdSize             float64 `json:"baseBirdSize" yaml:"baseBirdSize"`
	RadiusPerSize            float64 `json:"radiusPerSize" yaml:"radiusPerSize"`
	BackgroundSpeed          float64 `json:"backgroundSpeed" yaml:"backgroundSpeed"`
	SpeedDecay               float64 `json:"speedDecay" yaml:"speedDecay"`
	EnthrallSpeed            float64 `json:"enthrallSpeed" yaml:"enthrallSpeed"`
	EscapeSpeed              float64 `json:"escapeSpeed" yaml:"escapeSpeed"`
	SpookBoost               float64 `json:"spookBoost" yaml:"spookBoost"`
	AvoidBoost               float64 `json:"avoidBoost" yaml:"avoidBoost"`
	MaxAngularVelocity       float64 `json:"maxAngularVelocity" yaml:"maxAngularVelocity"`
	TurnWeight               float64 `json:"turnWeight" yaml:"turnWeight"`
	CreatureObservationRange float64 `json:"creatureObservationRange" yaml:"creatureObservationRange"`
	ObstacleObservationRange float64 `json:"obstacleObservationRange" yaml:"obstacleObservationRange"`
	ContactDistance          float64 `json:"contactDistance" yaml:"contactDistance"`

	// Display
	DisplayObservationRange bool `json:"displayObservationRange" yaml:"displayObservationRange"`
	DisplayTextBox          bool `json:"displayTextBox" yaml:"displayTextBox"`

	// Seed of the flock sampling, 0 picks a random one
	Seed uint64 `json:"seed" yaml:"seed"`
}

func DefaultConfig() *Config {
	s := behavior.DefaultSettings()
	return &Config{
		ViewportWidth:      1280,
		ViewportHeight:     720,
		TextBoxWidthRatio:  0.5,
		TextBoxHeightRatio: 0.4,

		NumBirdsMin:          10,
		NumBirdsMax:          19,
		SizeMin:              0.2,
		SizeMax:              0.7,
		SpeedMin:             0.5,
		SpeedMax:             1,
		RotationAmplitudeMax: 0.5,
		RotationFrequencyMin: 0.05,
		RotationFrequencyMax: 0.2,
		ScaleAmplitudeMax:    0.2,
		ScaleFrequencyMin:    1.0 / 40,
		ScaleFrequencyMax:    1.0 / 20,

		FramesPerSecond:          s.FramesPerSecond,
		ViewportMargin:           s.ViewportMargin,
		BaseBirdSize:             s.BaseSize,
		RadiusPerSize:            s.RadiusPerSize,
		BackgroundSpeed:          s.BackgroundSpeed,
		SpeedDecay:               s.SpeedDecay,
		EnthrallSpeed:            s.EnthrallSpeed,
		EscapeSpeed:              s.EscapeSpeed,
		SpookBoost:               s.SpookBoost,
		AvoidBoost:               s.AvoidBoost,
		MaxAngularVelocity:       s.MaxAngularVelocity,
		TurnWeight:               s.TurnWeight,
		CreatureObservationRange: s.CreatureObservationRange,
		ObstacleObservationRange: s.ObstacleObservationRange,
		ContactDistance:          s.ContactDistance,

		DisplayObservationRange: false,
		DisplayTextBox:          true,
	}
}

// Settings projects the steering tunables of the config.
func (c *Config) Settings() behavior.Settings {
	return behavior.Settings{
		FramesPerSecond:          c.FramesPerSecond,
		ViewportMargin:           c.ViewportMargin,
		BaseSize:                 c.BaseBirdSize,
		RadiusPerSize:            c.RadiusPerSize,
		BackgroundSpeed:          c.BackgroundSpeed,
		SpeedDecay:               c.SpeedDecay,
		EnthrallSpeed:            c.EnthrallSpeed,
		EscapeSpeed:              c.EscapeSpeed,
		SpookBoost:               c.SpookBoost,
		AvoidBoost:               c.AvoidBoost,
		MaxAngularVelocity:       c.MaxAngularVelocity,
		TurnWeight:               c.TurnWeight,
		CreatureObservationRange: c.CreatureObservationRange,
		ObstacleObservationRange: c.ObstacleObservationRange,
		ContactDistance:          c.ContactDistance,
	}
}

// Viewport returns the initial viewport size.
func (c *Config) Viewport() geometry.Size {
	return geometry.Size{Width: c.ViewportWidth, Height: c.ViewportHeight}
}

// Validate checks the constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %s must not be empty", ErrInvalidConfig, c.Viewport())
	}
	if c.NumBirdsMin < 0 || c.NumBirdsMin > c.NumBirdsMax {
		return fmt.Errorf("%w: numBirdsMin %d must be in [0, numBirdsMax=%d]", ErrInvalidConfig, c.NumBirdsMin, c.NumBirdsMax)
	}
	ranges := []struct {
		name   string
		lo, hi float64
	}{
		{"size", c.SizeMin, c.SizeMax},
		{"speed", c.SpeedMin, c.SpeedMax},
		{"rotationFrequency", c.RotationFrequencyMin, c.RotationFrequencyMax},
		{"scaleFrequency", c.ScaleFrequencyMin, c.ScaleFrequencyMax},
	}
	for _, r := range ranges {
		if r.lo > r.hi {
			return fmt.Errorf("%w: %sMin %v is greater than %sMax %v", ErrInvalidConfig, r.name, r.lo, r.name, r.hi)
		}
	}
	if c.SizeMin <= 0 {
		return fmt.Errorf("%w: sizeMin must be > 0, got %v", ErrInvalidConfig, c.SizeMin)
	}
	if c.TextBoxWidthRatio < 0 || c.TextBoxWidthRatio > 1 || c.TextBoxHeightRatio < 0 || c.TextBoxHeightRatio > 1 {
		return fmt.Errorf("%w: text box ratios must be in [0,1]", ErrInvalidConfig)
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file and validates it against the schema.
// An empty schemaFile uses the schema embedded in the binary.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	var (
		sch *jsonschema.Schema
		err error
	)
	if schemaFile == "" {
		sch, err = jsonschema.CompileString(configSchemaURL, configSchema)
	} else {
		sch, err = jsonschema.Compile(schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	isYAML := isYAMLFile(configFile)
	unmarshal := json.Unmarshal
	if isYAML {
		unmarshal = yaml.Unmarshal
	}

	// 3. Validate
	var v interface{}
	if err := unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", configFile, err)
	}
	if v == nil {
		// an empty YAML document is an empty object
		v = map[string]interface{}{}
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveYAML writes the effective configuration, so a run can be reproduced.
func (c *Config) SaveYAML(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

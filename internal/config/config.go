package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Setting keys, shared by the config file, VPCGAP_* env vars and bound flags
const (
	KeyProfile  = "profile"
	KeyRegion   = "region"
	KeyOutput   = "output"
	KeyCount    = "count"
	KeyAZSource = "az_source"
	KeyTimeout  = "timeout"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Availability zone sources
const (
	AZFromSubnets = "subnets"
	AZFromRegion  = "region"
	AZNone        = "none"
)

// EnvPrefix is the prefix of environment overrides, e.g. VPCGAP_OUTPUT=json
const EnvPrefix = "VPCGAP"

var (
	outputs   = []string{OutputTable, OutputJSON, OutputYAML}
	azSources = []string{AZFromSubnets, AZFromRegion, AZNone}
)

// Settings is the resolved configuration of one run
type Settings struct {
	Profile  string        `json:"profile,omitempty" yaml:"profile,omitempty"`
	Region   string        `json:"region,omitempty" yaml:"region,omitempty"`
	Output   string        `json:"output,omitempty" yaml:"output,omitempty"`
	Count    int           `json:"count,omitempty" yaml:"count,omitempty"`
	AZSource string        `json:"az_source,omitempty" yaml:"az_source,omitempty"`
	Timeout  time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		Output:   OutputTable,
		Count:    3,
		AZSource: AZFromSubnets,
		Timeout:  30 * time.Second,
	}
}

// GetConfigDir returns the config directory path ($XDG_CONFIG_HOME/vpcgap)
func GetConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vpcgap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vpcgap"
	}
	return filepath.Join(home, ".config", "vpcgap")
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load resolves settings from v. Flags bound to v win over VPCGAP_* env vars,
// which win over the config file at path, which wins over Defaults.
func Load(v *viper.Viper, path string) (*Settings, error) {
	def := Defaults()
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyCount, def.Count)
	v.SetDefault(KeyAZSource, def.AZSource)
	v.SetDefault(KeyTimeout, def.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	s := &Settings{
		Profile:  v.GetString(KeyProfile),
		Region:   v.GetString(KeyRegion),
		Output:   strings.ToLower(v.GetString(KeyOutput)),
		Count:    v.GetInt(KeyCount),
		AZSource: strings.ToLower(v.GetString(KeyAZSource)),
		Timeout:  v.GetDuration(KeyTimeout),
	}

	// Fall back to the standard AWS variables so they show up in output
	if s.Profile == "" {
		s.Profile = os.Getenv("AWS_PROFILE")
	}
	if s.Region == "" {
		s.Region = os.Getenv("AWS_REGION")
		if s.Region == "" {
			s.Region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks enumerated and numeric settings
func (s *Settings) Validate() error {
	if !slices.Contains(outputs, s.Output) {
		return fmt.Errorf("invalid output %q: must be one of %s", s.Output, strings.Join(outputs, ", "))
	}
	if !slices.Contains(azSources, s.AZSource) {
		return fmt.Errorf("invalid az source %q: must be one of %s", s.AZSource, strings.Join(azSources, ", "))
	}
	if s.Count < 0 {
		return fmt.Errorf("invalid count %d: must not be negative", s.Count)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", s.Timeout)
	}
	return nil
}

// LoadFile reads only the config file, returning empty settings if it does not exist
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &s, nil
}

// SaveFile writes settings to path, creating the directory if needed
func SaveFile(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Set assigns a single key from its string form
func (s *Settings) Set(key, value string) error {
	switch strings.ReplaceAll(strings.ToLower(key), "-", "_") {
	case KeyProfile:
		s.Profile = value
	case KeyRegion:
		s.Region = value
	case KeyOutput:
		v := strings.ToLower(value)
		if !slices.Contains(outputs, v) {
			return fmt.Errorf("invalid output %q: must be one of %s", value, strings.Join(outputs, ", "))
		}
		s.Output = v
	case KeyCount:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count %q: must be a non-negative integer", value)
		}
		s.Count = n
	case KeyAZSource:
		v := strings.ToLower(value)
		if !slices.Contains(azSources, v) {
			return fmt.Errorf("invalid az source %q: must be one of %s", value, strings.Join(azSources, ", "))
		}
		s.AZSource = v
	case KeyTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout %q: must be a positive duration", value)
		}
		s.Timeout = d
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

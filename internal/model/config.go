package model

import "time"

// Config holds the full runtime configuration.
// Hierarchy (highest to lowest priority): CLI flags, RATIOMETER_* env
// vars, config file (~/.ratiometer/config.yaml), defaults.
type Config struct {
	Weights      WeightsConfig      `yaml:"weights" mapstructure:"weights"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
}

// WeightsConfig holds the scoring coefficients. The defaults reproduce
// the reference formula exactly; changing them changes every score.
type WeightsConfig struct {
	EmotionalPenalty float64 `yaml:"emotional_penalty" mapstructure:"emotional_penalty"` // Points subtracted per emotional marker
	LogicalBonus     float64 `yaml:"logical_bonus" mapstructure:"logical_bonus"`         // Points added per logical connector
	ScientificBonus  float64 `yaml:"scientific_bonus" mapstructure:"scientific_bonus"`   // Points added per scientific term
	StructureBonus   float64 `yaml:"structure_bonus" mapstructure:"structure_bonus"`     // Multiplier for structure quality
}

// CacheConfig controls result caching.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // Disk cache directory ("" = memory only)
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles outbound LLM API requests.
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig configures the optional verdict explanation.
type LLMConfig struct {
	Provider   string `yaml:"provider" mapstructure:"provider"` // "" = disabled
	Model      string `yaml:"model" mapstructure:"model"`
	APIKey     string `yaml:"-" mapstructure:"-"` // Never persisted to config files
	BaseURL    string `yaml:"base_url" mapstructure:"base_url"`
	Timeout    int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens  int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	HTTPProxy  string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// DefaultWeights returns the reference scoring coefficients.
func DefaultWeights() WeightsConfig {
	return WeightsConfig{
		EmotionalPenalty: 5,
		LogicalBonus:     3,
		ScientificBonus:  2,
		StructureBonus:   10,
	}
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: DefaultWeights(),
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}

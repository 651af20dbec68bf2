package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the robotreadme tool.
type Config struct {
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Cache     CacheConfig     `yaml:"cache"`
	Count     CountConfig     `yaml:"count"`
	Render    RenderConfig    `yaml:"render"`
	Ask       AskConfig       `yaml:"ask"`
	Congress  CongressConfig  `yaml:"congress"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TokenizerConfig selects the tokenizer used for counting.
type TokenizerConfig struct {
	Model   string `yaml:"model"`   // e.g., "gpt2", "cl100k_base", "whitespace"
	Backend string `yaml:"backend"` // "remote" (download on first use) or "offline" (embedded)
}

// CacheConfig holds token count cache configuration.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"` // bbolt file; empty means the user cache dir
	MemorySize int    `yaml:"memory_size"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// CountConfig holds batch counting configuration.
type CountConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// RenderConfig holds OpenAPI rendering configuration.
type RenderConfig struct {
	Output         string `yaml:"output"`
	MaxDescription int    `yaml:"max_description"`
}

// AskConfig holds chat-completion configuration.
type AskConfig struct {
	Model               string `yaml:"model"`
	APIKeyEnv           string `yaml:"api_key_env"`
	BaseURL             string `yaml:"base_url"`
	SystemPrompt        string `yaml:"system_prompt"`
	Instruction         string `yaml:"instruction"`
	MaxCompletionTokens int    `yaml:"max_completion_tokens"`
	Output              string `yaml:"output"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
}

// CongressConfig holds legislative API configuration.
type CongressConfig struct {
	BaseURL        string  `yaml:"base_url"`
	APIKeyEnv      string  `yaml:"api_key_env"`
	Query          string  `yaml:"query"`
	Limit          int     `yaml:"limit"`
	SummaryChars   int     `yaml:"summary_chars"`
	RequestsPerSec float64 `yaml:"requests_per_sec"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultInstruction is appended to the input file by the ask command.
const DefaultInstruction = "use the api doc above to generate a script I will find interesting. I have an API key. Show me find important insights about real things happening recently. Do more than just the summary text. Try to connect things and give me a truly interesting script."

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: TokenizerConfig{
			Model:   "gpt2",
			Backend: "remote",
		},
		Cache: CacheConfig{
			Enabled:    false,
			MemorySize: 256,
			TTLSeconds: 600,
		},
		Count: CountConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.json", "**/*.yaml", "**/*.yml", "**/*.go", "**/*.py"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/.robotreadme/**"},
		},
		Render: RenderConfig{
			Output:         "llm.txt",
			MaxDescription: 2000,
		},
		Ask: AskConfig{
			Model:               "o1",
			APIKeyEnv:           "OPENAI_API_KEY",
			SystemPrompt:        "You are a helpful assistant.",
			Instruction:         DefaultInstruction,
			MaxCompletionTokens: 10000,
			Output:              "openai_response.txt",
			TimeoutSeconds:      300,
		},
		Congress: CongressConfig{
			BaseURL:        "https://api.congress.gov/v3",
			APIKeyEnv:      "CONGRESS_API_KEY",
			Query:          "environmental conservation",
			Limit:          3,
			SummaryChars:   400,
			RequestsPerSec: 1,
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for robotreadme.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "robotreadme.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".robotreadme", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the token count database.
// An explicit path wins; otherwise the file lives under the user cache dir.
func (c *Config) CacheDBPath() (string, error) {
	if c.Cache.Path != "" {
		return c.Cache.Path, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "robotreadme", "counts.db"), nil
}

// EnsureDir ensures the parent directory of path exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

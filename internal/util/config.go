package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"rebalancer/internal/logger"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	PriceSourceYahoo  = "yahoo"
	PriceSourceAlpaca = "alpaca"
	PriceSourceFile   = "file"
)

type Config struct {
	Db     DbSecrets     `json:"db"`
	Alpaca AlpacaSecrets `json:"alpaca"`
	SES    SESSecrets    `json:"ses"`

	PriceSource     string            `json:"priceSource"`
	PriceFile       string            `json:"priceFile"`
	MfApiBaseUrl    string            `json:"mfApiBaseUrl"`
	ExchangeSuffix  string            `json:"exchangeSuffix"`
	SymbolOverrides map[string]string `json:"symbolOverrides"`
	SchemeIds       map[string]string `json:"schemeIds"`
	DisplayNames    map[string]string `json:"displayNames"`

	PriceRequestIntervalMs  int64   `json:"priceRequestIntervalMs"`
	AllocationMarginPercent float64 `json:"allocationMarginPercent"`
	FuzzyMatchThreshold     float64 `json:"fuzzyMatchThreshold"`
	MinimumTargetWeight     float64 `json:"minimumTargetWeight"`
	RefreshNonTargetPrices  bool    `json:"refreshNonTargetPrices"`

	Port int `json:"port"`
}

type DbSecrets struct {
	Url       string `json:"url"`
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

// Enabled reports whether any connection settings were provided. Runs are
// only persisted when a database is configured.
func (t DbSecrets) Enabled() bool {
	return t.Url != "" || t.Host != ""
}

func (t DbSecrets) ToConnectionStr() string {
	if t.Url != "" {
		return t.Url
	}
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

func (a AlpacaSecrets) Enabled() bool {
	return a.ApiKey != "" && a.ApiSecret != ""
}

type SESSecrets struct {
	Region    string `json:"region"`
	FromEmail string `json:"fromEmail"`
}

func (s SESSecrets) Enabled() bool {
	return s.Region != "" && s.FromEmail != ""
}

func DefaultConfig() Config {
	return Config{
		PriceSource:             PriceSourceYahoo,
		MfApiBaseUrl:            "https://api.mfapi.in",
		ExchangeSuffix:          ".NS",
		SymbolOverrides:         map[string]string{},
		SchemeIds:               map[string]string{},
		DisplayNames:            map[string]string{},
		PriceRequestIntervalMs:  1000,
		AllocationMarginPercent: 2.0,
		FuzzyMatchThreshold:     90,
		MinimumTargetWeight:     0.01,
		Port:                    3009,
	}
}

func (c Config) PriceRequestInterval() time.Duration {
	return time.Duration(c.PriceRequestIntervalMs) * time.Millisecond
}

func configFileForEnv() string {
	switch strings.ToLower(os.Getenv(logger.EnvVar)) {
	case "dev":
		return "config-dev.json"
	case "test":
		return "config-test.json"
	default:
		return "config.json"
	}
}

// LoadConfig reads the JSON config at path, or the per-environment default
// file when path is empty. A missing default file is not an error. Values
// from the environment (and .env) override secrets in the file.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	config := DefaultConfig()

	configFile := path
	if configFile == "" {
		configFile = configFileForEnv()
	}

	f, err := os.ReadFile(configFile)
	if err != nil {
		if path != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not open %s: %w", configFile, err)
		}
	} else {
		err = json.Unmarshal(f, &config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	return &config, nil
}

func applyEnvOverrides(config *Config) {
	overrides := []struct {
		key    string
		target *string
	}{
		{"REBALANCER_DB_URL", &config.Db.Url},
		{"ALPACA_API_KEY", &config.Alpaca.ApiKey},
		{"ALPACA_API_SECRET", &config.Alpaca.ApiSecret},
		{"ALPACA_ENDPOINT", &config.Alpaca.Endpoint},
		{"SES_REGION", &config.SES.Region},
		{"SES_FROM_EMAIL", &config.SES.FromEmail},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.target = v
		}
	}
}

// applyDefaults fills zero values left by a partial config file.
func applyDefaults(config *Config) {
	defaults := DefaultConfig()
	if config.PriceSource == "" {
		config.PriceSource = defaults.PriceSource
	}
	if config.MfApiBaseUrl == "" {
		config.MfApiBaseUrl = defaults.MfApiBaseUrl
	}
	if config.ExchangeSuffix == "" {
		config.ExchangeSuffix = defaults.ExchangeSuffix
	}
	if config.SymbolOverrides == nil {
		config.SymbolOverrides = map[string]string{}
	}
	if config.SchemeIds == nil {
		config.SchemeIds = map[string]string{}
	}
	if config.DisplayNames == nil {
		config.DisplayNames = map[string]string{}
	}
	if config.PriceRequestIntervalMs < 0 {
		config.PriceRequestIntervalMs = defaults.PriceRequestIntervalMs
	}
	if config.FuzzyMatchThreshold <= 0 {
		config.FuzzyMatchThreshold = defaults.FuzzyMatchThreshold
	}
	if config.MinimumTargetWeight < 0 {
		config.MinimumTargetWeight = defaults.MinimumTargetWeight
	}
	if config.Port == 0 {
		config.Port = defaults.Port
	}
}

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Worker   WorkerConfig   `yaml:"worker"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	Migrate  bool   `yaml:"migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	QuotesTopic        string   `yaml:"quotes_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishRetries     int      `yaml:"publish_retries"`
}

// ConsumerTopic is the topic the worker reads: notifications when
// configured, the quote events otherwise.
func (k KafkaConfig) ConsumerTopic() string {
	if k.NotificationsTopic != "" {
		return k.NotificationsTopic
	}
	return k.QuotesTopic
}

type BookingConfig struct {
	QuoteTTLMinutes     int    `yaml:"quote_ttl_minutes"`
	LockTTLSeconds      int    `yaml:"lock_ttl_seconds"`
	UnitCacheTTLSeconds int    `yaml:"unit_cache_ttl_seconds"`
	DefaultCurrency     string `yaml:"default_currency"`
	MaxNights           int    `yaml:"max_nights"`
}

type WorkerConfig struct {
	ExpirationSweepMinutes int `yaml:"expiration_sweep_minutes"`
}

// PricingConfig describes the adjusters attached to the price adjustment
// extension point. Adjusters run in the order they are listed.
type PricingConfig struct {
	FailurePolicy string           `yaml:"failure_policy"`
	MaxAdjusters  int              `yaml:"max_adjusters"`
	Adjusters     []AdjusterConfig `yaml:"adjusters"`
}

// AdjusterConfig is a tagged union keyed by Type. Only the fields relevant
// to the type are read.
type AdjusterConfig struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`

	// long_stay_flat_rate; nil means the adjuster default
	MinDays   *int   `yaml:"min_days"`
	FlatCents *int64 `yaml:"flat_cents"`

	// children_discount
	MaxAge  int `yaml:"max_age"`
	Percent int `yaml:"percent"`

	// occupancy_surcharge
	PerGuestNightCents int64 `yaml:"per_guest_night_cents"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

const (
	FailurePolicyClamp  = "clamp"
	FailurePolicySkip   = "skip"
	FailurePolicyReject = "reject"
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fills in defaults and rejects values the pricing pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Booking.QuoteTTLMinutes <= 0 {
		c.Booking.QuoteTTLMinutes = 30
	}
	if c.Booking.LockTTLSeconds <= 0 {
		c.Booking.LockTTLSeconds = 10
	}
	if c.Booking.UnitCacheTTLSeconds <= 0 {
		c.Booking.UnitCacheTTLSeconds = 60
	}
	if c.Booking.DefaultCurrency == "" {
		c.Booking.DefaultCurrency = "USD"
	}
	if c.Booking.MaxNights <= 0 {
		c.Booking.MaxNights = 365
	}
	if c.Kafka.PublishRetries <= 0 {
		c.Kafka.PublishRetries = 3
	}
	if c.Worker.ExpirationSweepMinutes <= 0 {
		c.Worker.ExpirationSweepMinutes = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	switch c.Pricing.FailurePolicy {
	case "":
		c.Pricing.FailurePolicy = FailurePolicyClamp
	case FailurePolicyClamp, FailurePolicySkip, FailurePolicyReject:
	default:
		return fmt.Errorf("unknown pricing failure policy %q", c.Pricing.FailurePolicy)
	}
	if c.Pricing.MaxAdjusters <= 0 {
		c.Pricing.MaxAdjusters = 32
	}
	if len(c.Pricing.Adjusters) > c.Pricing.MaxAdjusters {
		return fmt.Errorf("%d adjusters configured, max is %d", len(c.Pricing.Adjusters), c.Pricing.MaxAdjusters)
	}
	for i, a := range c.Pricing.Adjusters {
		if a.Type == "" {
			return fmt.Errorf("pricing adjuster #%d: type is required", i)
		}
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/storage"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Policy    PolicyConfig    `yaml:"policy"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	SeedItems []SeedItem      `yaml:"seed_items" ignored:"true"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host" envconfig:"SERVER_HOST"`
	Port int    `yaml:"port" envconfig:"SERVER_PORT"`
}

// StorageConfig selects the persistence backend for the inventory and ledger
type StorageConfig struct {
	Type  string `yaml:"type" envconfig:"STORAGE_TYPE"`   // "memory", "file" or "postgres"
	Dir   string `yaml:"dir" envconfig:"STORAGE_DIR"`     // For file storage
	Table string `yaml:"table" envconfig:"STORAGE_TABLE"` // For postgres storage
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" envconfig:"DB_HOST"`
	Port     int    `yaml:"port" envconfig:"DB_PORT"`
	User     string `yaml:"user" envconfig:"DB_USER"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD"`
	Database string `yaml:"database" envconfig:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" envconfig:"DB_SSL_MODE"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" envconfig:"LOG_FORMAT"` // "json" or "text"
}

// PolicyConfig contains the rental rules
type PolicyConfig struct {
	StandardLoanMonths int    `yaml:"standard_loan_months" envconfig:"STANDARD_LOAN_MONTHS"`
	PriorityLoanMonths int    `yaml:"priority_loan_months" envconfig:"PRIORITY_LOAN_MONTHS"`
	RetentionDays      int    `yaml:"retention_days" envconfig:"RETENTION_DAYS"`
	TimeZone           string `yaml:"time_zone" envconfig:"TIME_ZONE"` // IANA name that decides "today"
}

// SchedulerConfig contains cron schedule settings (seconds field first)
type SchedulerConfig struct {
	PruneHistory  string `yaml:"prune_history" envconfig:"SCHEDULE_PRUNE_HISTORY"`
	ReportOverdue string `yaml:"report_overdue" envconfig:"SCHEDULE_REPORT_OVERDUE"`
}

// SeedItem is a catalogue entry written on first start
type SeedItem struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read config file")
	}

	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errs.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables if present
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errs.Wrap(err, "failed to apply environment overrides")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errs.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	// Server
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errs.Newf("invalid server port: %d", c.Server.Port)
	}

	// Storage
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
	switch c.Storage.Type {
	case "":
		c.Storage.Type = storage.TypeMemory
	case storage.TypeMemory:
	case storage.TypeFile:
		if c.Storage.Dir == "" {
			return errs.New("storage directory is required for file storage")
		}
	case storage.TypePostgres:
		if c.Database.Host == "" {
			return errs.New("database host is required")
		}
		if c.Database.User == "" {
			return errs.New("database user is required")
		}
		if c.Database.Database == "" {
			return errs.New("database name is required")
		}
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	default:
		return errs.Newf("unknown storage type: %s", c.Storage.Type)
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Policy defaults
	if c.Policy.StandardLoanMonths == 0 {
		c.Policy.StandardLoanMonths = 1
	}
	if c.Policy.PriorityLoanMonths == 0 {
		c.Policy.PriorityLoanMonths = 3
	}
	if c.Policy.RetentionDays == 0 {
		c.Policy.RetentionDays = 30
	}
	if c.Policy.StandardLoanMonths < 0 || c.Policy.PriorityLoanMonths < 0 {
		return errs.New("loan months must be positive")
	}
	if c.Policy.RetentionDays < 0 {
		return errs.New("retention days must be positive")
	}
	if c.Policy.TimeZone == "" {
		c.Policy.TimeZone = "UTC"
	}
	if _, err := time.LoadLocation(c.Policy.TimeZone); err != nil {
		return errs.Wrapf(err, "invalid time zone %q", c.Policy.TimeZone)
	}

	// Scheduler defaults
	if c.Scheduler.PruneHistory == "" {
		c.Scheduler.PruneHistory = "0 0 1 * * *" // 1 AM daily
	}
	if c.Scheduler.ReportOverdue == "" {
		c.Scheduler.ReportOverdue = "0 0 8 * * *" // 8 AM daily
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for name, spec := range map[string]string{
		"prune_history":  c.Scheduler.PruneHistory,
		"report_overdue": c.Scheduler.ReportOverdue,
	} {
		if _, err := parser.Parse(spec); err != nil {
			return errs.Wrapf(err, "invalid %s schedule %q", name, spec)
		}
	}

	// Seed catalogue
	seen := make(map[string]bool, len(c.SeedItems))
	for i, item := range c.SeedItems {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
			return errs.Newf("seed item %d needs an id and a name", i)
		}
		if item.Quantity < 0 {
			return errs.Newf("seed item %s has a negative quantity", item.ID)
		}
		if seen[item.ID] {
			return errs.Newf("duplicate seed item: %s", item.ID)
		}
		seen[item.ID] = true
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// StorageOptions maps the storage and database sections onto a backend config
func (c *Config) StorageOptions() storage.Config {
	opts := storage.Config{
		Type:  c.Storage.Type,
		Dir:   c.Storage.Dir,
		Table: c.Storage.Table,
	}
	if c.Storage.Type == storage.TypePostgres {
		opts.DSN = c.GetDatabaseConnectionString()
	}
	return opts
}

// Location returns the configured time zone; call after Validate
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Policy.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) RetentionWindow() time.Duration {
	return time.Duration(c.Policy.RetentionDays) * 24 * time.Hour
}

// Catalogue returns the seed items, or the built-in catalogue when none are configured
func (c *Config) Catalogue() []domain.EquipmentItem {
	if len(c.SeedItems) == 0 {
		return domain.DefaultCatalogue()
	}
	items := make([]domain.EquipmentItem, 0, len(c.SeedItems))
	for _, s := range c.SeedItems {
		items = append(items, domain.EquipmentItem{
			ID:            domain.ItemID(strings.TrimSpace(s.ID)),
			Name:          strings.TrimSpace(s.Name),
			TotalQuantity: s.Quantity,
		})
	}
	return items
}

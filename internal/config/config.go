package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/light-alarm/internal/bulb"
	"github.com/oshokin/light-alarm/internal/logger"
)

// Config holds the settings shared by the light-alarm binaries.
type Config struct {
	// GRPCAddress is the gRPC address of the administrative service.
	GRPCAddress string `yaml:"grpc_addr"`
	// HTTPAddress is the optional listen address of the HTTP API.
	HTTPAddress string `yaml:"http_addr,omitempty"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum level of written log messages.
	LogLevel string `yaml:"log_level"`
	// TickInterval is the period of the scheduler loop.
	TickInterval time.Duration `yaml:"tick_interval"`
	// ResyncInterval is the longest period between two hardware clock readings.
	ResyncInterval time.Duration `yaml:"resync_interval"`
	// Storage selects where alarms are persisted.
	Storage Storage `yaml:"storage"`
	// RTCFile keeps the clock correction across restarts.
	RTCFile string `yaml:"rtc_file"`
	// NTP configures the network time source.
	NTP NTP `yaml:"ntp"`
	// MQTT configures the bulb transport. Without a broker, commands are only logged.
	MQTT MQTT `yaml:"mqtt"`
	// Bulbs maps aliases to bulb identities.
	Bulbs map[string]bulb.ID `yaml:"bulbs"`
}

// Storage selects the alarm record backend.
type Storage struct {
	// Driver is StorageFile or StorageSQLite.
	Driver string `yaml:"driver"`
	// Path is the record directory or the database file.
	Path string `yaml:"path"`
}

// NTP configures the network time source.
type NTP struct {
	// Server is the NTP host.
	Server string `yaml:"server"`
	// Attempts is the number of queries per synchronization.
	Attempts int `yaml:"attempts"`
	// Backoff is the pause between two queries.
	Backoff time.Duration `yaml:"backoff"`
	// Timeout bounds a single query.
	Timeout time.Duration `yaml:"timeout"`
	// Disabled turns network time off; the hardware clock is used as is.
	Disabled bool `yaml:"disabled"`
}

// MQTT configures the broker bulb commands are published to.
type MQTT struct {
	// Broker is the broker URL, empty to only log commands.
	Broker string `yaml:"broker,omitempty"`
	// ClientID identifies the gateway on the broker.
	ClientID string `yaml:"client_id,omitempty"`
	// Username is optional.
	Username string `yaml:"username,omitempty"`
	// Password is optional.
	Password string `yaml:"password,omitempty"`
	// TopicPrefix precedes the bulb address in command topics.
	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	// QoS is the MQTT quality of service of commands.
	QoS byte `yaml:"qos,omitempty"`
}

// Storage drivers.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "light-alarm-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultTickInterval is the default scheduler loop period.
	DefaultTickInterval = 100 * time.Millisecond

	// DefaultResyncInterval is the default hardware clock resync period.
	DefaultResyncInterval = time.Hour

	// DefaultRecordsDir is the default record directory of the file driver.
	DefaultRecordsDir = "alarms"

	// DefaultDatabaseFile is the default database of the sqlite driver.
	DefaultDatabaseFile = "alarms.db"

	// DefaultRTCFile is the default clock correction file.
	DefaultRTCFile = "rtc-offset"

	// DefaultMQTTClientID is the default broker client id.
	DefaultMQTTClientID = "light-alarm"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// maxQoS is the highest MQTT quality of service.
	maxQoS = 2
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when the gRPC address is missing.
	errServerSocketRequired = errors.New("grpc address must be provided")
	// errUnknownStorageDriver is returned for unsupported storage drivers.
	errUnknownStorageDriver = errors.New("unknown storage driver")
	// errInvalidQoS is returned when the MQTT QoS is out of range.
	errInvalidQoS = errors.New("mqtt qos must be 0, 1 or 2")
)

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file may hold broker credentials.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills defaults.
//
//nolint:cyclop // Flat list of independent checks.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.GRPCAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.GRPCAddress); err != nil {
		return fmt.Errorf("invalid grpc socket: %w", err)
	}

	if settings.HTTPAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.HTTPAddress); err != nil {
			return fmt.Errorf("invalid http socket: %w", err)
		}
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", settings.LogLevel)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.TickInterval <= 0 {
		settings.TickInterval = DefaultTickInterval
	}

	if settings.ResyncInterval <= 0 {
		settings.ResyncInterval = DefaultResyncInterval
	}

	if settings.RTCFile == "" {
		settings.RTCFile = DefaultRTCFile
	}

	if err := validateStorage(&settings.Storage); err != nil {
		return err
	}

	if err := validateMQTT(&settings.MQTT); err != nil {
		return err
	}

	if _, err := settings.Registry(); err != nil {
		return fmt.Errorf("invalid bulbs: %w", err)
	}

	return nil
}

// Registry builds the alias registry of the configured bulbs.
func (c *Config) Registry() (*bulb.Registry, error) {
	return bulb.NewRegistry(c.Bulbs)
}

// validateStorage checks the storage driver and fills the default path.
func validateStorage(storage *Storage) error {
	switch storage.Driver {
	case "", StorageFile:
		storage.Driver = StorageFile

		if storage.Path == "" {
			storage.Path = DefaultRecordsDir
		}
	case StorageSQLite:
		if storage.Path == "" {
			storage.Path = DefaultDatabaseFile
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownStorageDriver, storage.Driver)
	}

	return nil
}

// validateMQTT checks the broker URL and fills defaults.
func validateMQTT(m *MQTT) error {
	if m.Broker == "" {
		return nil
	}

	if _, err := url.ParseRequestURI(m.Broker); err != nil {
		return fmt.Errorf("invalid mqtt broker URI: %w", err)
	}

	if m.QoS > maxQoS {
		return errInvalidQoS
	}

	if m.ClientID == "" {
		m.ClientID = DefaultMQTTClientID
	}

	if m.TopicPrefix == "" {
		m.TopicPrefix = bulb.DefaultTopicPrefix
	}

	return nil
}

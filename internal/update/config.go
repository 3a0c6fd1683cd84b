package update

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/tasklist/internal/storage"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	StorageBackend         storage.Backend `yaml:"storage_backend"`
	DatabasePath           string          `yaml:"database_path"`
	StateFilePath          string          `yaml:"state_file"`
	StorageKey             string          `yaml:"storage_key"`
	NotificationSeconds    int             `yaml:"notification_seconds"`
	NotificationExitMillis int             `yaml:"notification_exit_millis"`
	RemovalDelayMillis     int             `yaml:"removal_delay_millis"`
	DesktopNotifications   bool            `yaml:"desktop_notifications"`
	TimerBuffer            int             `yaml:"timer_buffer"`
	LogFile                string          `yaml:"log_file"`
	Debug                  bool            `yaml:"debug"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StorageBackend:         storage.BackendSQLite,
		DatabasePath:           "tasklist.db",
		StateFilePath:          ".tasklist_state.json",
		StorageKey:             storage.DefaultSlotKey,
		NotificationSeconds:    3,
		NotificationExitMillis: 300,
		RemovalDelayMillis:     300,
		DesktopNotifications:   false,
		TimerBuffer:            64,
	}
}

// ConfigPathFromEnv returns the YAML config path, empty when unset.
func ConfigPathFromEnv() string {
	return strings.TrimSpace(os.Getenv("TASKLIST_CONFIG"))
}

// RuntimeConfigFromFile overlays the YAML file at path on base. Keys absent
// from the file keep their base value; a missing file is not an error.
func RuntimeConfigFromFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.withFallbacks(base), cfg.Validate()
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKLIST_STORAGE_BACKEND"); ok {
		cfg.StorageBackend = storage.Backend(strings.ToLower(v))
	}
	if v, ok := getEnvString("TASKLIST_DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvString("TASKLIST_STATE_FILE"); ok {
		cfg.StateFilePath = v
	}
	if v, ok := getEnvString("TASKLIST_STORAGE_KEY"); ok {
		cfg.StorageKey = v
	}
	if v, ok := getEnvInt("TASKLIST_NOTIFICATION_SECONDS"); ok && v > 0 {
		cfg.NotificationSeconds = v
	}
	if v, ok := getEnvInt("TASKLIST_NOTIFICATION_EXIT_MS"); ok && v > 0 {
		cfg.NotificationExitMillis = v
	}
	if v, ok := getEnvInt("TASKLIST_REMOVAL_DELAY_MS"); ok && v > 0 {
		cfg.RemovalDelayMillis = v
	}
	if v, ok := getEnvBool("TASKLIST_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TASKLIST_TIMER_BUFFER"); ok && v > 0 {
		cfg.TimerBuffer = v
	}
	if v, ok := getEnvString("TASKLIST_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TASKLIST_DEBUG"); ok {
		cfg.Debug = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	if !c.StorageBackend.IsValid() {
		return fmt.Errorf("config: unknown storage backend %q", c.StorageBackend)
	}
	return nil
}

func (c RuntimeConfig) NotificationDisplay() time.Duration {
	return time.Duration(c.NotificationSeconds) * time.Second
}

func (c RuntimeConfig) NotificationExit() time.Duration {
	return time.Duration(c.NotificationExitMillis) * time.Millisecond
}

func (c RuntimeConfig) RemovalDelay() time.Duration {
	return time.Duration(c.RemovalDelayMillis) * time.Millisecond
}

// withFallbacks restores base values for numeric fields a file set to zero or
// below, and for an emptied storage key.
func (c RuntimeConfig) withFallbacks(base RuntimeConfig) RuntimeConfig {
	if c.NotificationSeconds <= 0 {
		c.NotificationSeconds = base.NotificationSeconds
	}
	if c.NotificationExitMillis <= 0 {
		c.NotificationExitMillis = base.NotificationExitMillis
	}
	if c.RemovalDelayMillis <= 0 {
		c.RemovalDelayMillis = base.RemovalDelayMillis
	}
	if c.TimerBuffer <= 0 {
		c.TimerBuffer = base.TimerBuffer
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		c.StorageKey = base.StorageKey
	}
	return c
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

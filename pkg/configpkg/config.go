// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environement  string `mapstructure:"GO_ENV"`

	SyncEnabled   bool   `mapstructure:"SYNC_ENABLED"`
	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisTLS      bool   `mapstructure:"REDIS_TLS"`
	SyncChannel   string `mapstructure:"SYNC_CHANNEL"`
	// NodeID pins the node identity; a random UUID is used when empty.
	NodeID string `mapstructure:"NODE_ID"`

	// Zero intervals disable the corresponding periodic task.
	BalanceSyncInterval     time.Duration `mapstructure:"BALANCE_SYNC_INTERVAL"`
	LeaderboardSyncInterval time.Duration `mapstructure:"LEADERBOARD_SYNC_INTERVAL"`
	ReconcileInterval       time.Duration `mapstructure:"RECONCILE_INTERVAL"`
	SyncCooldown            time.Duration `mapstructure:"SYNC_COOLDOWN"`

	LogToConsole          bool          `mapstructure:"LOG_TO_CONSOLE"`
	LogToFile             bool          `mapstructure:"LOG_TO_FILE"`
	LogFilePath           string        `mapstructure:"LOG_FILE_PATH"`
	LogWriteInterval      time.Duration `mapstructure:"LOG_WRITE_INTERVAL"`
	LogReplicationEnabled bool          `mapstructure:"LOG_REPLICATION_ENABLED"`

	AutoRegisterUsers    bool          `mapstructure:"AUTO_REGISTER_USERS"`
	WalletEntriesPerPage int           `mapstructure:"WALLET_ENTRIES_PER_PAGE"`
	TopsUpdateInterval   time.Duration `mapstructure:"TOPS_UPDATE_INTERVAL"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

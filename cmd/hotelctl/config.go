package main

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"hotel_manager/internal/shared"
)

const (
	configFileName = "hotelctl"
	configFileType = "yaml"
	envPrefix      = "HOTEL"

	cfgKeyAppEnv      = "app_env"
	cfgKeyLogLevel    = "log_level"
	cfgKeyDriver      = "store_driver"
	cfgKeySQLitePath  = "sqlite_path"
	cfgKeyMySQLDSN    = "mysql_dsn"
	cfgKeyRedisAddr   = "redis_addr"
	cfgKeyRedisDB     = "redis_db"
	cfgKeyRedisPass   = "redis_password"
	cfgKeyCacheTTL    = "cache_ttl_seconds"
	cfgKeyRecheckEdit = "recheck_availability_on_update"
)

// loadConfig layers, lowest first: the service environment (shared.Load),
// the YAML file, then HOTEL_* variables. A missing default file is not an
// error; a missing --config file is.
func loadConfig(path string) (shared.Config, error) {
	base := shared.Load()
	// the CLI is chatty only when asked
	if base.LogLevel == "info" {
		base.LogLevel = "warn"
	}

	v := viper.New()
	v.SetDefault(cfgKeyAppEnv, base.AppEnv)
	v.SetDefault(cfgKeyLogLevel, base.LogLevel)
	v.SetDefault(cfgKeyDriver, base.StoreDriver)
	v.SetDefault(cfgKeySQLitePath, base.SQLitePath)
	v.SetDefault(cfgKeyMySQLDSN, base.MySQLDSN)
	v.SetDefault(cfgKeyRedisAddr, base.RedisAddr)
	v.SetDefault(cfgKeyRedisDB, base.RedisDB)
	v.SetDefault(cfgKeyRedisPass, base.RedisPass)
	v.SetDefault(cfgKeyCacheTTL, int(base.CacheTTL/time.Second))
	v.SetDefault(cfgKeyRecheckEdit, base.RecheckOnEdit)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return shared.Config{}, errors.Wrapf(err, "read config %s", path)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return shared.Config{}, errors.Wrap(err, "read config")
			}
		}
	}

	cfg := base
	cfg.AppEnv = v.GetString(cfgKeyAppEnv)
	cfg.LogLevel = v.GetString(cfgKeyLogLevel)
	cfg.StoreDriver = strings.ToLower(v.GetString(cfgKeyDriver))
	cfg.SQLitePath = v.GetString(cfgKeySQLitePath)
	cfg.MySQLDSN = v.GetString(cfgKeyMySQLDSN)
	cfg.RedisAddr = v.GetString(cfgKeyRedisAddr)
	cfg.RedisDB = v.GetInt(cfgKeyRedisDB)
	cfg.RedisPass = v.GetString(cfgKeyRedisPass)
	cfg.CacheTTL = time.Duration(v.GetInt(cfgKeyCacheTTL)) * time.Second
	cfg.RecheckOnEdit = v.GetBool(cfgKeyRecheckEdit)

	if err := cfg.Validate(); err != nil {
		return shared.Config{}, err
	}
	return cfg, nil
}

// Package config загружает настройки клиента из YAML-файла и переменных
// окружения SDGB_* через viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
	"github.com/iudanet/sdgb/internal/client/retry"
	"github.com/iudanet/sdgb/internal/client/session"
	"github.com/iudanet/sdgb/internal/crypto"
	"github.com/iudanet/sdgb/internal/delivery"
)

// EnvPrefix - префикс переменных окружения (SDGB_SERVER_BASE_URL и т.д.)
const EnvPrefix = "SDGB"

// Бэкенды хранилища timestamp логина
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// ErrUnknownBackend is returned by Validate for an unsupported recovery backend.
var ErrUnknownBackend = errors.New("unknown recovery backend")

// Server - параметры игрового сервера
type Server struct {
	BaseURL            string        `mapstructure:"base_url"`
	Salt               string        `mapstructure:"salt"`
	ObfuscateParam     string        `mapstructure:"obfuscate_param"`
	AESKey             string        `mapstructure:"aes_key"`
	AESIV              string        `mapstructure:"aes_iv"`
	EncodingVersion    string        `mapstructure:"encoding_version"`
	GameVersion        string        `mapstructure:"game_version"`
	Timeout            time.Duration `mapstructure:"timeout"`
	MaxAttempts        int           `mapstructure:"max_attempts"`
	RetryDelay         time.Duration `mapstructure:"retry_delay"`
	ProxyURL           string        `mapstructure:"proxy_url"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	RateLimit          int           `mapstructure:"rate_limit"`
}

// Client - идентичность автомата
type Client struct {
	Keychip      string `mapstructure:"keychip"`
	PlaceID      int    `mapstructure:"place_id"`
	PlaceName    string `mapstructure:"place_name"`
	RegionID     int    `mapstructure:"region_id"`
	RegionName   string `mapstructure:"region_name"`
	RatingOffset int    `mapstructure:"rating_offset"`
}

// Recovery - хранилище timestamp логина и привязок
type Recovery struct {
	Backend       string `mapstructure:"backend"`
	Path          string `mapstructure:"path"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
}

// Delivery - параметры AuthLite
type Delivery struct {
	Endpoint     string `mapstructure:"endpoint"`
	TitleVersion string `mapstructure:"title_version"`
}

// Log - параметры логгера
type Log struct {
	Env string `mapstructure:"env"`
}

// Config is the complete client configuration.
type Config struct {
	Server   Server   `mapstructure:"server"`
	Client   Client   `mapstructure:"client"`
	Recovery Recovery `mapstructure:"recovery"`
	Delivery Delivery `mapstructure:"delivery"`
	Log      Log      `mapstructure:"log"`
}

// SetDefaults регистрирует значения по умолчанию для всех ключей.
// Без них AutomaticEnv не видит ключи при Unmarshal.
func SetDefaults(v *viper.Viper) {
	identity := session.DefaultIdentity()

	defaults := map[string]any{
		"server.base_url":             apiclient.DefaultBaseURL,
		"server.salt":                 crypto.DefaultAPISalt,
		"server.obfuscate_param":      crypto.DefaultObfuscateParam,
		"server.aes_key":              crypto.DefaultTransportKey,
		"server.aes_iv":               crypto.DefaultTransportIV,
		"server.encoding_version":     apiclient.DefaultEncodingVersion,
		"server.game_version":         "1.51.00",
		"server.timeout":              apiclient.DefaultTimeout,
		"server.max_attempts":         retry.DefaultMaxAttempts,
		"server.retry_delay":          retry.DefaultDelay,
		"server.proxy_url":            "",
		"server.insecure_skip_verify": true,
		"server.rate_limit":           0,
		"client.keychip":              identity.Keychip,
		"client.place_id":             identity.PlaceID,
		"client.place_name":           identity.PlaceName,
		"client.region_id":            identity.RegionID,
		"client.region_name":          identity.RegionName,
		"client.rating_offset":        0,
		"recovery.backend":            BackendBolt,
		"recovery.path":               "sdgb.db",
		"recovery.redis_addr":         "localhost:6379",
		"recovery.redis_password":     "",
		"recovery.redis_db":           0,
		"recovery.redis_prefix":       "sdgb",
		"delivery.endpoint":           delivery.DefaultEndpoint,
		"delivery.title_version":      "1.51",
		"log.env":                     "dev",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Load читает конфигурацию. Пустой path ищет sdgb.yaml в текущем каталоге
// и не считает его отсутствие ошибкой.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("sdgb")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	switch c.Recovery.Backend {
	case BackendBolt, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Recovery.Backend)
	}
	if c.Server.BaseURL == "" {
		return errors.New("server.base_url is required")
	}
	if c.Server.MaxAttempts < 1 {
		return fmt.Errorf("server.max_attempts must be at least 1, got %d", c.Server.MaxAttempts)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit cannot be negative, got %d", c.Server.RateLimit)
	}
	return nil
}

// API возвращает конфигурацию транспорта
func (c *Config) API() apiclient.Config {
	s := c.Server
	return apiclient.Config{
		BaseURL:            s.BaseURL,
		Salt:               s.Salt,
		ObfuscateParam:     s.ObfuscateParam,
		AESKey:             s.AESKey,
		AESIV:              s.AESIV,
		EncodingVersion:    s.EncodingVersion,
		ProxyURL:           s.ProxyURL,
		Timeout:            s.Timeout,
		RetryDelay:         s.RetryDelay,
		MaxAttempts:        s.MaxAttempts,
		RateLimit:          s.RateLimit,
		InsecureSkipVerify: s.InsecureSkipVerify,
	}
}

// Session возвращает конфигурацию сессии пользователя userID
func (c *Config) Session(userID int64) session.Config {
	return session.Config{
		UserID: userID,
		Identity: session.Identity{
			Keychip:    c.Client.Keychip,
			PlaceID:    c.Client.PlaceID,
			PlaceName:  c.Client.PlaceName,
			RegionID:   c.Client.RegionID,
			RegionName: c.Client.RegionName,
		},
		GameVersion:  c.Server.GameVersion,
		RatingOffset: c.Client.RatingOffset,
	}
}

// DeliveryClient возвращает конфигурацию клиента AuthLite
func (c *Config) DeliveryClient() delivery.Config {
	cfg := delivery.DefaultConfig()
	cfg.Endpoint = c.Delivery.Endpoint
	cfg.ClientID = c.Client.Keychip
	cfg.Timeout = c.Server.Timeout
	return cfg
}

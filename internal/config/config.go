package config

import (
	"fmt"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis     Redis     `yaml:"redis"`
	Postgres  Postgres  `yaml:"postgres"`
	Websocket Websocket `yaml:"websocket"`
	Game      Game      `yaml:"game"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	// Prefix - namespace of the realtime keys.
	Prefix string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"arcade"`
}

// Postgres - the match archive is disabled when DSN is empty.
type Postgres struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
}

type Websocket struct {
	ReadTimeout  time.Duration `yaml:"read-timeout" env:"WS_READ_TIMEOUT" env-default:"60s"`
	WriteTimeout time.Duration `yaml:"write-timeout" env:"WS_WRITE_TIMEOUT" env-default:"10s"`
	PingInterval time.Duration `yaml:"ping-interval" env:"WS_PING_INTERVAL" env-default:"30s"`
	SendBuffer   int           `yaml:"send-buffer" env:"WS_SEND_BUFFER" env-default:"64"`
}

type Game struct {
	DropInterval      time.Duration `yaml:"drop-interval" env:"GAME_DROP_INTERVAL" env-default:"500ms"`
	FrameInterval     time.Duration `yaml:"frame-interval" env:"GAME_FRAME_INTERVAL" env-default:"16ms"`
	ScoreSyncInterval time.Duration `yaml:"score-sync-interval" env:"GAME_SCORE_SYNC_INTERVAL" env-default:"2s"`
	LeaveTimeout      time.Duration `yaml:"leave-timeout" env:"GAME_LEAVE_TIMEOUT" env-default:"2s"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

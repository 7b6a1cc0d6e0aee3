package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidStorageDriver = errors.New("invalid storage driver")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Game     Game    `yaml:"game"`
}

type Storage struct {
	Driver        string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	SessionTTL    time.Duration `yaml:"session-ttl" env:"STORAGE_SESSION_TTL" env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"STORAGE_SWEEP_INTERVAL" env-default:"1m"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the settings of newly created games and the pacing of the computer.
type Game struct {
	DefaultDifficulty string        `yaml:"default-difficulty" env:"GAME_DEFAULT_DIFFICULTY" env-default:"easy"`
	DefaultOpponent   string        `yaml:"default-opponent" env:"GAME_DEFAULT_OPPONENT" env-default:"computer"`
	BotDelay          time.Duration `yaml:"bot-delay" env:"GAME_BOT_DELAY" env-default:"400ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// Validate rejects settings the application could not start with.
func (that *Config) Validate() error {
	if that.Storage.Driver != StorageMemory && that.Storage.Driver != StorageRedis {
		return fmt.Errorf("%w: %q", ErrInvalidStorageDriver, that.Storage.Driver)
	}

	if _, err := that.Game.Difficulty(); err != nil {
		return err
	}

	if _, err := that.Game.Opponent(); err != nil {
		return err
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Game) Difficulty() (entity.Difficulty, error) {
	return entity.ParseDifficulty(that.DefaultDifficulty)
}

func (that *Game) Opponent() (entity.Opponent, error) {
	return entity.ParseOpponent(that.DefaultOpponent)
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board     Board     `yaml:"board"`
	Players   Players   `yaml:"players"`
	MoveCache MoveCache `yaml:"move-cache"`
	Redis     Redis     `yaml:"redis"`
}

type Board struct {
	Size         int  `yaml:"size" env:"BOARD_SIZE" env-default:"3"`
	WinCondition int  `yaml:"win-condition" env:"BOARD_WIN_CONDITION" env-default:"3"`
	Is3D         bool `yaml:"is-3d" env:"BOARD_IS_3D" env-default:"false"`
}

type Players struct {
	X Player `yaml:"x" env-prefix:"PLAYER_X_"`
	O Player `yaml:"o" env-prefix:"PLAYER_O_"`
}

// Player selects a strategy. Search players use the Difficulty preset, or
// MaxDepth and Pruning when Difficulty is "custom".
type Player struct {
	Strategy   string `yaml:"strategy" env:"STRATEGY" env-default:"search"`
	Difficulty string `yaml:"difficulty" env:"DIFFICULTY" env-default:"hard"`
	MaxDepth   int    `yaml:"max-depth" env:"MAX_DEPTH" env-default:"-1"`
	Pruning    bool   `yaml:"pruning" env:"PRUNING"`
	Seed       int64  `yaml:"seed" env:"SEED" env-default:"0"`
}

type MoveCache struct {
	Enabled bool          `yaml:"enabled" env:"MOVE_CACHE_ENABLED" env-default:"false"`
	TTL     time.Duration `yaml:"ttl" env:"MOVE_CACHE_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

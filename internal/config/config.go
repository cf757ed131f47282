package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"connect5-client.log"`
	Server   Server  `yaml:"server"`
	Push     Push    `yaml:"push"`
	View     View    `yaml:"view"`
	Camera   Camera  `yaml:"camera"`
	Redis    Redis   `yaml:"redis"`
	Journal  Journal `yaml:"journal"`

	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:""`
}

type Server struct {
	APIURL         string        `yaml:"api-url" env:"SERVER_API_URL" env-default:"http://localhost:5000/api"`
	WSURL          string        `yaml:"ws-url" env:"SERVER_WS_URL" env-default:"ws://localhost:5000/ws"`
	RequestTimeout time.Duration `yaml:"request-timeout" env-default:"5s"`
}

type Push struct {
	Enabled           bool          `yaml:"enabled" env-default:"true"`
	NotifyMoves       bool          `yaml:"notify-moves" env-default:"false"`
	ReconnectDelay    time.Duration `yaml:"reconnect-delay" env-default:"1s"`
	ReconnectDelayMax time.Duration `yaml:"reconnect-delay-max" env-default:"5s"`
	ReconnectAttempts uint64        `yaml:"reconnect-attempts" env-default:"5"`
}

type View struct {
	PollInterval   time.Duration `yaml:"poll-interval" env-default:"1s"`
	AutoStartDelay time.Duration `yaml:"auto-start-delay" env-default:"500ms"`
	SceneInitDelay time.Duration `yaml:"scene-init-delay" env-default:"100ms"`
	FrameRate      int           `yaml:"frame-rate" env-default:"30"`
	SnapshotDir    string        `yaml:"snapshot-dir" env-default:"."`
}

type Camera struct {
	FieldOfView float64   `yaml:"fov" env-default:"75"`
	Position    []float64 `yaml:"position" env-default:"4.5,7,16"`
	Target      []float64 `yaml:"target" env-default:"4.5,4,4.5"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Journal struct {
	Dir string `yaml:"dir" env:"JOURNAL_DIR" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

var ErrInvalidVector = errors.New("camera vector must have 3 components")

// Load reads path when it exists and falls back to environment variables and defaults otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from env: %w", err)
	}

	if len(config.Camera.Position) != 3 || len(config.Camera.Target) != 3 {
		return nil, ErrInvalidVector
	}

	return config, nil
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// FrameInterval is the time between two render ticks.
func (that *View) FrameInterval() time.Duration {
	if that.FrameRate <= 0 {
		return time.Second / 30
	}

	return time.Second / time.Duration(that.FrameRate)
}

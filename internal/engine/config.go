package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генератора боёв. 0 - случайное.
	Seed int64 `yaml:"seed" env:"DUSK_SEED"`
	// SaveDir - каталог JSON-сохранений.
	SaveDir string `yaml:"save_dir" env:"DUSK_SAVE_DIR"`
	// Port - порт HTTP/WebSocket сервера.
	Port string `yaml:"port" env:"DUSK_PORT"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:    time.Now().UnixNano(),
		SaveDir: "saves",
		Port:    "8080",
	}
}

// LoadConfig собирает конфиг: умолчания, затем YAML-файл (если указан),
// затем .env и переменные окружения DUSK_*.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
		// Относительный каталог сохранений считаем от файла конфига
		if !filepath.IsAbs(cfg.SaveDir) {
			cfg.SaveDir = filepath.Join(filepath.Dir(path), cfg.SaveDir)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.SaveDir == "" {
		return Config{}, errors.New("save_dir must not be empty")
	}
	return cfg, nil
}

// NewRNG создаёт генератор из Seed.
func (c Config) NewRNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

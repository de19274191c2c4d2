package netcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL = "ws://127.0.0.1:3000/ws"
	DefaultName      = "Player"
	DefaultColor     = "red"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Player PlayerConfig `yaml:"player"`
	Window WindowConfig `yaml:"window"`
	Debug  bool         `yaml:"debug"`
}

type ServerConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{URL: DefaultServerURL},
		Player: PlayerConfig{Name: DefaultName, Color: DefaultColor},
		Window: WindowConfig{Width: 1280, Height: 720, Title: "orbs"},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; an empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("CONFIG: %s not found, using defaults", path)
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadDotEnv loads .env files into the process environment if present.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("CONFIG: %s: %v", f, err)
		}
	}
}

func (c *Config) applyEnv() {
	c.Server.URL = getenv("ORBS_WS_URL", c.Server.URL)
	c.Server.Token = getenv("ORBS_TOKEN", c.Server.Token)
	c.Player.Name = getenv("ORBS_NAME", c.Player.Name)
	c.Player.Color = getenv("ORBS_COLOR", c.Player.Color)
}

func (c *Config) Validate() error {
	u := strings.TrimSpace(c.Server.URL)
	if !strings.HasPrefix(u, "ws://") && !strings.HasPrefix(u, "wss://") {
		return fmt.Errorf("config: server.url %q must be ws:// or wss://", c.Server.URL)
	}
	if strings.TrimSpace(c.Player.Name) == "" {
		c.Player.Name = DefaultName
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = 1280, 720
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

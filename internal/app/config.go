package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the parameters shared by the GUI and CLI drivers. A YAML
// file may supply any of them; flags set on the command line win.
type Config struct {
	File        string            `yaml:"-"`
	Scene       string            `yaml:"scene"`
	Width       int               `yaml:"width"`
	Height      int               `yaml:"height"`
	Scale       int               `yaml:"scale"`
	TPS         int               `yaml:"tps"`
	Seed        int64             `yaml:"seed"`
	Scan        string            `yaml:"scan"`
	Brush       int               `yaml:"brush"`
	LogLevel    string            `yaml:"log_level"`
	LogFile     string            `yaml:"log_file"`
	MetricsAddr string            `yaml:"metrics_addr"`
	Options     map[string]string `yaml:"options"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:    "sand",
		Width:    200,
		Height:   100,
		Scale:    4,
		TPS:      60,
		Seed:     1337,
		Brush:    3,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML scene file")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scan order and scene reset")
	fs.StringVar(&c.Scan, "scan", c.Scan, "scan order override")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush size")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
}

// LoadFile reads the YAML file at path into c. Flags named in explicit keep
// the value they already hold.
func (c *Config) LoadFile(path string, explicit []string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	prev := *c
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.File = prev.File
	for _, name := range explicit {
		switch name {
		case "scene":
			c.Scene = prev.Scene
		case "width":
			c.Width = prev.Width
		case "height":
			c.Height = prev.Height
		case "scale":
			c.Scale = prev.Scale
		case "tps":
			c.TPS = prev.TPS
		case "seed":
			c.Seed = prev.Seed
		case "scan":
			c.Scan = prev.Scan
		case "brush":
			c.Brush = prev.Brush
		case "log-level":
			c.LogLevel = prev.LogLevel
		case "log-file":
			c.LogFile = prev.LogFile
		case "metrics-addr":
			c.MetricsAddr = prev.MetricsAddr
		}
	}
	return nil
}

// Explicit lists the flags set on the command line.
func Explicit(fs *flag.FlagSet) []string {
	var names []string
	fs.Visit(func(f *flag.Flag) { names = append(names, f.Name) })
	return names
}

// SceneOptions returns the key/value pairs handed to the scene factory.
func (c *Config) SceneOptions() map[string]string {
	opts := make(map[string]string, len(c.Options)+5)
	for k, v := range c.Options {
		opts[k] = v
	}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Brush > 0 {
		opts["brush"] = strconv.Itoa(c.Brush)
	}
	if c.Scan != "" {
		opts["scan"] = c.Scan
	}
	opts["seed"] = strconv.FormatInt(c.Seed, 10)
	return opts
}

// LogOutputs returns the log destinations; none means stderr.
func (c *Config) LogOutputs() []string {
	if c.LogFile == "" {
		return nil
	}
	return []string{c.LogFile}
}

// Normalize replaces out-of-range values with defaults.
func (c *Config) Normalize() {
	d := NewConfig()
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.Scene == "" {
		c.Scene = d.Scene
	}
}

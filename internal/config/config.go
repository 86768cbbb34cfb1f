// Package config loads the host layout: logging, tick rate, admin address,
// the scene library and which scene each frame of the container starts with.
//
// Layouts are YAML, or TOML when the file name ends in ".toml". Environment
// variables prefixed with COLLAGE_ override the scalar settings.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/collage/pkg/adapters/memory"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultLayout []byte

// Config is the root of the layout file.
type Config struct {
	LogLevel  string          `yaml:"log_level" toml:"log_level"`
	Tick      time.Duration   `yaml:"tick" toml:"tick"`
	Admin     AdminConfig     `yaml:"admin" toml:"admin"`
	Container ContainerConfig `yaml:"container" toml:"container"`
	Scenes    []SceneConfig   `yaml:"scenes" toml:"scenes"`
}

// AdminConfig configures the introspection HTTP server.
type AdminConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

// ContainerConfig describes the container scene and its frames, in registration order.
type ContainerConfig struct {
	Name   string        `yaml:"name" toml:"name"`
	Frames []FrameConfig `yaml:"frames" toml:"frames"`
}

// FrameConfig places one frame in the container.
type FrameConfig struct {
	ID    string `yaml:"id" toml:"id"`
	Scene string `yaml:"scene" toml:"scene"`
}

// SceneConfig is one entry of the scene library.
type SceneConfig struct {
	Path string     `yaml:"path" toml:"path"`
	Root NodeConfig `yaml:"root" toml:"root"`
}

// NodeConfig describes a node and its subtree. Props are decoded into
// memory.NodeProps when the library is built.
type NodeConfig struct {
	Name     string         `yaml:"name" toml:"name"`
	Props    map[string]any `yaml:"props" toml:"props"`
	Children []NodeConfig   `yaml:"children" toml:"children"`
}

const (
	defaultTick          = 50 * time.Millisecond
	defaultAdminAddr     = ":8089"
	defaultContainerName = "Collage"
)

// Default returns the built-in demo layout.
func Default() *Config {
	cfg, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("embedded layout is invalid: %v", err))
	}
	return cfg
}

// Load reads a layout file and applies environment overrides.
// An empty path yields the built-in layout.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg = Default()
	} else {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read layout: %w", readErr)
		}
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			cfg, err = ParseTOML(data)
		} else {
			cfg, err = Parse(data)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes, defaults and validates a YAML layout.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return finish(&cfg)
}

// ParseTOML decodes, defaults and validates a TOML layout.
func ParseTOML(data []byte) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type envOverrides struct {
	LogLevel  string        `env:"COLLAGE_LOG_LEVEL"`
	Tick      time.Duration `env:"COLLAGE_TICK"`
	AdminAddr string        `env:"COLLAGE_ADMIN_ADDR"`
}

// ApplyEnv overrides scalar settings from COLLAGE_LOG_LEVEL, COLLAGE_TICK and
// COLLAGE_ADMIN_ADDR when they are set.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Tick > 0 {
		c.Tick = o.Tick
	}
	if o.AdminAddr != "" {
		c.Admin.Addr = o.AdminAddr
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Tick <= 0 {
		c.Tick = defaultTick
	}
	if c.Admin.Addr == "" {
		c.Admin.Addr = defaultAdminAddr
	}
	if c.Container.Name == "" {
		c.Container.Name = defaultContainerName
	}
}

// Validate checks the layout for structural errors.
func (c *Config) Validate() error {
	paths := make(map[string]bool, len(c.Scenes))
	for i, s := range c.Scenes {
		if s.Path == "" {
			return fmt.Errorf("scenes[%d]: path is required", i)
		}
		if paths[s.Path] {
			return fmt.Errorf("scenes[%d]: duplicate path %q", i, s.Path)
		}
		paths[s.Path] = true
		if err := validateNode(s.Root, s.Path); err != nil {
			return err
		}
	}

	ids := make(map[string]bool, len(c.Container.Frames))
	for i, f := range c.Container.Frames {
		switch {
		case f.ID == "":
			return fmt.Errorf("container.frames[%d]: id is required", i)
		case ids[f.ID]:
			return fmt.Errorf("container.frames[%d]: duplicate id %q", i, f.ID)
		case !paths[f.Scene]:
			return fmt.Errorf("container.frames[%d]: unknown scene %q", i, f.Scene)
		}
		ids[f.ID] = true
	}
	return nil
}

func validateNode(n NodeConfig, where string) error {
	if n.Name == "" {
		return fmt.Errorf("%s: node name is required", where)
	}
	if strings.ContainsAny(n.Name, "/.") {
		return fmt.Errorf("%s: node name %q must not contain '/' or '.'", where, n.Name)
	}
	for _, c := range n.Children {
		if err := validateNode(c, where+"/"+n.Name); err != nil {
			return err
		}
	}
	return nil
}

// Library builds the scene library described by the layout.
func (c *Config) Library() (*memory.Library, error) {
	lib := memory.NewLibrary()
	for _, s := range c.Scenes {
		root, err := buildSpec(s.Root)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", s.Path, err)
		}
		lib.Add(memory.NewPackedScene(s.Path, root))
	}
	return lib, nil
}

func buildSpec(n NodeConfig) (memory.NodeSpec, error) {
	props, err := DecodeProps(n.Props)
	if err != nil {
		return memory.NodeSpec{}, fmt.Errorf("node %s: %w", n.Name, err)
	}
	spec := memory.NodeSpec{Name: n.Name, Props: props}
	for _, child := range n.Children {
		cs, err := buildSpec(child)
		if err != nil {
			return memory.NodeSpec{}, err
		}
		spec.Children = append(spec.Children, cs)
	}
	return spec, nil
}

// DecodeProps converts a loosely typed props map into memory.NodeProps.
// Unknown keys are rejected; scalar types are coerced ("12" -> 12).
func DecodeProps(raw map[string]any) (memory.NodeProps, error) {
	var props memory.NodeProps
	if len(raw) == 0 {
		return props, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &props,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return props, err
	}
	if err := dec.Decode(raw); err != nil {
		return props, fmt.Errorf("invalid props: %w", err)
	}
	return props, nil
}

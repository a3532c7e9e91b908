package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlcomp.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSource is the default source page directory.
	DefaultSource = "pages"

	// DefaultOutput is the default rendered-output directory.
	DefaultOutput = "dist"
)

// Config represents the complete htmlcomp.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Source is the directory of component HTML pages, relative to
	// the config file.
	Source string `json:"source,omitempty"`

	// Output is the rendered-output directory, relative to the config
	// file.
	Output string `json:"output,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Publish contains S3 publish configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// dir is the directory the config was loaded from (or the
	// directory Load was asked to look in).
	dir string
}

// ServeConfig contains preview server configuration.
type ServeConfig struct {
	// Host is the interface to bind.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// PublishConfig contains S3 publish configuration.
type PublishConfig struct {
	// Bucket is the destination S3 bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket's AWS region.
	Region string `json:"region,omitempty"`
}

// New returns a Config with all defaults applied.
func New() *Config {
	c := &Config{dir: "."}
	c.applyDefaults()
	return c
}

// Load reads htmlcomp.json from dir. A missing file is not an error:
// the defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c := New()
		c.dir = dir
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	c := &Config{dir: dir}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromWorkingDir loads the configuration from the current working
// directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Load(wd)
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("config: serve.port %d out of range", c.Serve.Port)
	}
	return nil
}

// ValidatePublish checks the fields the publish command requires.
func (c *Config) ValidatePublish() error {
	if c.Publish.Bucket == "" {
		return fmt.Errorf("config: publish.bucket is required")
	}
	return nil
}

// Dir returns the project directory.
func (c *Config) Dir() string {
	if c.dir == "" {
		return "."
	}
	return c.dir
}

// SourcePath returns the absolute-ish source directory path.
func (c *Config) SourcePath() string {
	return filepath.Join(c.Dir(), c.Source)
}

// OutputPath returns the rendered-output directory path.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Dir(), c.Output)
}

// ServeAddress returns the host:port the preview server binds.
func (c *Config) ServeAddress() string {
	return fmt.Sprintf("%s:%d", c.Serve.Host, c.Serve.Port)
}

// ServeURL returns the preview server URL.
func (c *Config) ServeURL() string {
	return fmt.Sprintf("http://%s", c.ServeAddress())
}

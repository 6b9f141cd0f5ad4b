/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package config loads the optional YAML configuration file controlling
// probe endpoints and deadlines. Every field has a default, so running
// without a config file is the common case.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/my-cli/my/pkg/defaults"
)

// FileName is the config file looked up in the user home directory when no
// explicit --config path is given.
const FileName = ".my.yaml"

// Duration wraps time.Duration so YAML values like "3s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds probe endpoints and deadlines.
type Config struct {
	// PublicIPResolver is the DNS server asked for the public IP.
	PublicIPResolver string `yaml:"public_ip_resolver"`

	// PublicIPPort is the resolver port.
	PublicIPPort uint16 `yaml:"public_ip_port"`

	// PublicIPName is the name whose A record reflects the caller address.
	PublicIPName string `yaml:"public_ip_name"`

	// ResolvConfPath is the system DNS configuration file.
	ResolvConfPath string `yaml:"resolv_conf_path"`

	// NTPServer is the host used for the clock-offset measurement.
	NTPServer string `yaml:"ntp_server"`

	// NTPTimeout bounds the NTP exchange; on expiry the time probe degrades
	// instead of failing.
	NTPTimeout Duration `yaml:"ntp_timeout"`

	// LatencyTarget is the host:port measured by the latency command.
	// Empty means the public IP resolver.
	LatencyTarget string `yaml:"latency_target"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		PublicIPResolver: "208.67.222.222",
		PublicIPPort:     53,
		PublicIPName:     "myip.opendns.com",
		ResolvConfPath:   "/etc/resolv.conf",
		NTPServer:        "pool.ntp.org",
		NTPTimeout:       Duration(defaults.NTPTimeout),
	}
}

// Load reads the configuration from path, falling back to $HOME/.my.yaml
// when path is empty. A missing file is not an error; an explicit path that
// cannot be read is. Environment overrides (MY_*) apply last.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, FileName)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case explicit:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.LatencyTarget == "" {
		cfg.LatencyTarget = fmt.Sprintf("%s:%d", cfg.PublicIPResolver, cfg.PublicIPPort)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MY_PUBLIC_IP_RESOLVER"); v != "" {
		c.PublicIPResolver = v
	}
	if v := os.Getenv("MY_PUBLIC_IP_NAME"); v != "" {
		c.PublicIPName = v
	}
	if v := os.Getenv("MY_RESOLV_CONF"); v != "" {
		c.ResolvConfPath = v
	}
	if v := os.Getenv("MY_NTP_SERVER"); v != "" {
		c.NTPServer = v
	}
	if v := os.Getenv("MY_LATENCY_TARGET"); v != "" {
		c.LatencyTarget = v
	}
}

package ntpdiag

import (
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

const (
	defaultTimeoutSec = 5
	defaultPort       = 123
)

type Config struct {
	// TimeoutSec bounds the whole exchange, read and write alike.
	TimeoutSec int
	// Port is appended to server strings that carry no port of
	// their own.
	Port int
	// Metric is the prometheus listen address, empty disables it.
	Metric string
	// FillTransmit puts the local clock into the request transmit
	// timestamp. Informational only, the offset computation never
	// reads it back.
	FillTransmit bool
}

func NewConfigFromFile(p string) (cfg *Config, err error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return
	}
	cfg = &Config{}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}
	cfg.clamp()
	return
}

func (c *Config) clamp() {
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = defaultTimeoutSec
	}
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = defaultPort
	}
}

func (c *Config) timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

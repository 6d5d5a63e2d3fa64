package config

import (
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
)

// Config holds runtime settings for the safety CLI.
//
// Units: MirrorTimeout and OnlineCheckInterval are time.Duration values;
// on the command line they are given in whole seconds.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	MirrorTimeout       time.Duration
	OnlineCheckInterval time.Duration
	ShareOrigin         string
	// Country overrides locale detection when not empty.
	Country   string
	LogFormat string
	ExportDir string
	Keys      kv.Keys
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "gophsafe.db"
	c.MirrorTimeout = 5 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.ShareOrigin = "http://127.0.0.1:8080"
	c.Country = ""
	c.LogFormat = logging.FormatText
	c.ExportDir = "exports"
	c.Keys = kv.DefaultKeys()
}

// LoadConfig builds a Config from defaults, then the JSON file (if any),
// then command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.Keys = cfg.Keys.WithDefaults()
	return cfg
}

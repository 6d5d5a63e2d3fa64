package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/flagx"
	"github.com/dmitrijs2005/gophsafe/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "5s" or integer
// nanoseconds. Absent fields keep their current values.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	DatabasePath        string         `json:"database_path"`
	MirrorTimeout       timex.Duration `json:"mirror_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	ShareOrigin         string         `json:"share_origin"`
	Country             string         `json:"country"`
	LogFormat           string         `json:"log_format"`
	ExportDir           string         `json:"export_dir"`
	Keys                kv.Keys        `json:"keys"`
}

// parseJson overlays Config with the JSON file named by -c/-config or the
// GOPHSAFE_CONFIG environment variable. It panics on read or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setDuration(&cfg.MirrorTimeout, jc.MirrorTimeout.Duration)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval.Duration)
	setString(&cfg.ShareOrigin, jc.ShareOrigin)
	setString(&cfg.Country, jc.Country)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.ExportDir, jc.ExportDir)

	setString(&cfg.Keys.Triage, jc.Keys.Triage)
	setString(&cfg.Keys.SafetyPlan, jc.Keys.SafetyPlan)
	setString(&cfg.Keys.Contacts, jc.Keys.Contacts)
	setString(&cfg.Keys.Session, jc.Keys.Session)
	setString(&cfg.Keys.JournalPrefix, jc.Keys.JournalPrefix)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}

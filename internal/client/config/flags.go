package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   address and port of the mirror server
//	-d string   path of the local SQLite database
//	-t int      mirror timeout in seconds
//	-i int      online check interval in seconds
//	-o string   origin used in share links
//	-r string   country code overriding detection
//	-l string   log format: text, json or zap
//	-e string   directory exported documents are written to
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-i", "-o", "-r", "-l", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database file")
	mirrorTimeout := fs.Int("t", int(cfg.MirrorTimeout.Seconds()), "mirror timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.ShareOrigin, "o", cfg.ShareOrigin, "origin of share links")
	fs.StringVar(&cfg.Country, "r", cfg.Country, "country code (US, GB, CA, AU, IE, NZ, OTHER)")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (text, json, zap)")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MirrorTimeout = time.Duration(*mirrorTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}

// Package config loads runtime configuration for the safety CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config, or GOPHSAFE_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "gophsafe.db",
//	  "mirror_timeout": "5s",
//	  "online_check_interval": "30s",
//	  "share_origin": "https://safety.example.org",
//	  "country": "GB",
//	  "log_format": "json",
//	  "export_dir": "exports",
//	  "keys": {"safety_plan": "profile2.safety_plan"}
//	}
//
// Storage keys can only be set through JSON.
package config

// Package config loads runtime configuration for the contacts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   local SQLite database file
//	-m string   local images directory
//	-k string   API key
//	-s int      seed delay (milliseconds)
//	-v string   log level
//
// # JSON schema
//
// Durations accept either strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "contacts.db",
//	  "images_dir": "images",
//	  "api_key": "contacts-api-key",
//	  "seed_delay": "300ms",
//	  "log_level": "debug"
//	}
//
// Keys missing from the file keep their current values.
package config

// Package config loads runtime configuration for the EduHub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (a .env file is honored via godotenv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-d string   path of the local credential database
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8000",
//	  "database_dsn": "eduhub.db",
//	  "log_level": "info"
//	}
//
// # Environment variables
//
//	EDUHUB_SERVER_ADDR
//	EDUHUB_DATABASE_DSN
//	EDUHUB_LOG_LEVEL
package config

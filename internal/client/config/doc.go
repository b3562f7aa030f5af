// Package config loads runtime configuration for the study guide screen
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally from a .env file: SERVER_ADDR,
//     ONLINE_CHECK_INTERVAL, REQUEST_TIMEOUT, CLIENT_LOG_FILE, LOG_LEVEL.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "90s",
//	  "log_file": "studyguide-client.log",
//	  "log_level": "info"
//	}
package config

// Package config loads runtime configuration for the TripDeck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string       base URL of the backend API
//	-health string  health check path on the backend
//	-p int          default page size for list views
//	-t int          fallback trip id used by activity creation
//	-db string      path to the local sqlite database
//	-i int          online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "400ms" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8081",
//	  "health_path": "/api/health",
//	  "default_page_size": 10,
//	  "search_debounce": "400ms",
//	  "default_trip_id": 1,
//	  "database_path": "/home/me/.config/tripdeck/client.db",
//	  "online_check_interval": "30s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

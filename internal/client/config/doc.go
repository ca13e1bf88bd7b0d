// Package config loads runtime configuration for the jobtracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally loaded from a dotenv file (-env, or
//     ./.env when present): OPENROUTER_API_KEY, JOBTRACKER_ACCESS_TOKEN,
//     JOBTRACKER_SERVER_ADDR.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "request_timeout": "10s",
//	  "database_path": "data/jobtracker.db",
//	  "autosave_interval": "2s",
//	  "llm_base_url": "https://openrouter.ai/api/v1",
//	  "llm_model": "google/gemini-2.5-flash",
//	  "llm_api_key": "sk-...",
//	  "online_check_interval": "3s"
//	}
package config

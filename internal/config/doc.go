// Package config loads rolodex's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/rolodex/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. ROLODEX_ENDPOINT, when set, replaces the endpoint
//
// Command-line flags are applied on top by the caller.
//
// # Default Values
//
//   - Endpoint: https://dummyjson.com/users/search
//   - Debounce: 600ms
//   - Request timeout: 10s
//   - Storage: file backend at ~/.local/share/rolodex/store.json
//     (store.db for the sqlite backend)
//   - Log file: ~/.local/state/rolodex/rolodex.log
//   - Theme: Nightfox
//
// # TOML Format
//
//	endpoint = "https://dummyjson.com/users/search"
//	debounce_ms = 600
//	request_timeout_ms = 10000
//	theme = "Slate"
//	log_file = "~/.local/state/rolodex/rolodex.log"
//
//	[storage]
//	backend = "sqlite"
//	path = "~/.local/share/rolodex/store.db"
//
// Every field is optional. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and unknown storage backends. A
// missing file is not an error.
package config

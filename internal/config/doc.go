// Package config handles loading and parsing the Rolodex configuration
// file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/rolodex/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/zero, use defaults
//
// # Default Values
//
//   - endpoint: https://jsonplaceholder.typicode.com/users
//   - page_size: 6
//   - debounce_ms: 300
//   - near_bottom: 5
//
// # TOML Format
//
// Example config.toml:
//
//	endpoint = "https://directory.internal/people"
//	page_size = 10
//	debounce_ms = 300
//	near_bottom = 5
//
// All fields are optional. Tilde expansion is performed on the config
// path itself.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files,
// and TOML parse errors. A missing config file is NOT an error;
// defaults are used instead, so Rolodex works out of the box.
package config

// Package config loads curator's configuration file.
//
// # Overview
//
// Configuration lives in ~/.config/curator/config.toml and covers the API
// endpoint, the request timeout, the admin credentials the login screen
// checks against, and the log file location. A missing file is not an
// error; every field has a usable default, so a fresh install can point
// at a local API without writing any config at all.
//
// # Format
//
//	api_base = "127.0.0.1:8000"
//	timeout_seconds = 10
//	admin_user = "admin"
//	admin_password = "..."
//	log_file = "~/.local/share/curator/curator.log"
//
// Paths may start with "~", which expands to the user's home directory.
package config

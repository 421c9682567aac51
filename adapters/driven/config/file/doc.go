// Package file provides file-based configuration loading.
//
// Settings are read from a TOML file, with credentials and provider
// selection optionally overridden from the environment. A .env file in
// the working directory is loaded first when present.
package file

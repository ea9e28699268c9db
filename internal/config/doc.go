// Package config provides configuration loading, merging, and validation
// facilities for the server, the terminal client and the ops CLI.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (.json, .yaml/.yml or .toml)
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the merged configuration. [GetServerConfig],
// [GetClientConfig] and [GetBackupConfig] return validated views for each
// binary.
package config

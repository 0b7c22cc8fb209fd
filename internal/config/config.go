// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the webhook token key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Algolia holds the remote index connection settings: application id,
	// admin API key, target index name, and request timeout.
	Algolia Algolia `envPrefix:"ALGOLIA_"`

	// Storage holds the connection settings for the ledger/history store
	// and the read-only content database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server exposed in serve mode.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the background incremental sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Run selects what this invocation does: a one-shot full or
	// incremental sync, or long-running serve mode.
	Run Run

	// FieldsFilePath is the path to the YAML file declaring the four
	// search-field lists applied by the record mapper. Optional; when
	// empty only the default-data fields are indexed.
	// Env: FIELDS_CONFIG
	FieldsFilePath string `env:"FIELDS_CONFIG"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HookTokenKey is the shared HMAC key used to verify the JWT bearer
	// tokens the CMS attaches to webhook and sync-trigger requests.
	// Must be kept confidential.
	// Env: APP_HOOK_TOKEN_KEY
	HookTokenKey string `env:"HOOK_TOKEN_KEY"`

	// HookTokenIssuer is the "iss" claim expected on every webhook token.
	// Env: APP_HOOK_TOKEN_ISSUER
	HookTokenIssuer string `env:"HOOK_TOKEN_ISSUER"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Algolia holds the remote search index connection settings.
type Algolia struct {
	// ApplicationID is the Algolia application identifier.
	// Env: ALGOLIA_APPLICATION_ID
	ApplicationID string `env:"APPLICATION_ID"`

	// AdminAPIKey is the write-capable API key used for batch save,
	// batch delete, and clear calls. Must be kept confidential.
	// Env: ALGOLIA_ADMIN_API_KEY
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// IndexName is the single target index for this deployment.
	// Env: ALGOLIA_INDEX_NAME
	IndexName string `env:"INDEX_NAME"`

	// BaseURL overrides the default https://{ApplicationID}.algolia.net
	// endpoint. Intended for tests and proxies.
	// Env: ALGOLIA_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single index API call (e.g. "30s").
	// Env: ALGOLIA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// DB holds the ledger, history and lease store connection settings.
	DB DB `envPrefix:"DB_"`

	// Content holds the read-only content database settings.
	Content Content `envPrefix:"CONTENT_"`
}

// DB holds connection settings for the ledger/history store. A DSN starting
// with "postgres://" or "postgresql://" selects the PostgreSQL backend;
// any other value is treated as a SQLite database file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Content holds connection settings for the CMS content database the sync
// engine reads live pages from. Always PostgreSQL; the service never writes
// to it.
type Content struct {
	// Env: STORAGE_CONTENT_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP surface
// exposed in serve mode (webhook, sync trigger, history).
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Sync-trigger requests run a
	// whole sync inline, so this should comfortably exceed a typical run.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background incremental sync job used
// in serve mode.
type Workers struct {
	// SyncInterval is how often the scheduled incremental sync fires.
	// Zero disables the job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Run selects the invocation mode. Populated from flags only; there is no
// env equivalent because the mode is a property of the invocation, not of
// the deployment.
type Run struct {
	// FullSync requests a destructive rebuild instead of an incremental
	// delta run.
	FullSync bool

	// Serve starts the HTTP server and the interval worker instead of
	// running one sync and exiting.
	Serve bool
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-d ledger/history database DSN (postgres:// or a sqlite file path)
//	-content-dsn content database DSN
//	-c/-config json file path with configs
//	-fields yaml file with search-field lists
//	-app-id Algolia application id
//	-api-key Algolia admin API key
//	-index Algolia index name
//	-index-url Algolia endpoint override
//	-index-timeout single index request timeout (e.g., "30s")
//	-hook-token-key webhook JWT signing key
//	-hook-token-issuer expected webhook JWT issuer
//	-request-timeout inbound request timeout (e.g., "30s", "5m")
//	-sync-interval scheduled incremental sync interval (serve mode)
//	-fullsync run a destructive full rebuild
//	-serve run the HTTP server and interval worker instead of one sync
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var contentDSN string
	var jsonConfigPath string
	var fieldsPath string
	var appID string
	var apiKey string
	var indexName string
	var indexURL string
	var indexTimeout time.Duration
	var hookTokenKey string
	var hookTokenIssuer string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var fullSync bool
	var serve bool

	flag.StringVar(&serverAddress, "a", "", "HTTP server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Ledger database DSN")
	flag.StringVar(&contentDSN, "content-dsn", "", "Content database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&fieldsPath, "fields", "", "YAML search-field lists path")
	flag.StringVar(&appID, "app-id", "", "Algolia application id")
	flag.StringVar(&apiKey, "api-key", "", "Algolia admin API key")
	flag.StringVar(&indexName, "index", "", "Algolia index name")
	flag.StringVar(&indexURL, "index-url", "", "Algolia endpoint override")
	flag.DurationVar(&indexTimeout, "index-timeout", 0, "Index request timeout (e.g., 30s)")
	flag.StringVar(&hookTokenKey, "hook-token-key", "", "Webhook JWT signing key")
	flag.StringVar(&hookTokenIssuer, "hook-token-issuer", "", "Expected webhook JWT issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 5m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Scheduled incremental sync interval")
	flag.BoolVar(&fullSync, "fullsync", false, "Run a destructive full rebuild")
	flag.BoolVar(&serve, "serve", false, "Run HTTP server and interval worker")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HookTokenKey:    hookTokenKey,
			HookTokenIssuer: hookTokenIssuer,
		},
		Algolia: Algolia{
			ApplicationID:  appID,
			AdminAPIKey:    apiKey,
			IndexName:      indexName,
			BaseURL:        indexURL,
			RequestTimeout: indexTimeout,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Content: Content{DSN: contentDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Run: Run{
			FullSync: fullSync,
			Serve:    serve,
		},
		FieldsFilePath: fieldsPath,
		JSONFilePath:   jsonConfigPath,
	}
}

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAlgoliaConfigs indicates incomplete index settings
	// (missing application id, admin API key, or index name).
	ErrInvalidAlgoliaConfigs = errors.New("invalid algolia configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty ledger or content DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid serve-mode settings
	// (for example, serve requested without an HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

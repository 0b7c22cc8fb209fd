// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Algolia.ApplicationID == "" || cfg.Algolia.AdminAPIKey == "" || cfg.Algolia.IndexName == "" {
		return ErrInvalidAlgoliaConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Content.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Run.Serve && cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

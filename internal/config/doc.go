// Package config provides configuration loading, merging, and validation
// facilities for the sync service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The four search-field lists
// consumed by the record mapper live in a separate YAML file loaded with
// [LoadFieldLists]; its path is part of the merged configuration.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldLists declares which page fields and relations the record mapper
// copies into every index record, per deployment. The default-data triple
// (Title, Url, MenuTitle) is always indexed and never appears here.
//
// Fields and Images apply to the record root; LocalisedFields and
// LocalisedImages apply inside each locale block when the content store runs
// with multi-locale support. The two pairs are independent configurations,
// not a fallback chain.
type FieldLists struct {
	Fields          []string `yaml:"fields"`
	Images          []string `yaml:"images"`
	LocalisedFields []string `yaml:"localised_fields"`
	LocalisedImages []string `yaml:"localised_images"`
}

// LoadFieldLists reads the YAML field-lists file at path. An empty path is
// not an error: it yields empty lists, meaning only the default data is
// indexed.
func LoadFieldLists(path string) (FieldLists, error) {
	var lists FieldLists
	if path == "" {
		return lists, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return lists, fmt.Errorf("error reading field lists file: %w", err)
	}

	if err := yaml.Unmarshal(data, &lists); err != nil {
		return lists, fmt.Errorf("error decoding field lists file: %w", err)
	}

	return lists, nil
}

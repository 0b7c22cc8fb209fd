// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package service

import (
	"strconv"
	"strings"

	"github.com/pagelift/algolia-sync/internal/config"
	"github.com/pagelift/algolia-sync/models"
)

// stageSuffix is the draft-stage query suffix the CMS appends to redirect
// links. It must be stripped before indexing or search results leak staging
// URLs.
const stageSuffix = "/?stage=Stage"

// pageMapper is the default [RecordMapper]. Whether records carry the
// default-data triple at the root or nested per locale is decided once at
// construction from the content source's capability, never per item.
type pageMapper struct {
	lists     config.FieldLists
	localised bool
}

// NewPageMapper constructs the default mapper. lists declares the
// deployment-specific fields and relation links to index on top of the
// always-present Title, Url and MenuTitle.
func NewPageMapper(lists config.FieldLists, localised bool) RecordMapper {
	return &pageMapper{
		lists:     lists,
		localised: localised,
	}
}

func (m *pageMapper) Map(item models.ContentItem) models.IndexRecord {
	record := models.IndexRecord{
		ObjectID: strconv.FormatInt(item.ID(), 10),
		Fields: map[string]any{
			"ClassName": item.Kind(),
		},
	}

	if m.localised {
		if loc, ok := item.(models.Localizable); ok {
			m.applyLocales(loc, item, &record)
			return record
		}
	}

	applyDefaultData(item, record.Fields)
	applyFieldList(item, m.lists.Fields, record.Fields)
	applyImageList(item, m.lists.Images, record.Fields)
	return record
}

// applyLocales produces one nested block per locale, each built from the
// item re-read in that locale's context: titles, links, field values and
// relation links are all locale-dependent.
func (m *pageMapper) applyLocales(loc models.Localizable, item models.ContentItem, record *models.IndexRecord) {
	locales := loc.Locales()
	record.Locales = make(map[string]map[string]any, len(locales))

	for _, locale := range locales {
		localisedItem := loc.InLocale(locale)
		if localisedItem == nil {
			continue
		}

		block := make(map[string]any, 4+len(m.lists.LocalisedFields)+len(m.lists.LocalisedImages))
		applyDefaultData(localisedItem, block)
		applyFieldList(localisedItem, m.lists.LocalisedFields, block)
		applyImageList(localisedItem, m.lists.LocalisedImages, block)
		record.Locales[locale] = block
	}

	// Root-level field lists still apply: locale blocks add to the
	// record, they do not replace the non-localised configuration.
	applyFieldList(item, m.lists.Fields, record.Fields)
	applyImageList(item, m.lists.Images, record.Fields)
}

// applyDefaultData writes the always-indexed triple. Redirect links carry
// the draft-stage suffix in some CMS contexts; everything else passes
// through untouched.
func applyDefaultData(item models.ContentItem, target map[string]any) {
	target["Title"] = item.Title()
	if item.Kind() == models.KindRedirect {
		target["Url"] = strings.ReplaceAll(item.Link(), stageSuffix, "")
	} else {
		target["Url"] = item.Link()
	}
	target["MenuTitle"] = item.MenuTitle()
}

// applyFieldList copies each configured scalar field that yields a
// non-empty value. Absent fields are omitted, never written as null.
func applyFieldList(item models.ContentItem, names []string, target map[string]any) {
	for _, name := range names {
		if value, ok := item.Field(name); ok {
			target[name] = value
		}
	}
}

// applyImageList copies each configured relation whose target resolves to a
// link.
func applyImageList(item models.ContentItem, names []string, target map[string]any) {
	for _, name := range names {
		if link, ok := item.RelationLink(name); ok {
			target[name] = link
		}
	}
}

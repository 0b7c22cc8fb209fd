// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/algolia-sync/internal/config"
	"github.com/pagelift/algolia-sync/models"
)

func testPage() *models.Page {
	return &models.Page{
		PageID:        42,
		ClassName:     "Page",
		ShowInSearch:  true,
		LastEdited:    time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
		PageTitle:     "About us",
		PageMenuTitle: "About",
		PageLink:      "/about-us/",
		FieldValues: map[string]string{
			"Content":  "<p>Hello</p>",
			"Teaser":   "",
			"Subtitle": "Who we are",
		},
		RelationLinks: map[string]string{
			"HeroImage": "/assets/hero.jpg",
		},
	}
}

func TestPageMapper_DefaultData(t *testing.T) {
	mapper := NewPageMapper(config.FieldLists{}, false)

	record := mapper.Map(testPage())

	assert.Equal(t, "42", record.ObjectID)
	assert.Equal(t, "Page", record.Fields["ClassName"])
	assert.Equal(t, "About us", record.Fields["Title"])
	assert.Equal(t, "/about-us/", record.Fields["Url"])
	assert.Equal(t, "About", record.Fields["MenuTitle"])
	assert.Nil(t, record.Locales)

	// Nothing beyond the default data without a configured field list.
	assert.Len(t, record.Fields, 4)
}

func TestPageMapper_RedirectLinkSanitised(t *testing.T) {
	page := testPage()
	page.ClassName = models.KindRedirect
	page.PageLink = "/moved-page/?stage=Stage"

	mapper := NewPageMapper(config.FieldLists{}, false)
	record := mapper.Map(page)

	assert.Equal(t, "/moved-page", record.Fields["Url"])
	assert.Equal(t, models.KindRedirect, record.Fields["ClassName"])
}

func TestPageMapper_RedirectWithoutSuffixUntouched(t *testing.T) {
	page := testPage()
	page.ClassName = models.KindRedirect
	page.PageLink = "/moved-page/"

	mapper := NewPageMapper(config.FieldLists{}, false)
	record := mapper.Map(page)

	assert.Equal(t, "/moved-page/", record.Fields["Url"])
}

func TestPageMapper_ConfiguredFieldsSkipEmpty(t *testing.T) {
	lists := config.FieldLists{
		Fields: []string{"Content", "Teaser", "Subtitle", "Missing"},
		Images: []string{"HeroImage", "Thumbnail"},
	}
	mapper := NewPageMapper(lists, false)

	record := mapper.Map(testPage())

	assert.Equal(t, "<p>Hello</p>", record.Fields["Content"])
	assert.Equal(t, "Who we are", record.Fields["Subtitle"])
	assert.Equal(t, "/assets/hero.jpg", record.Fields["HeroImage"])

	// Empty and absent values are omitted, never written as empty strings.
	_, hasTeaser := record.Fields["Teaser"]
	assert.False(t, hasTeaser)
	_, hasMissing := record.Fields["Missing"]
	assert.False(t, hasMissing)
	_, hasThumbnail := record.Fields["Thumbnail"]
	assert.False(t, hasThumbnail)
}

func TestPageMapper_LocalisedFanOut(t *testing.T) {
	page := testPage()
	page.LocaleOrder = []string{"en_US", "de_DE"}
	page.LocaleVariants = map[string]*models.Page{
		"en_US": {
			PageID:        42,
			ClassName:     "Page",
			PageTitle:     "About us",
			PageMenuTitle: "About",
			PageLink:      "/about-us/",
			FieldValues:   map[string]string{"Content": "<p>Hello</p>"},
		},
		"de_DE": {
			PageID:        42,
			ClassName:     "Page",
			PageTitle:     "Über uns",
			PageMenuTitle: "Über",
			PageLink:      "/de/ueber-uns/",
			FieldValues:   map[string]string{"Content": "<p>Hallo</p>"},
		},
	}

	lists := config.FieldLists{
		Fields:          []string{"Subtitle"},
		LocalisedFields: []string{"Content"},
	}
	mapper := NewPageMapper(lists, true)

	record := mapper.Map(page)

	require.Len(t, record.Locales, 2)

	en := record.Locales["en_US"]
	assert.Equal(t, "About us", en["Title"])
	assert.Equal(t, "/about-us/", en["Url"])
	assert.Equal(t, "About", en["MenuTitle"])
	assert.Equal(t, "<p>Hello</p>", en["Content"])

	de := record.Locales["de_DE"]
	assert.Equal(t, "Über uns", de["Title"])
	assert.Equal(t, "/de/ueber-uns/", de["Url"])
	assert.Equal(t, "Über", de["MenuTitle"])
	assert.Equal(t, "<p>Hallo</p>", de["Content"])

	// Root still carries identity plus the non-localised field list, but
	// not the default-data triple.
	assert.Equal(t, "42", record.ObjectID)
	assert.Equal(t, "Page", record.Fields["ClassName"])
	assert.Equal(t, "Who we are", record.Fields["Subtitle"])
	_, hasRootTitle := record.Fields["Title"]
	assert.False(t, hasRootTitle)
}

func TestPageMapper_LocalisedSkipsUnknownVariant(t *testing.T) {
	page := testPage()
	page.LocaleOrder = []string{"en_US", "fr_FR"}
	page.LocaleVariants = map[string]*models.Page{
		"en_US": {PageID: 42, PageTitle: "About us", PageLink: "/about-us/"},
	}

	mapper := NewPageMapper(config.FieldLists{}, true)
	record := mapper.Map(page)

	require.Len(t, record.Locales, 1)
	_, hasFrench := record.Locales["fr_FR"]
	assert.False(t, hasFrench)
}

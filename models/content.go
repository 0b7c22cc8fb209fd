// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package models

import "time"

// KindRedirect is the content kind whose computed link may carry a staging
// query suffix that must never reach the search index.
const KindRedirect = "RedirectorPage"

// ContentItem is a read-only view of one live CMS page as the sync engine
// sees it. Implementations are produced by the content source adapter and
// are never mutated by the engine.
type ContentItem interface {
	// ID is the stable identity of the page inside the content store.
	ID() int64

	// Kind is the page's type discriminator (e.g. "Page", "RedirectorPage").
	Kind() string

	// Visible reports whether the page should be present in the search index.
	Visible() bool

	// LastModified is the page's last-edited timestamp on the live stage.
	LastModified() time.Time

	Title() string
	MenuTitle() string

	// Link is the page's public URL as computed by the CMS.
	Link() string

	// Field returns the value of a configured scalar field. The second
	// return is false when the field is absent or empty for this page;
	// absence is the normal case for heterogeneous page kinds.
	Field(name string) (string, bool)

	// RelationLink returns the resolved link of a configured relation
	// (typically an image). False when the relation is not set or its
	// target has no resolvable link.
	RelationLink(name string) (string, bool)
}

// Localizable is the optional capability a ContentItem exposes when the
// content store runs with multi-locale support. Locale enumeration is finite
// and restartable; InLocale re-reads the page in that locale's context so
// titles and links come back localised.
type Localizable interface {
	Locales() []string
	InLocale(locale string) ContentItem
}

// Page is the content source adapter's concrete ContentItem. Field and
// relation values are pre-resolved at query time so the mapper never touches
// the database.
type Page struct {
	PageID       int64
	ClassName    string
	ShowInSearch bool
	LastEdited   time.Time

	PageTitle     string
	PageMenuTitle string
	PageLink      string

	FieldValues   map[string]string
	RelationLinks map[string]string

	// LocaleVariants holds the per-locale re-read of this page, keyed by
	// locale code. Empty when localisation is off. LocaleOrder preserves
	// the content store's locale ordering.
	LocaleVariants map[string]*Page
	LocaleOrder    []string
}

func (p *Page) ID() int64               { return p.PageID }
func (p *Page) Kind() string            { return p.ClassName }
func (p *Page) Visible() bool           { return p.ShowInSearch }
func (p *Page) LastModified() time.Time { return p.LastEdited }
func (p *Page) Title() string           { return p.PageTitle }
func (p *Page) MenuTitle() string       { return p.PageMenuTitle }
func (p *Page) Link() string            { return p.PageLink }

func (p *Page) Field(name string) (string, bool) {
	v, ok := p.FieldValues[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (p *Page) RelationLink(name string) (string, bool) {
	v, ok := p.RelationLinks[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Locales implements Localizable.
func (p *Page) Locales() []string { return p.LocaleOrder }

// InLocale implements Localizable. The returned page carries the localised
// title, link and field values; kind and identity are locale-independent.
// Returns nil when the locale is unknown for this page.
func (p *Page) InLocale(locale string) ContentItem {
	v, ok := p.LocaleVariants[locale]
	if !ok {
		return nil
	}
	return v
}

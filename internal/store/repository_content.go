// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/models"
)

// contentRepository implements [ContentSource] over the CMS content
// database. It reads the live-stage projection the CMS maintains:
//
//	pages          (id, class_name, show_in_search, last_edited,
//	                title, menu_title, link)
//	page_fields    (page_id, locale, name, value)   -- '' locale = root
//	page_relations (page_id, locale, name, link)    -- '' locale = root
//	page_locales   (page_id, locale, title, menu_title, link, sort_order)
//
// Field and relation values are pre-resolved into the returned [models.Page]
// so the mapper never goes back to the database. The repository never writes.
type contentRepository struct {
	*DB
	logger    *logger.Logger
	localised bool
}

// NewContentRepository constructs a [ContentSource] over db. The
// localisation capability is resolved once here: a content store with any
// page_locales rows fans records out per locale for the whole process
// lifetime.
func NewContentRepository(ctx context.Context, db *DB, log *logger.Logger) (ContentSource, error) {
	repo := &contentRepository{
		DB:     db,
		logger: log,
	}

	var localised bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM page_locales)").Scan(&localised)
	if err != nil {
		log.Err(err).Str("func", "NewContentRepository").Msg("failed to detect localisation capability")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	repo.localised = localised

	log.Info().Bool("localised", localised).Msg("content source capability resolved")
	return repo, nil
}

func (c *contentRepository) Localised() bool { return c.localised }

func (c *contentRepository) QueryVisible(ctx context.Context) ([]models.ContentItem, error) {
	return c.queryPages(ctx, sq.Eq{"show_in_search": true})
}

func (c *contentRepository) QueryVisibleExcluding(ctx context.Context, exclude []int64) ([]models.ContentItem, error) {
	if len(exclude) == 0 {
		return c.QueryVisible(ctx)
	}
	return c.queryPages(ctx, sq.And{
		sq.Eq{"show_in_search": true},
		sq.NotEq{"id": exclude},
	})
}

func (c *contentRepository) QueryVisibleModifiedAfter(ctx context.Context, among []int64, since time.Time) ([]models.ContentItem, error) {
	if len(among) == 0 {
		return nil, nil
	}
	return c.queryPages(ctx, sq.And{
		sq.Eq{"show_in_search": true},
		sq.Eq{"id": among},
		sq.Gt{"last_edited": since},
	})
}

func (c *contentRepository) QueryHiddenAmong(ctx context.Context, among []int64) ([]models.ContentItem, error) {
	if len(among) == 0 {
		return nil, nil
	}
	return c.queryPages(ctx, sq.And{
		sq.Eq{"show_in_search": false},
		sq.Eq{"id": among},
	})
}

func (c *contentRepository) queryPages(ctx context.Context, pred any) ([]models.ContentItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder().
		Select("id", "class_name", "show_in_search", "last_edited", "title", "menu_title", "link").
		From("pages").
		Where(pred).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contentRepository.queryPages").Msg("failed to query pages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pages := make([]*models.Page, 0, 50)
	byID := make(map[int64]*models.Page, 50)
	for rows.Next() {
		page := &models.Page{
			FieldValues:   make(map[string]string),
			RelationLinks: make(map[string]string),
		}
		scanErr := rows.Scan(
			&page.PageID,
			&page.ClassName,
			&page.ShowInSearch,
			&page.LastEdited,
			&page.PageTitle,
			&page.PageMenuTitle,
			&page.PageLink,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "contentRepository.queryPages").Msg("failed to scan page row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		pages = append(pages, page)
		byID[page.PageID] = page
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "contentRepository.queryPages").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(pages) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, p.PageID)
	}

	if c.localised {
		if err = c.loadLocales(ctx, ids, byID); err != nil {
			return nil, err
		}
	}
	if err = c.loadFields(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err = c.loadRelations(ctx, ids, byID); err != nil {
		return nil, err
	}

	items := make([]models.ContentItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, p)
	}
	return items, nil
}

// loadLocales attaches one locale variant per page_locales row. The variant
// starts as a locale-context re-read of the page: localised default data,
// field and relation maps filled by loadFields/loadRelations afterwards.
func (c *contentRepository) loadLocales(ctx context.Context, ids []int64, byID map[int64]*models.Page) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder().
		Select("page_id", "locale", "title", "menu_title", "link").
		From("page_locales").
		Where(sq.Eq{"page_id": ids}).
		OrderBy("page_id", "sort_order").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contentRepository.loadLocales").Msg("failed to query page locales")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var pageID int64
		var locale, title, menuTitle, link string
		if scanErr := rows.Scan(&pageID, &locale, &title, &menuTitle, &link); scanErr != nil {
			log.Err(scanErr).Str("func", "contentRepository.loadLocales").Msg("failed to scan page locale row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		page, ok := byID[pageID]
		if !ok {
			continue
		}
		if page.LocaleVariants == nil {
			page.LocaleVariants = make(map[string]*models.Page, 4)
		}
		page.LocaleVariants[locale] = &models.Page{
			PageID:        page.PageID,
			ClassName:     page.ClassName,
			ShowInSearch:  page.ShowInSearch,
			LastEdited:    page.LastEdited,
			PageTitle:     title,
			PageMenuTitle: menuTitle,
			PageLink:      link,
			FieldValues:   make(map[string]string),
			RelationLinks: make(map[string]string),
		}
		page.LocaleOrder = append(page.LocaleOrder, locale)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "contentRepository.loadLocales").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

func (c *contentRepository) loadFields(ctx context.Context, ids []int64, byID map[int64]*models.Page) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder().
		Select("page_id", "locale", "name", "value").
		From("page_fields").
		Where(sq.Eq{"page_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contentRepository.loadFields").Msg("failed to query page fields")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var pageID int64
		var locale, name, value string
		if scanErr := rows.Scan(&pageID, &locale, &name, &value); scanErr != nil {
			log.Err(scanErr).Str("func", "contentRepository.loadFields").Msg("failed to scan page field row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if target := c.fieldTarget(byID, pageID, locale); target != nil {
			target.FieldValues[name] = value
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "contentRepository.loadFields").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

func (c *contentRepository) loadRelations(ctx context.Context, ids []int64, byID map[int64]*models.Page) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder().
		Select("page_id", "locale", "name", "link").
		From("page_relations").
		Where(sq.Eq{"page_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contentRepository.loadRelations").Msg("failed to query page relations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var pageID int64
		var locale, name, link string
		if scanErr := rows.Scan(&pageID, &locale, &name, &link); scanErr != nil {
			log.Err(scanErr).Str("func", "contentRepository.loadRelations").Msg("failed to scan page relation row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if target := c.fieldTarget(byID, pageID, locale); target != nil {
			target.RelationLinks[name] = link
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "contentRepository.loadRelations").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

// fieldTarget resolves which page view a field/relation row belongs to: the
// root page for the '' locale, a locale variant otherwise. Rows for locales
// the page does not declare are dropped.
func (c *contentRepository) fieldTarget(byID map[int64]*models.Page, pageID int64, locale string) *models.Page {
	page, ok := byID[pageID]
	if !ok {
		return nil
	}
	if locale == "" {
		return page
	}
	return page.LocaleVariants[locale]
}

// internal/item/repository.go
//
// MySQL item source.
//
// Context
// -------
// Larger catalogs keep their items in a database instead of flat files.
// These helpers provide read-only access to the **item**, **item_attribute**,
// and **item_category** tables and assemble the same Item values the content
// loader produces, so the facet engine never knows which source fed it.
//
// Workflow
// --------
//  1. Callers supply a *sqlx.DB that is already connected (see
//     internal/database).
//  2. Three parameterised SELECTs run, all explicitly ordered so the
//     assembled item list is deterministic — build output becomes
//     permanent URLs, so input order may never depend on scan order.
//  3. Errors are returned verbatim for the caller to wrap or log.
//
// Notes
// -----
//   - Attribute rows carry a position column preserving authored order,
//     which the display lookup's first-seen-wins rule relies on.
//   - Column lists match the scan structs below; update both together.

package item

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type itemRow struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Slug  string `db:"slug"`
	Price string `db:"price"`
}

type attributeRow struct {
	ItemID int64  `db:"item_id"`
	Name   string `db:"name"`
	Value  string `db:"value"`
}

type categoryRow struct {
	ItemID   int64  `db:"item_id"`
	Category string `db:"category"`
}

// AllItems returns every published item with its attributes and category
// memberships, ordered by item id.
func AllItems(ctx context.Context, db *sqlx.DB) ([]Item, error) {
	const itemQ = `
        SELECT id, title, COALESCE(slug, '') AS slug, COALESCE(price, '') AS price
        FROM   item
        WHERE  published = 1
        ORDER  BY id`
	var rows []itemRow
	if err := db.SelectContext(ctx, &rows, itemQ); err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}

	const attrQ = `
        SELECT item_id, name, value
        FROM   item_attribute
        ORDER  BY item_id, position`
	var attrs []attributeRow
	if err := db.SelectContext(ctx, &attrs, attrQ); err != nil {
		return nil, fmt.Errorf("select item attributes: %w", err)
	}

	const catQ = `
        SELECT item_id, category
        FROM   item_category
        ORDER  BY item_id, category`
	var cats []categoryRow
	if err := db.SelectContext(ctx, &cats, catQ); err != nil {
		return nil, fmt.Errorf("select item categories: %w", err)
	}

	attrsByItem := make(map[int64][]RawAttribute, len(rows))
	for _, a := range attrs {
		attrsByItem[a.ItemID] = append(attrsByItem[a.ItemID], RawAttribute{
			Name:  a.Name,
			Value: a.Value,
		})
	}
	catsByItem := make(map[int64][]string, len(rows))
	for _, c := range cats {
		catsByItem[c.ItemID] = append(catsByItem[c.ItemID], c.Category)
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{
			Title:      r.Title,
			Slug:       r.Slug,
			Price:      r.Price,
			Categories: catsByItem[r.ID],
			Attributes: attrsByItem[r.ID],
		})
	}
	return items, nil
}

// Package ordering computes position and category assignments for ranked,
// categorised link lists. Every function is pure: it reads a snapshot of the
// stored rows and returns the rows that must be rewritten. Nothing here talks
// to the database.
package ordering

import (
	"slices"

	"github.com/google/uuid"

	"github.com/example/linkhub/internal/models"
)

// Item is the part of a stored row the engine cares about.
type Item struct {
	ID       uuid.UUID
	Category string
	Position int
}

// Placement is one row rewrite. From* hold the values the rewrite was computed
// against so the store can refuse it when the row changed in the meantime.
type Placement struct {
	ID           uuid.UUID `json:"id"`
	Category     string    `json:"category"`
	Position     int       `json:"position"`
	FromCategory string    `json:"-"`
	FromPosition int       `json:"-"`
}

// Direction is a reorder intent. Up and Left move towards the start.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

func (d Direction) step() int {
	switch d {
	case Up, Left:
		return -1
	case Down, Right:
		return 1
	}
	return 0
}

// Sorted returns a copy of items ordered by position. Rows sharing a position
// keep their input order.
func Sorted(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		return a.Position - b.Position
	})
	return out
}

// InCategory returns the items of one category in position order.
func InCategory(items []Item, category string) []Item {
	category = models.NormalizeCategory(category)
	var out []Item
	for _, item := range items {
		if models.NormalizeCategory(item.Category) == category {
			out = append(out, item)
		}
	}
	return Sorted(out)
}

// Categories lists the categories present in items. Names from explicit come
// first, in that order, when at least one item carries them; the remaining
// categories follow in the order they are first seen in items.
func Categories(items []Item, explicit []string) []string {
	present := make(map[string]bool, len(items))
	for _, item := range items {
		present[models.NormalizeCategory(item.Category)] = true
	}

	out := make([]string, 0, len(present))
	added := make(map[string]bool, len(present))
	for _, name := range explicit {
		name = models.NormalizeCategory(name)
		if present[name] && !added[name] {
			out = append(out, name)
			added[name] = true
		}
	}
	for _, item := range items {
		name := models.NormalizeCategory(item.Category)
		if !added[name] {
			out = append(out, name)
			added[name] = true
		}
	}
	return out
}

// NextPosition returns the position that appends a row to the end of category.
func NextPosition(items []Item, category string) int {
	group := InCategory(items, category)
	if len(group) == 0 {
		return 1
	}
	return group[len(group)-1].Position + 1
}

// MoveWithinCategory swaps the position of id with its neighbour in the
// requested direction. Moving past either end, or an unknown id, yields nil.
func MoveWithinCategory(items []Item, id uuid.UUID, dir Direction) []Placement {
	step := dir.step()
	idx := slices.IndexFunc(items, func(item Item) bool { return item.ID == id })
	if step == 0 || idx < 0 {
		return nil
	}

	group := InCategory(items, items[idx].Category)
	at := slices.IndexFunc(group, func(item Item) bool { return item.ID == id })
	next := at + step
	if next < 0 || next >= len(group) {
		return nil
	}

	cur, neighbour := group[at], group[next]
	if cur.Position == neighbour.Position {
		// Equal positions cannot be swapped; rank the whole group densely
		// with the pair exchanged instead.
		group[at], group[next] = group[next], group[at]
		return renumber(group, models.NormalizeCategory(cur.Category), uuid.Nil)
	}

	return []Placement{
		{ID: cur.ID, Category: cur.Category, Position: neighbour.Position, FromCategory: cur.Category, FromPosition: cur.Position},
		{ID: neighbour.ID, Category: neighbour.Category, Position: cur.Position, FromCategory: neighbour.Category, FromPosition: neighbour.Position},
	}
}

// MoveCategory swaps the labels of category name and its neighbour in the
// category order. Positions are left untouched. An unknown category or a move
// past either end yields nil.
func MoveCategory(items []Item, explicit []string, name string, dir Direction) []Placement {
	step := dir.step()
	if step == 0 {
		return nil
	}

	cats := Categories(items, explicit)
	source := models.NormalizeCategory(name)
	at := slices.Index(cats, source)
	if at < 0 || at+step < 0 || at+step >= len(cats) {
		return nil
	}
	target := cats[at+step]

	var out []Placement
	for _, item := range items {
		var label string
		switch models.NormalizeCategory(item.Category) {
		case source:
			label = target
		case target:
			label = source
		default:
			continue
		}
		out = append(out, Placement{
			ID:           item.ID,
			Category:     label,
			Position:     item.Position,
			FromCategory: item.Category,
			FromPosition: item.Position,
		})
	}
	return out
}

// Place splices target into category at desired (1-based, clamped to
// [1, n+1] where n is the number of other rows in the category) and renumbers
// the category to 1..n+1. target may or may not already be part of items; its
// Category and Position are the stored values the rewrite is checked against.
// The target row is always part of the result; other rows only when they move.
func Place(items []Item, target Item, desired int, category string) []Placement {
	category = models.NormalizeCategory(category)

	others := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != target.ID {
			others = append(others, item)
		}
	}
	group := InCategory(others, category)

	desired = min(max(desired, 1), len(group)+1)
	seq := make([]Item, 0, len(group)+1)
	seq = append(seq, group[:desired-1]...)
	seq = append(seq, target)
	seq = append(seq, group[desired-1:]...)

	return renumber(seq, category, target.ID)
}

// InsertAtPosition places a freshly created row into category at desired.
func InsertAtPosition(items []Item, created Item, desired int, category string) []Placement {
	return Place(items, created, desired, category)
}

// UpdateInPlace re-places an edited row at its current position and category
// so conflicts introduced by the edit are absorbed. Unknown ids yield nil.
func UpdateInPlace(items []Item, id uuid.UUID) []Placement {
	idx := slices.IndexFunc(items, func(item Item) bool { return item.ID == id })
	if idx < 0 {
		return nil
	}
	target := items[idx]
	return Place(items, target, target.Position, target.Category)
}

// RenormalizeAll rewrites every category to the dense sequence 1..N, keeping
// the current relative order.
func RenormalizeAll(items []Item, explicit []string) []Placement {
	var out []Placement
	for _, category := range Categories(items, explicit) {
		out = append(out, renumber(InCategory(items, category), category, uuid.Nil)...)
	}
	return out
}

// renumber assigns 1..N and category to seq, emitting rows that change plus
// keep (when not Nil).
func renumber(seq []Item, category string, keep uuid.UUID) []Placement {
	var out []Placement
	for i, item := range seq {
		pos := i + 1
		if item.ID != keep && item.Position == pos && models.NormalizeCategory(item.Category) == category {
			continue
		}
		out = append(out, Placement{
			ID:           item.ID,
			Category:     category,
			Position:     pos,
			FromCategory: item.Category,
			FromPosition: item.Position,
		})
	}
	return out
}

// Apply returns a copy of items with placements applied. Used to preview the
// outcome of a reorder.
func Apply(items []Item, placements []Placement) []Item {
	byID := make(map[uuid.UUID]Placement, len(placements))
	for _, p := range placements {
		byID[p.ID] = p
	}
	out := slices.Clone(items)
	for i, item := range out {
		if p, ok := byID[item.ID]; ok {
			out[i].Category = p.Category
			out[i].Position = p.Position
		}
	}
	return out
}

// MergeCategory relabels every row of from as into. The moved rows keep
// their relative order and are appended after the rows already in into,
// which is then renumbered densely. Merging a category into itself, or an
// empty category, yields nil.
func MergeCategory(items []Item, from, into string) []Placement {
	from, into = models.NormalizeCategory(from), models.NormalizeCategory(into)
	if from == into {
		return nil
	}
	moved := InCategory(items, from)
	if len(moved) == 0 {
		return nil
	}
	seq := append(InCategory(items, into), moved...)
	return renumber(seq, into, uuid.Nil)
}

// Package storage defines persistence contracts for the coffee bean inventory.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested inventory row is missing.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownColumn indicates a column outside the allow-list.
	ErrUnknownColumn = errors.New("unknown column")
)

// Item is one coffee bean inventory row.
type Item struct {
	ID        int64
	Body      string
	Acidity   string
	Flavor    string
	Aroma     string
	Roast     string
	Roastery  string
	RoastDate string
	Country   string
	Blend     string
	Sold      int64
}

// NewItem holds the user-supplied fields of a row to insert. The id is
// assigned by storage and the sold counter always starts at zero.
type NewItem struct {
	Body      string
	Acidity   string
	Flavor    string
	Aroma     string
	Roast     string
	Roastery  string
	RoastDate string
	Country   string
	Blend     string
}

// Store persists inventory rows.
type Store interface {
	InitSchema(ctx context.Context) error
	InsertItem(ctx context.Context, item NewItem) error
	DeleteItem(ctx context.Context, id int64) error
	GetItem(ctx context.Context, id int64) (Item, error)
	ListItems(ctx context.Context) ([]Item, error)
	ListItemsSorted(ctx context.Context, column Column) ([]Item, error)
	SearchItems(ctx context.Context, column Column, substring string) ([]Item, error)
	IncrementSold(ctx context.Context, id int64, quantity int64) error
}

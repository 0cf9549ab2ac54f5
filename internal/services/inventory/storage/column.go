package storage

import (
	"fmt"
	"strings"
)

// Column identifies one column of the inventory table. Its string value is
// the column name on disk and must not change.
type Column string

const (
	ColumnID        Column = "id"
	ColumnBody      Column = "Body"
	ColumnAcidity   Column = "Acidity"
	ColumnFlavor    Column = "Flavor"
	ColumnAroma     Column = "Aroma"
	ColumnRoast     Column = "Roast"
	ColumnRoastery  Column = "Roastery"
	ColumnRoastDate Column = "RoastDate"
	ColumnCountry   Column = "Country"
	ColumnBlend     Column = "Blend"
	ColumnSold      Column = "Sold"
)

// Columns lists every column in table order.
func Columns() []Column {
	return []Column{
		ColumnID,
		ColumnBody,
		ColumnAcidity,
		ColumnFlavor,
		ColumnAroma,
		ColumnRoast,
		ColumnRoastery,
		ColumnRoastDate,
		ColumnCountry,
		ColumnBlend,
		ColumnSold,
	}
}

// TextColumns lists the free-form text columns in table order.
func TextColumns() []Column {
	return []Column{
		ColumnBody,
		ColumnAcidity,
		ColumnFlavor,
		ColumnAroma,
		ColumnRoast,
		ColumnRoastery,
		ColumnRoastDate,
		ColumnCountry,
		ColumnBlend,
	}
}

// SortColumns lists the columns rows can be ordered by.
func SortColumns() []Column {
	return Columns()
}

// SearchColumns lists the columns substring search applies to.
func SearchColumns() []Column {
	return TextColumns()
}

// ParseColumn resolves a user-typed column name case-insensitively against
// allowed. It never returns a column outside allowed.
func ParseColumn(name string, allowed []Column) (Column, error) {
	name = strings.TrimSpace(name)
	for _, column := range allowed {
		if strings.EqualFold(name, string(column)) {
			return column, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Valid reports whether c is a known column.
func (c Column) Valid() bool {
	for _, column := range Columns() {
		if c == column {
			return true
		}
	}
	return false
}

// Searchable reports whether c may be used for substring search.
func (c Column) Searchable() bool {
	for _, column := range SearchColumns() {
		if c == column {
			return true
		}
	}
	return false
}

// Value returns the named column of item rendered as text.
func (item Item) Value(c Column) string {
	switch c {
	case ColumnID:
		return fmt.Sprint(item.ID)
	case ColumnBody:
		return item.Body
	case ColumnAcidity:
		return item.Acidity
	case ColumnFlavor:
		return item.Flavor
	case ColumnAroma:
		return item.Aroma
	case ColumnRoast:
		return item.Roast
	case ColumnRoastery:
		return item.Roastery
	case ColumnRoastDate:
		return item.RoastDate
	case ColumnCountry:
		return item.Country
	case ColumnBlend:
		return item.Blend
	case ColumnSold:
		return fmt.Sprint(item.Sold)
	default:
		return ""
	}
}

// Set assigns value to the named text column of item.
func (item *NewItem) Set(c Column, value string) error {
	switch c {
	case ColumnBody:
		item.Body = value
	case ColumnAcidity:
		item.Acidity = value
	case ColumnFlavor:
		item.Flavor = value
	case ColumnAroma:
		item.Aroma = value
	case ColumnRoast:
		item.Roast = value
	case ColumnRoastery:
		item.Roastery = value
	case ColumnRoastDate:
		item.RoastDate = value
	case ColumnCountry:
		item.Country = value
	case ColumnBlend:
		item.Blend = value
	default:
		return fmt.Errorf("%w: %q is not a text column", ErrUnknownColumn, string(c))
	}
	return nil
}

// Get returns the named text column of item.
func (item NewItem) Get(c Column) string {
	return Item{
		Body:      item.Body,
		Acidity:   item.Acidity,
		Flavor:    item.Flavor,
		Aroma:     item.Aroma,
		Roast:     item.Roast,
		Roastery:  item.Roastery,
		RoastDate: item.RoastDate,
		Country:   item.Country,
		Blend:     item.Blend,
	}.Value(c)
}

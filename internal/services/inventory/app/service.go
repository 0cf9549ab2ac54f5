// Package app implements the inventory commands behind each shell action.
//
// Handlers take the raw text of the shell's input fields, coerce and
// validate it, and call storage. Input problems come back as recoverable
// apperrors; storage problems come back as CodeStorageFailure, which the
// shell treats as fatal.
package app

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	apperrors "github.com/louisbranch/beanstock/internal/platform/errors"
	"github.com/louisbranch/beanstock/internal/platform/otel"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage"
)

const tracerName = "github.com/louisbranch/beanstock/internal/services/inventory/app"

// Field labels used in error metadata.
const (
	fieldItemID   = "Item ID"
	fieldQuantity = "Quantity"
	fieldColumn   = "Column"
)

// AddItemInput carries the nine seller form fields.
type AddItemInput struct {
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

// DeleteItemInput carries the seller's delete id field.
type DeleteItemInput struct {
	ID string
}

// SortInput carries the buyer's sort selector.
type SortInput struct {
	Column string
}

// SearchInput carries the buyer's search selector and search text.
type SearchInput struct {
	Column string
	Value  string
}

// PurchaseInput carries the buyer's item id and quantity fields.
type PurchaseInput struct {
	ID       string
	Quantity string
}

// PurchaseResult reports a recorded purchase.
type PurchaseResult struct {
	ID       int64
	Quantity int64
}

// Service runs inventory commands against a store.
type Service struct {
	store  storage.Store
	tracer trace.Tracer
}

// NewService creates a command service backed by store.
func NewService(store storage.Store) *Service {
	return &Service{
		store:  store,
		tracer: otel.Tracer(tracerName),
	}
}

// AddItem inserts the form values as a new row. Fields are not validated.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) (err error) {
	ctx, span := s.start(ctx, "AddItem")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return err
	}

	item := storage.NewItem{
		Body:      in.Body,
		Acidity:   in.Acidity,
		Flavor:    in.Flavor,
		Aroma:     in.Aroma,
		Roast:     in.Roast,
		Roastery:  in.Roastery,
		RoastDate: in.RoastDate,
		Country:   in.Country,
		Blend:     in.Blend,
	}
	if err := s.store.InsertItem(ctx, item); err != nil {
		return storageFailure("add item", err)
	}
	return nil
}

// DeleteItem removes the row named by the id field. Deleting an id that
// does not exist succeeds.
func (s *Service) DeleteItem(ctx context.Context, in DeleteItemInput) (id int64, err error) {
	ctx, span := s.start(ctx, "DeleteItem")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return 0, err
	}

	id, err = parseInt(in.ID, fieldItemID, "delete")
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int64("inventory.item_id", id))
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return 0, storageFailure("delete item", err)
	}
	return id, nil
}

// ListItems returns every row.
func (s *Service) ListItems(ctx context.Context) (items []storage.Item, err error) {
	ctx, span := s.start(ctx, "ListItems")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return nil, err
	}

	items, err = s.store.ListItems(ctx)
	if err != nil {
		return nil, storageFailure("list items", err)
	}
	span.SetAttributes(attribute.Int("inventory.rows", len(items)))
	return items, nil
}

// SortItems returns every row ordered by the selected column.
func (s *Service) SortItems(ctx context.Context, in SortInput) (items []storage.Item, err error) {
	ctx, span := s.start(ctx, "SortItems")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return nil, err
	}

	column, err := parseColumn(in.Column, storage.SortColumns(), "sort")
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("inventory.column", string(column)))
	items, err = s.store.ListItemsSorted(ctx, column)
	if err != nil {
		return nil, storageFailure("sort items", err)
	}
	return items, nil
}

// SearchItems returns rows whose selected column contains the search text.
// Empty search text matches every row.
func (s *Service) SearchItems(ctx context.Context, in SearchInput) (items []storage.Item, err error) {
	ctx, span := s.start(ctx, "SearchItems")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return nil, err
	}

	column, err := parseColumn(in.Column, storage.SearchColumns(), "search")
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("inventory.column", string(column)))
	items, err = s.store.SearchItems(ctx, column, in.Value)
	if err != nil {
		return nil, storageFailure("search items", err)
	}
	return items, nil
}

// PurchaseItem adds the quantity to the sold counter of the selected item.
// Neither the sign of the quantity nor the existence of the item is checked.
func (s *Service) PurchaseItem(ctx context.Context, in PurchaseInput) (result PurchaseResult, err error) {
	ctx, span := s.start(ctx, "PurchaseItem")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return PurchaseResult{}, err
	}

	id, err := parseInt(in.ID, fieldItemID, "purchase")
	if err != nil {
		return PurchaseResult{}, err
	}
	quantity, err := parseInt(in.Quantity, fieldQuantity, "purchase")
	if err != nil {
		return PurchaseResult{}, err
	}
	span.SetAttributes(
		attribute.Int64("inventory.item_id", id),
		attribute.Int64("inventory.quantity", quantity),
	)
	if err := s.store.IncrementSold(ctx, id, quantity); err != nil {
		return PurchaseResult{}, storageFailure("purchase item", err)
	}
	return PurchaseResult{ID: id, Quantity: quantity}, nil
}

// GetItem returns one row by id.
func (s *Service) GetItem(ctx context.Context, id int64) (item storage.Item, err error) {
	ctx, span := s.start(ctx, "GetItem")
	defer func() { endSpan(span, err) }()
	if err := s.ready(); err != nil {
		return storage.Item{}, err
	}

	span.SetAttributes(attribute.Int64("inventory.item_id", id))
	item, err = s.store.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Item{}, apperrors.WrapWithMetadata(
				apperrors.CodeNotFound,
				"item not found",
				map[string]string{"ID": strconv.FormatInt(id, 10)},
				err,
			)
		}
		return storage.Item{}, storageFailure("get item", err)
	}
	return item, nil
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return apperrors.New(apperrors.CodeStorageFailure, "inventory store is not configured")
	}
	return nil
}

func (s *Service) start(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, noop.Span{}
	}
	return s.tracer.Start(ctx, "inventory."+name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
	}
	span.End()
}

// parseInt coerces a raw field into an integer. action names the command
// so the user message can say what the field was for.
func parseInt(raw string, field string, action string) (int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, apperrors.WithMetadata(
			apperrors.CodeMissingInput,
			strings.ToLower(field)+" is required",
			map[string]string{"Field": field, "Action": action},
		)
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperrors.WrapWithMetadata(
			apperrors.CodeInvalidNumber,
			"parse "+strings.ToLower(field),
			map[string]string{"Field": field, "Value": value, "Action": action},
			err,
		)
	}
	return parsed, nil
}

func parseColumn(raw string, allowed []storage.Column, action string) (storage.Column, error) {
	if strings.TrimSpace(raw) == "" {
		return "", apperrors.WithMetadata(
			apperrors.CodeMissingInput,
			"column is required",
			map[string]string{"Field": fieldColumn, "Action": action},
		)
	}
	column, err := storage.ParseColumn(raw, allowed)
	if err != nil {
		return "", apperrors.WrapWithMetadata(
			apperrors.CodeUnknownColumn,
			action+" column",
			map[string]string{"Column": strings.TrimSpace(raw), "Action": action},
			err,
		)
	}
	return column, nil
}

func storageFailure(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return apperrors.Wrap(apperrors.CodeStorageFailure, op, err)
}

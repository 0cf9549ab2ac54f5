package shell

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/louisbranch/beanstock/internal/platform/errors"
	"github.com/louisbranch/beanstock/internal/services/inventory/app"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "coffee.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newShell(t *testing.T, store *sqlite.Store, opts Options) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return New(app.NewService(store), &out, opts), &out
}

func run(t *testing.T, s *Shell, lines ...string) {
	t.Helper()
	for _, line := range lines {
		quit, err := s.Execute(context.Background(), line)
		require.NoError(t, err, line)
		require.False(t, quit, line)
	}
}

func resultIDs(items []storage.Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestSellerAddAndDelete(t *testing.T) {
	store := openStore(t)
	s, out := newShell(t, store, Options{})

	run(t, s, "mode seller", "set body Light", "set Country Costa Rica", "add")

	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Light", results[0].Body)
	assert.Equal(t, "Costa Rica", results[0].Country)
	assert.Equal(t, int64(0), results[0].Sold)
	assert.Contains(t, out.String(), "Item added successfully.")

	run(t, s, "delete 1")
	assert.Empty(t, s.Results())
	assert.Contains(t, out.String(), "Item deleted successfully.")
}

func TestSellerModeListsRows(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Body: "Full"}))

	s, _ := newShell(t, store, Options{})
	require.NoError(t, s.SetMode(ctx, ModeSeller))
	assert.Equal(t, []int64{1}, resultIDs(s.Results()))
}

func TestBuyerModeStartsEmpty(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Body: "Full"}))

	s, out := newShell(t, store, Options{})
	require.NoError(t, s.SetMode(ctx, ModeBuyer))
	assert.Empty(t, s.Results())

	assert.NotContains(t, out.String(), "RoastDate")

	auto, _ := newShell(t, store, Options{BuyerAutoList: true})
	require.NoError(t, auto.SetMode(ctx, ModeBuyer))
	assert.Equal(t, []int64{1}, resultIDs(auto.Results()))
}

func TestBuyerSortPickSelectPurchase(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Country: "Kenya"}))
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Country: "Brazil"}))

	s, out := newShell(t, store, Options{})
	run(t, s, "mode buyer", "sort country")
	assert.Equal(t, []int64{2, 1}, resultIDs(s.Results()))

	run(t, s, "pick 2")
	id, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	run(t, s, "select")
	assert.Equal(t, "2", s.ItemID())
	assert.Contains(t, out.String(), "Item 2 selected.")

	run(t, s, "qty 3", "purchase")
	assert.Contains(t, out.String(), "Bean purchased successfully.")
	assert.Len(t, s.Results(), 2)

	item, err := store.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.Sold)
}

func TestBuyerSearch(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Flavor: "Chocolate"}))
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Flavor: "Citrus"}))

	s, _ := newShell(t, store, Options{})
	run(t, s, "mode buyer", "search flavor choc")
	assert.Equal(t, []int64{1}, resultIDs(s.Results()))

	run(t, s, "search flavor")
	assert.Equal(t, []int64{1, 2}, resultIDs(s.Results()))
}

func TestSwitchResetsView(t *testing.T) {
	store := openStore(t)
	s, _ := newShell(t, store, Options{})

	run(t, s, "mode seller", "set Roast Dark", "switch")
	assert.Equal(t, ModeBuyer, s.Mode())
	assert.Equal(t, storage.NewItem{}, s.Form())

	run(t, s, "switch")
	assert.Equal(t, ModeSeller, s.Mode())
	assert.Equal(t, "", s.Form().Roast)
}

func TestUserErrorsArePrinted(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Body: "Light"}))

	tests := []struct {
		name  string
		setup []string
		line  string
		want  string
	}{
		{name: "unknown command", line: "brew", want: `Error: Unknown command "brew".`},
		{name: "no mode", line: "add", want: `Error: "add" is not available in None mode.`},
		{name: "missing mode", line: "mode", want: "Error: Mode is required."},
		{name: "unknown mode", line: "mode admin", want: `Error: Unknown mode "admin".`},
		{name: "wrong mode", setup: []string{"mode buyer"}, line: "add", want: `Error: "add" is not available in Buyer mode.`},
		{name: "bad delete id", setup: []string{"mode seller"}, line: "delete abc", want: `Error: Item ID must be a whole number, got "abc".`},
		{name: "empty delete id", setup: []string{"mode seller"}, line: "delete", want: "Error: Please enter an item ID to delete."},
		{name: "unknown field", setup: []string{"mode seller"}, line: "set Sold 4", want: "Error: "},
		{name: "unknown sort column", setup: []string{"mode buyer"}, line: "sort Price", want: `Error: Unknown column "Price".`},
		{name: "no selection", setup: []string{"mode buyer"}, line: "select", want: "Error: No row is selected."},
		{name: "row not shown", setup: []string{"mode buyer"}, line: "pick 1", want: "Error: Item 1 is not in the current results."},
		{name: "purchase without item", setup: []string{"mode buyer"}, line: "purchase", want: "Error: Please select an item to purchase."},
		{name: "missing quantity", setup: []string{"mode buyer", "list", "pick 1", "select"}, line: "purchase", want: "Error: Quantity is required."},
		{name: "bad quantity", setup: []string{"mode buyer", "id 1", "qty lots"}, line: "purchase", want: `Error: Quantity must be a whole number, got "lots".`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, out := newShell(t, store, Options{})
			run(t, s, tc.setup...)
			out.Reset()
			run(t, s, tc.line)
			assert.Contains(t, out.String(), tc.want)
		})
	}
}

func TestSelectMissingRow(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Body: "Light"}))

	s, out := newShell(t, store, Options{})
	run(t, s, "mode buyer", "list", "pick 1")
	require.NoError(t, store.DeleteItem(ctx, 1))

	run(t, s, "select")
	assert.Contains(t, out.String(), "Error: Item 1 was not found.")
	assert.Equal(t, "", s.ItemID())
}

func TestRenderMarksSelectedRow(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.InsertItem(ctx, storage.NewItem{Body: "Light"}))

	s, out := newShell(t, store, Options{})
	run(t, s, "mode buyer", "list", "pick 1")
	out.Reset()
	run(t, s, "show")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "RoastDate")
	assert.True(t, strings.HasPrefix(lines[1], "*"), lines[1])
	assert.Contains(t, lines[1], "Light")
}

func TestHelpListsModeCommands(t *testing.T) {
	store := openStore(t)
	s, out := newShell(t, store, Options{})

	run(t, s, "mode seller")
	out.Reset()
	run(t, s, "help")
	assert.Contains(t, out.String(), "Commands (Seller mode):")
	assert.Contains(t, out.String(), "add")
	assert.NotContains(t, out.String(), "purchase")
}

func TestPortugueseMessages(t *testing.T) {
	store := openStore(t)
	s, out := newShell(t, store, Options{Locale: "pt_BR"})

	run(t, s, "mode seller", "sort Body")
	assert.Contains(t, out.String(), "Modo Seller.")
	assert.Contains(t, out.String(), "Erro: ")
}

func TestRunQuitsCleanly(t *testing.T) {
	store := openStore(t)
	s, out := newShell(t, store, Options{Prompt: true})

	err := s.Run(context.Background(), strings.NewReader("mode seller\nquit\nadd\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "seller> ")
	assert.Contains(t, out.String(), "Goodbye.")
	assert.NotContains(t, out.String(), "Item added successfully.")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	store := openStore(t)
	s, out := newShell(t, store, Options{})

	err := s.Run(context.Background(), strings.NewReader("mode buyer\n"))
	require.NoError(t, err)
	assert.Equal(t, ModeBuyer, s.Mode())
	assert.Contains(t, out.String(), "Select mode")
}

// MockInventory returns canned command results.
type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) AddItem(ctx context.Context, in app.AddItemInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockInventory) DeleteItem(ctx context.Context, in app.DeleteItemInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventory) ListItems(ctx context.Context) ([]storage.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Item), args.Error(1)
}

func (m *MockInventory) SortItems(ctx context.Context, in app.SortInput) ([]storage.Item, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Item), args.Error(1)
}

func (m *MockInventory) SearchItems(ctx context.Context, in app.SearchInput) ([]storage.Item, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Item), args.Error(1)
}

func (m *MockInventory) PurchaseItem(ctx context.Context, in app.PurchaseInput) (app.PurchaseResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(app.PurchaseResult), args.Error(1)
}

func (m *MockInventory) GetItem(ctx context.Context, id int64) (storage.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(storage.Item), args.Error(1)
}

func TestStorageFailureIsFatal(t *testing.T) {
	inv := new(MockInventory)
	failure := apperrors.Wrap(apperrors.CodeStorageFailure, "list items", assert.AnError)
	inv.On("ListItems", mock.Anything).Return(nil, failure)

	var out bytes.Buffer
	s := New(inv, &out, Options{})

	err := s.Run(context.Background(), strings.NewReader("mode seller\nhelp\n"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeStorageFailure, apperrors.GetCode(err))
	assert.Contains(t, out.String(), "Error: The inventory file could not be read or written.")
	assert.NotContains(t, out.String(), "Commands (")
	inv.AssertExpectations(t)
}

func TestPurchasePassesFieldText(t *testing.T) {
	inv := new(MockInventory)
	inv.On("PurchaseItem", mock.Anything, app.PurchaseInput{ID: "7", Quantity: "-2"}).
		Return(app.PurchaseResult{ID: 7, Quantity: -2}, nil)
	inv.On("ListItems", mock.Anything).Return([]storage.Item{{ID: 7, Sold: -2}}, nil)

	var out bytes.Buffer
	s := New(inv, &out, Options{})
	s.mode = ModeBuyer

	run(t, s, "id 7", "qty -2", "purchase")
	assert.Equal(t, []int64{7}, resultIDs(s.Results()))
	inv.AssertExpectations(t)
}

func TestSanitizeKeepsCellsOnOneLine(t *testing.T) {
	assert.Equal(t, "a b c d", sanitize("a\tb\nc\rd"))
	assert.Equal(t, "plain", sanitize("plain"))
}

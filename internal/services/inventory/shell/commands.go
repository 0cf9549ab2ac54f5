package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/beanstock/internal/platform/errors"
	"github.com/louisbranch/beanstock/internal/services/inventory/app"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage"
)

type command struct {
	name  string
	usage string
	modes []Mode
	run   func(ctx context.Context, args string) error
}

func (c command) allowed(mode Mode) bool {
	for _, m := range c.modes {
		if m == mode {
			return true
		}
	}
	return false
}

var (
	anyMode     = []Mode{ModeNone, ModeSeller, ModeBuyer}
	activeModes = []Mode{ModeSeller, ModeBuyer}
	sellerMode  = []Mode{ModeSeller}
	buyerMode   = []Mode{ModeBuyer}
)

func (s *Shell) commandTable() []command {
	return []command{
		{name: "mode", usage: "mode seller|buyer", modes: anyMode, run: s.cmdMode},
		{name: "switch", usage: "switch", modes: activeModes, run: s.cmdSwitch},
		{name: "list", usage: "list", modes: activeModes, run: s.cmdList},
		{name: "show", usage: "show", modes: anyMode, run: s.cmdShow},

		{name: "set", usage: "set <field> <value>", modes: sellerMode, run: s.cmdSet},
		{name: "form", usage: "form", modes: sellerMode, run: s.cmdForm},
		{name: "clear", usage: "clear", modes: sellerMode, run: s.cmdClear},
		{name: "add", usage: "add", modes: sellerMode, run: s.cmdAdd},
		{name: "delete", usage: "delete <id>", modes: sellerMode, run: s.cmdDelete},

		{name: "sort", usage: "sort <column>", modes: buyerMode, run: s.cmdSort},
		{name: "search", usage: "search <column> [text]", modes: buyerMode, run: s.cmdSearch},
		{name: "pick", usage: "pick <id>", modes: buyerMode, run: s.cmdPick},
		{name: "select", usage: "select", modes: buyerMode, run: s.cmdSelect},
		{name: "id", usage: "id <value>", modes: buyerMode, run: s.cmdID},
		{name: "qty", usage: "qty <value>", modes: buyerMode, run: s.cmdQuantity},
		{name: "purchase", usage: "purchase", modes: buyerMode, run: s.cmdPurchase},

		{name: "help", usage: "help", modes: anyMode, run: s.cmdHelp},
	}
}

func (s *Shell) lookup(verb string) (command, bool) {
	for _, cmd := range s.commands {
		if cmd.name == verb {
			return cmd, true
		}
	}
	return command{}, false
}

func (s *Shell) cmdMode(ctx context.Context, args string) error {
	mode, err := ParseMode(args)
	if err != nil {
		return err
	}
	if mode == ModeNone {
		return apperrors.WithMetadata(
			apperrors.CodeMissingInput,
			"mode is required",
			map[string]string{"Field": "Mode", "Action": "mode"},
		)
	}
	return s.setMode(ctx, mode)
}

func (s *Shell) cmdSwitch(ctx context.Context, _ string) error {
	return s.setMode(ctx, s.mode.Toggle())
}

func (s *Shell) cmdList(ctx context.Context, _ string) error {
	return s.displayAll(ctx)
}

func (s *Shell) cmdShow(context.Context, string) error {
	if s.mode == ModeNone {
		s.say(msgSelectMode)
		return nil
	}
	s.render()
	return nil
}

func (s *Shell) cmdSet(_ context.Context, args string) error {
	name, value := cutWord(args)
	if name == "" {
		return apperrors.WithMetadata(
			apperrors.CodeMissingInput,
			"field is required",
			map[string]string{"Field": "Field", "Action": "set"},
		)
	}
	column, err := storage.ParseColumn(name, storage.TextColumns())
	if err != nil {
		return apperrors.WrapWithMetadata(
			apperrors.CodeUnknownField,
			"unknown form field",
			map[string]string{"Field": name},
			err,
		)
	}
	if err := s.view.form.Set(column, value); err != nil {
		return apperrors.WrapWithMetadata(
			apperrors.CodeUnknownField,
			"unknown form field",
			map[string]string{"Field": name},
			err,
		)
	}
	s.say(msgFieldSet, string(column))
	return nil
}

func (s *Shell) cmdForm(context.Context, string) error {
	s.renderForm()
	return nil
}

func (s *Shell) cmdClear(context.Context, string) error {
	s.view.form = storage.NewItem{}
	s.say(msgFormCleared)
	return nil
}

func (s *Shell) cmdAdd(ctx context.Context, _ string) error {
	form := s.view.form
	err := s.inventory.AddItem(ctx, app.AddItemInput{
		Body:      form.Body,
		Acidity:   form.Acidity,
		Flavor:    form.Flavor,
		Aroma:     form.Aroma,
		Roast:     form.Roast,
		Roastery:  form.Roastery,
		RoastDate: form.RoastDate,
		Country:   form.Country,
		Blend:     form.Blend,
	})
	if err != nil {
		return err
	}
	s.say(msgItemAdded)
	return s.displayAll(ctx)
}

func (s *Shell) cmdDelete(ctx context.Context, args string) error {
	if _, err := s.inventory.DeleteItem(ctx, app.DeleteItemInput{ID: args}); err != nil {
		return err
	}
	s.say(msgItemDeleted)
	return s.displayAll(ctx)
}

func (s *Shell) cmdSort(ctx context.Context, args string) error {
	items, err := s.inventory.SortItems(ctx, app.SortInput{Column: args})
	if err != nil {
		return err
	}
	s.setResults(items)
	return nil
}

func (s *Shell) cmdSearch(ctx context.Context, args string) error {
	column, value := cutWord(args)
	items, err := s.inventory.SearchItems(ctx, app.SearchInput{Column: column, Value: value})
	if err != nil {
		return err
	}
	s.setResults(items)
	return nil
}

// cmdPick highlights a row of the current results, standing in for a
// click on the table.
func (s *Shell) cmdPick(_ context.Context, args string) error {
	id, err := parseRowID(args, "pick")
	if err != nil {
		return err
	}
	for _, item := range s.view.results {
		if item.ID == id {
			s.view.selected = id
			s.view.hasSelected = true
			s.say(msgRowPicked, id)
			return nil
		}
	}
	return apperrors.WithMetadata(
		apperrors.CodeRowNotShown,
		"row not in results",
		map[string]string{"ID": strconv.FormatInt(id, 10)},
	)
}

// cmdSelect copies the highlighted row id into the item id field.
func (s *Shell) cmdSelect(ctx context.Context, _ string) error {
	if !s.view.hasSelected {
		return apperrors.New(apperrors.CodeNoSelection, "no row selected")
	}
	item, err := s.inventory.GetItem(ctx, s.view.selected)
	if err != nil {
		return err
	}
	s.view.itemID = strconv.FormatInt(item.ID, 10)
	s.say(msgItemSelected, item.ID)
	s.renderItems([]storage.Item{item})
	return nil
}

func (s *Shell) cmdID(_ context.Context, args string) error {
	s.view.itemID = args
	s.say(msgFieldSet, "Item ID")
	return nil
}

func (s *Shell) cmdQuantity(_ context.Context, args string) error {
	s.view.quantity = args
	s.say(msgFieldSet, "Quantity")
	return nil
}

func (s *Shell) cmdPurchase(ctx context.Context, _ string) error {
	_, err := s.inventory.PurchaseItem(ctx, app.PurchaseInput{
		ID:       s.view.itemID,
		Quantity: s.view.quantity,
	})
	if err != nil {
		return err
	}
	s.say(msgBeanPurchased)
	return s.displayAll(ctx)
}

func (s *Shell) cmdHelp(context.Context, string) error {
	s.say(msgHelpHeader, s.mode.String())
	for _, cmd := range s.commands {
		if cmd.allowed(s.mode) {
			fmt.Fprintf(s.out, "  %s\n", cmd.usage)
		}
	}
	fmt.Fprintln(s.out, "  quit")
	return nil
}

func parseRowID(raw string, action string) (int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, apperrors.WithMetadata(
			apperrors.CodeMissingInput,
			"row id is required",
			map[string]string{"Field": "Item ID", "Action": action},
		)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperrors.WrapWithMetadata(
			apperrors.CodeInvalidNumber,
			"parse row id",
			map[string]string{"Field": "Item ID", "Value": value, "Action": action},
			err,
		)
	}
	return id, nil
}

// Package shell is the interactive, line-oriented inventory front end.
//
// It mirrors a two-mode form-and-table window: a mode selector, per-mode
// input fields, a results table with a selectable row, and buttons that
// become commands. Every mode change tears the view down and rebuilds it.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/beanstock/internal/platform/errors"
	"github.com/louisbranch/beanstock/internal/platform/i18n"
	"github.com/louisbranch/beanstock/internal/services/inventory/app"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage"
)

// Inventory is the set of commands the shell drives.
type Inventory interface {
	AddItem(ctx context.Context, in app.AddItemInput) error
	DeleteItem(ctx context.Context, in app.DeleteItemInput) (int64, error)
	ListItems(ctx context.Context) ([]storage.Item, error)
	SortItems(ctx context.Context, in app.SortInput) ([]storage.Item, error)
	SearchItems(ctx context.Context, in app.SearchInput) ([]storage.Item, error)
	PurchaseItem(ctx context.Context, in app.PurchaseInput) (app.PurchaseResult, error)
	GetItem(ctx context.Context, id int64) (storage.Item, error)
}

// Options configures a Shell.
type Options struct {
	// Locale selects the message language.
	Locale string
	// Prompt prints a prompt before each line is read.
	Prompt bool
	// BuyerAutoList fills the results table on entering Buyer mode.
	// Seller mode always fills it.
	BuyerAutoList bool
}

// view holds everything a mode change discards.
type view struct {
	form        storage.NewItem
	itemID      string
	quantity    string
	results     []storage.Item
	selected    int64
	hasSelected bool
}

// Shell holds the mode and the current view.
type Shell struct {
	inventory     Inventory
	out           io.Writer
	locale        string
	printer       *message.Printer
	prompt        bool
	buyerAutoList bool

	mode     Mode
	view     view
	commands []command
}

// New creates a shell in ModeNone writing to out.
func New(inventory Inventory, out io.Writer, opts Options) *Shell {
	if out == nil {
		out = io.Discard
	}
	locale := i18n.Resolve(opts.Locale)
	s := &Shell{
		inventory:     inventory,
		out:           out,
		locale:        locale,
		printer:       i18n.Printer(locale),
		prompt:        opts.Prompt,
		buyerAutoList: opts.BuyerAutoList,
	}
	s.commands = s.commandTable()
	return s
}

// Mode returns the current mode.
func (s *Shell) Mode() Mode {
	return s.mode
}

// Results returns a copy of the rows currently shown.
func (s *Shell) Results() []storage.Item {
	out := make([]storage.Item, len(s.view.results))
	copy(out, s.view.results)
	return out
}

// Selected returns the highlighted row id, if any.
func (s *Shell) Selected() (int64, bool) {
	return s.view.selected, s.view.hasSelected
}

// ItemID returns the buyer's item id field.
func (s *Shell) ItemID() string {
	return s.view.itemID
}

// Form returns the seller form fields.
func (s *Shell) Form() storage.NewItem {
	return s.view.form
}

// SetMode rebuilds the view for mode. Seller mode repopulates the results
// from storage; Buyer mode leaves them empty unless BuyerAutoList is set.
// Like Execute, it prints user errors and returns only fatal ones.
func (s *Shell) SetMode(ctx context.Context, mode Mode) error {
	return s.report(s.setMode(ctx, mode))
}

func (s *Shell) setMode(ctx context.Context, mode Mode) error {
	s.mode = mode
	s.view = view{}
	if mode == ModeNone {
		s.say(msgSelectMode)
		return nil
	}
	s.say(msgModeEntered, mode.String())
	if mode == ModeSeller || (mode == ModeBuyer && s.buyerAutoList) {
		return s.displayAll(ctx)
	}
	return nil
}

// Run reads commands from in until quit or end of input. It returns nil
// on a clean exit and the first fatal error otherwise.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if s.mode == ModeNone {
		s.say(msgSelectMode)
	}
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.showPrompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		quit, err := s.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			s.say(msgGoodbye)
			return nil
		}
	}
}

// Execute runs one command line. User errors are printed and swallowed;
// only fatal errors are returned.
func (s *Shell) Execute(ctx context.Context, line string) (quit bool, err error) {
	verb, args := cutWord(line)
	if verb == "" {
		return false, nil
	}
	verb = strings.ToLower(verb)
	if verb == "quit" || verb == "exit" {
		return true, nil
	}

	cmd, ok := s.lookup(verb)
	if !ok {
		return false, s.report(apperrors.WithMetadata(
			apperrors.CodeUnknownCommand,
			"unknown command",
			map[string]string{"Command": verb},
		))
	}
	if !cmd.allowed(s.mode) {
		return false, s.report(apperrors.WithMetadata(
			apperrors.CodeWrongMode,
			"command not available in mode",
			map[string]string{"Command": cmd.name, "Mode": s.mode.String()},
		))
	}
	return false, s.report(cmd.run(ctx, args))
}

// report prints err for the user and returns it only when it is fatal.
func (s *Shell) report(err error) error {
	if err == nil {
		return nil
	}
	s.say(msgErrorPrefix, apperrors.UserMessage(err, s.locale))
	if apperrors.IsFatal(err) {
		return err
	}
	return nil
}

func (s *Shell) displayAll(ctx context.Context) error {
	items, err := s.inventory.ListItems(ctx)
	if err != nil {
		return err
	}
	s.setResults(items)
	return nil
}

// setResults replaces the table contents. Replacing rows drops the
// highlighted row.
func (s *Shell) setResults(items []storage.Item) {
	s.view.results = items
	s.view.selected = 0
	s.view.hasSelected = false
	s.render()
}

func (s *Shell) showPrompt() {
	if !s.prompt {
		return
	}
	name := "beanstock"
	if s.mode != ModeNone {
		name = strings.ToLower(s.mode.String())
	}
	fmt.Fprintf(s.out, "%s> ", name)
}

func (s *Shell) say(key string, args ...any) {
	s.printer.Fprintf(s.out, key, args...)
	fmt.Fprintln(s.out)
}

// cutWord splits off the first whitespace-delimited word and returns it
// with the trimmed remainder.
func cutWord(line string) (string, string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexAny(line, " \t")
	if idx == -1 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

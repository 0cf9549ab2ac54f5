package shell

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/louisbranch/beanstock/internal/services/inventory/storage"
)

// render prints the current results table. The highlighted row is marked
// with "*".
func (s *Shell) render() {
	s.renderItems(s.view.results)
}

func (s *Shell) renderItems(items []storage.Item) {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	headings := make([]string, 0, len(storage.Columns())+1)
	headings = append(headings, " ")
	for _, column := range storage.Columns() {
		headings = append(headings, heading(column))
	}
	fmt.Fprintln(w, strings.Join(headings, "\t"))
	for _, item := range items {
		marker := " "
		if s.view.hasSelected && item.ID == s.view.selected {
			marker = "*"
		}
		cells := make([]string, 0, len(headings))
		cells = append(cells, marker)
		for _, column := range storage.Columns() {
			cells = append(cells, sanitize(item.Value(column)))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}

func (s *Shell) renderForm() {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, column := range storage.TextColumns() {
		fmt.Fprintf(w, "%s\t%s\n", column, sanitize(s.view.form.Get(column)))
	}
	_ = w.Flush()
}

func heading(column storage.Column) string {
	if column == storage.ColumnID {
		return "ID"
	}
	return string(column)
}

var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// sanitize keeps cell text on one line so table columns stay aligned.
func sanitize(value string) string {
	return cellReplacer.Replace(value)
}

package shell

import (
	"github.com/louisbranch/beanstock/internal/platform/i18n"
)

const (
	msgSelectMode    = "shell.select_mode"
	msgModeEntered   = "shell.mode_entered"
	msgItemAdded     = "shell.item_added"
	msgItemDeleted   = "shell.item_deleted"
	msgBeanPurchased = "shell.bean_purchased"
	msgFieldSet      = "shell.field_set"
	msgFormCleared   = "shell.form_cleared"
	msgRowPicked     = "shell.row_picked"
	msgItemSelected  = "shell.item_selected"
	msgErrorPrefix   = "shell.error_prefix"
	msgGoodbye       = "shell.goodbye"
	msgHelpHeader    = "shell.help_header"
)

func init() {
	i18n.MustRegister("en-US", map[string]string{
		msgSelectMode:    "Select mode: type \"mode seller\" or \"mode buyer\".",
		msgModeEntered:   "%s mode.",
		msgItemAdded:     "Item added successfully.",
		msgItemDeleted:   "Item deleted successfully.",
		msgBeanPurchased: "Bean purchased successfully.",
		msgFieldSet:      "%s set.",
		msgFormCleared:   "Form cleared.",
		msgRowPicked:     "Row %d highlighted.",
		msgItemSelected:  "Item %d selected.",
		msgErrorPrefix:   "Error: %s",
		msgGoodbye:       "Goodbye.",
		msgHelpHeader:    "Commands (%s mode):",
	})
	i18n.MustRegister("pt-BR", map[string]string{
		msgSelectMode:    "Selecione o modo: digite \"mode seller\" ou \"mode buyer\".",
		msgModeEntered:   "Modo %s.",
		msgItemAdded:     "Item adicionado com sucesso.",
		msgItemDeleted:   "Item excluído com sucesso.",
		msgBeanPurchased: "Grão comprado com sucesso.",
		msgFieldSet:      "%s definido.",
		msgFormCleared:   "Formulário limpo.",
		msgRowPicked:     "Linha %d destacada.",
		msgItemSelected:  "Item %d selecionado.",
		msgErrorPrefix:   "Erro: %s",
		msgGoodbye:       "Até logo.",
		msgHelpHeader:    "Comandos (modo %s):",
	})
}

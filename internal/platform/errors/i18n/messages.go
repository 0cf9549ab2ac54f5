package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
const (
	CodeUnknown        = "UNKNOWN"
	CodeMissingInput   = "MISSING_INPUT"
	CodeInvalidNumber  = "INVALID_NUMBER"
	CodeUnknownColumn  = "UNKNOWN_COLUMN"
	CodeUnknownField   = "UNKNOWN_FIELD"
	CodeUnknownCommand = "UNKNOWN_COMMAND"
	CodeUnknownMode    = "UNKNOWN_MODE"
	CodeWrongMode      = "WRONG_MODE"
	CodeNoSelection    = "NO_SELECTION"
	CodeRowNotShown    = "ROW_NOT_SHOWN"
	CodeNotFound       = "NOT_FOUND"
	CodeStorageFailure = "STORAGE_FAILURE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown: "Something went wrong.",

		// Input errors
		CodeMissingInput: `{{if and (eq (print .Action) "delete") (eq (print .Field) "Item ID")}}Please enter an item ID to delete.` +
			`{{else if and (eq (print .Action) "purchase") (eq (print .Field) "Item ID")}}Please select an item to purchase.` +
			`{{else}}{{.Field}} is required.{{end}}`,

		CodeInvalidNumber:  `{{.Field}} must be a whole number, got "{{.Value}}".`,
		CodeUnknownColumn:  `Unknown column "{{.Column}}".`,
		CodeUnknownField:   `Unknown field "{{.Field}}".`,
		CodeUnknownCommand: `Unknown command "{{.Command}}". Type "help" for a list of commands.`,
		CodeUnknownMode:    `Unknown mode "{{.Mode}}". Choose Seller or Buyer.`,

		// Shell state errors
		CodeWrongMode:   `"{{.Command}}" is not available in {{.Mode}} mode.`,
		CodeNoSelection: "No row is selected. Pick a row from the results first.",
		CodeRowNotShown: "Item {{.ID}} is not in the current results.",

		// Storage errors
		CodeNotFound:       "Item {{.ID}} was not found.",
		CodeStorageFailure: "The inventory file could not be read or written.",
	},
}

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown: "Algo deu errado.",

		CodeMissingInput: `{{if and (eq (print .Action) "delete") (eq (print .Field) "Item ID")}}Informe o ID do item a excluir.` +
			`{{else if and (eq (print .Action) "purchase") (eq (print .Field) "Item ID")}}Selecione um item para comprar.` +
			`{{else}}{{.Field}} é obrigatório.{{end}}`,

		CodeInvalidNumber:  `{{.Field}} deve ser um número inteiro, recebido "{{.Value}}".`,
		CodeUnknownColumn:  `Coluna desconhecida "{{.Column}}".`,
		CodeUnknownField:   `Campo desconhecido "{{.Field}}".`,
		CodeUnknownCommand: `Comando desconhecido "{{.Command}}". Digite "help" para ver os comandos.`,
		CodeUnknownMode:    `Modo desconhecido "{{.Mode}}". Escolha Seller ou Buyer.`,

		CodeWrongMode:   `"{{.Command}}" não está disponível no modo {{.Mode}}.`,
		CodeNoSelection: "Nenhuma linha selecionada. Escolha uma linha dos resultados primeiro.",
		CodeRowNotShown: "O item {{.ID}} não está nos resultados atuais.",

		CodeNotFound:       "O item {{.ID}} não foi encontrado.",
		CodeStorageFailure: "Não foi possível ler ou gravar o arquivo de estoque.",
	},
}

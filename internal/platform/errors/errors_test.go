package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeStorageFailure, "insert item", stderrors.New("disk I/O error"))
	if got := err.Error(); got != "insert item: disk I/O error" {
		t.Fatalf("Error() = %q", got)
	}
	plain := New(CodeMissingInput, "id is required")
	if got := plain.Error(); got != "id is required" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("delete: %w", New(CodeInvalidNumber, "parse id"))
	if !stderrors.Is(err, New(CodeInvalidNumber, "")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(err, New(CodeMissingInput, "")) {
		t.Fatal("unexpected match for different code")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("locked")
	err := Wrap(CodeStorageFailure, "purchase", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(WithMetadata(CodeUnknownColumn, "bad column", map[string]string{"Column": "x"})); got != CodeUnknownColumn {
		t.Fatalf("GetCode() = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode(plain) = %q", got)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "missing input", err: New(CodeMissingInput, "x"), want: false},
		{name: "storage", err: Wrap(CodeStorageFailure, "x", stderrors.New("io")), want: true},
		{name: "wrapped storage", err: fmt.Errorf("run: %w", Wrap(CodeStorageFailure, "x", nil)), want: true},
		{name: "plain", err: stderrors.New("plain"), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Fatalf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := WithMetadata(CodeUnknownColumn, "bad column", map[string]string{"Column": "Price"})
	if got := UserMessage(err, "en-US"); got != `Unknown column "Price".` {
		t.Fatalf("en-US = %q", got)
	}
	if got := UserMessage(err, "pt-BR"); got != `Coluna desconhecida "Price".` {
		t.Fatalf("pt-BR = %q", got)
	}
	if got := UserMessage(nil, "en-US"); got != "" {
		t.Fatalf("nil = %q", got)
	}
	if got := UserMessage(stderrors.New("boom"), "en-US"); got != "Something went wrong." {
		t.Fatalf("plain = %q", got)
	}
}

func TestEveryCodeHasBaseMessage(t *testing.T) {
	codes := []Code{
		CodeUnknown, CodeMissingInput, CodeInvalidNumber, CodeUnknownColumn,
		CodeUnknownField, CodeUnknownCommand, CodeUnknownMode, CodeWrongMode,
		CodeNoSelection, CodeRowNotShown, CodeNotFound, CodeStorageFailure,
	}
	for _, code := range codes {
		if got := UserMessage(New(code, "x"), "en-US"); got == string(code) {
			t.Fatalf("code %s has no en-US message", code)
		}
		if got := UserMessage(New(code, "x"), "pt-BR"); got == string(code) {
			t.Fatalf("code %s has no pt-BR message", code)
		}
	}
}

package shell

import (
	"testing"

	apperrors "github.com/louisbranch/beanstock/internal/platform/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{in: "", want: ModeNone},
		{in: "seller", want: ModeSeller},
		{in: "Seller", want: ModeSeller},
		{in: " BUYER ", want: ModeBuyer},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseModeRejectsUnknown(t *testing.T) {
	_, err := ParseMode("admin")
	if got := apperrors.GetCode(err); got != apperrors.CodeUnknownMode {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeUnknownMode)
	}
}

func TestModeToggle(t *testing.T) {
	if got := ModeSeller.Toggle(); got != ModeBuyer {
		t.Fatalf("seller toggle = %v", got)
	}
	if got := ModeBuyer.Toggle(); got != ModeSeller {
		t.Fatalf("buyer toggle = %v", got)
	}
	if got := ModeNone.Toggle(); got != ModeNone {
		t.Fatalf("none toggle = %v", got)
	}
}

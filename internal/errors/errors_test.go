package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}

	err := fmt.Errorf("database locked")
	if got := Format(err); got != "Error: database locked" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s: %v", "stint.db", fmt.Errorf("no such file"))
	want := "Error: failed to load stint.db: no such file"
	if got != want {
		t.Errorf("Formatf = %q, want %q", got, want)
	}
}

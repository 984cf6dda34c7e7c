package theme

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/tidy/pkg/app/apptest"
	"tableflip.dev/tidy/pkg/state"
)

func TestTheme(t *testing.T) {
	ctx := context.Background()
	a := apptest.New(t, apptest.Window())

	var buf bytes.Buffer
	if err := (&Theme{State: a.State, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("show: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "light" {
		t.Fatalf("default theme = %q", buf.String())
	}

	buf.Reset()
	if err := (&Theme{State: a.State, Name: "dark", Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := a.Backing.Preferences().Get(ctx, state.ThemeKey)
	if err != nil || !ok || v != "dark" {
		t.Fatalf("persisted theme = %q, %v, %v", v, ok, err)
	}
	if got := a.State.Snapshot().Theme; got != "dark" {
		t.Fatalf("snapshot theme = %q", got)
	}
}

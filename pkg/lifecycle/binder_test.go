package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type recorder struct {
	mu       sync.Mutex
	calls    []string
	pruneErr error
	hydErr   error
}

func (r *recorder) PruneEmptyTabGroups(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "prune")
	return r.pruneErr
}

func (r *recorder) Hydrate(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "hydrate")
	return r.hydErr
}

func (r *recorder) log() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type tabID int

func (t tabID) CurrentTabID(context.Context) (int, error) { return int(t), nil }

type failingID struct{ err error }

func (f failingID) CurrentTabID(context.Context) (int, error) { return 0, f.err }

func bind(t *testing.T, r *recorder, id int) *Binder {
	t.Helper()
	b, err := Bind(context.Background(), r, tabID(id))
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	return b
}

func TestBindCapturesTabID(t *testing.T) {
	b := bind(t, &recorder{}, 42)
	if b.TabID() != 42 {
		t.Fatalf("TabID = %d", b.TabID())
	}
	boom := errors.New("no tab")
	if _, err := Bind(context.Background(), &recorder{}, failingID{boom}); !errors.Is(err, boom) {
		t.Fatalf("expected bind error, got %v", err)
	}
}

func TestStartPrunesBeforeHydrate(t *testing.T) {
	r := &recorder{}
	if err := bind(t, r, 1).Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	got := r.log()
	if len(got) != 2 || got[0] != "prune" || got[1] != "hydrate" {
		t.Fatalf("calls = %v", got)
	}
}

func TestStartStopsWhenPruneFails(t *testing.T) {
	r := &recorder{pruneErr: errors.New("locked")}
	if err := bind(t, r, 1).Start(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := r.log(); len(got) != 1 {
		t.Fatalf("hydrate ran after failed prune: %v", got)
	}
}

func TestHandle(t *testing.T) {
	cases := []struct {
		name    string
		ev      Event
		hydrate bool
	}{
		{"own tab highlighted", Highlighted{TabIDs: []int{7, 9}}, true},
		{"other tab highlighted", Highlighted{TabIDs: []int{9, 7}}, false},
		{"no tabs", Highlighted{}, false},
		{"focus", Focused{}, true},
		{"storage changed", Changed{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{}
			if err := bind(t, r, 7).Handle(context.Background(), tc.ev); err != nil {
				t.Fatalf("handle: %v", err)
			}
			if got := len(r.log()) == 1; got != tc.hydrate {
				t.Fatalf("hydrated = %v, want %v", got, tc.hydrate)
			}
		})
	}
}

func TestRunContinuesAfterErrors(t *testing.T) {
	r := &recorder{hydErr: errors.New("flaky")}
	b := bind(t, r, 1)

	events := make(chan Event, 3)
	events <- Focused{}
	events <- Highlighted{TabIDs: []int{2}}
	events <- Changed{}
	close(events)

	if err := b.Run(context.Background(), events); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := r.log(); len(got) != 2 {
		t.Fatalf("calls = %v", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := bind(t, &recorder{}, 1).Run(ctx, make(chan Event))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

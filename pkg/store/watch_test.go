package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchEmitsGroupChanges(t *testing.T) {
	s := newTestStore(t, WithClock(fixedClock(123)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	if _, err := s.CreateGroup(ctx); err != nil {
		t.Fatalf("create group: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventGroupChanged {
				if evt.DateAdded != 123 {
					t.Fatalf("expected group 123, got %d", evt.DateAdded)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for group change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestEventForPath(t *testing.T) {
	s := newTestStore(t)
	cases := []struct {
		rel  string
		want Event
	}{
		{"tabgroups/55", Event{Type: EventGroupChanged, DateAdded: 55}},
		{"prefs/theme", Event{Type: EventPreferencesChanged}},
		{"tabgroups/abc", Event{Type: EventInvalidated}},
		{"stray", Event{Type: EventInvalidated}},
	}
	for _, tc := range cases {
		if got := s.eventForPath(s.BasePath() + "/" + tc.rel); got != tc.want {
			t.Errorf("eventForPath(%q) = %+v, want %+v", tc.rel, got, tc.want)
		}
	}
}

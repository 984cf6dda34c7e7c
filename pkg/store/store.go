// Package store persists tab groups and preferences on disk and reports
// changes made to them by other processes.
package store

import (
	"context"
	"errors"

	"tableflip.dev/tidy/pkg/tabgroup"
)

var (
	// ErrGroupNotFound is returned when an entry is added to a group that
	// does not exist.
	ErrGroupNotFound = errors.New("store: tab group not found")

	// ErrIncompatibleState is returned when an import payload was written by
	// an incompatible major version.
	ErrIncompatibleState = errors.New("store: incompatible state version")
)

// BackingStore is the persistent home of tab groups.
type BackingStore interface {
	// CreateGroup creates an empty group container.
	CreateGroup(ctx context.Context) (tabgroup.GroupRef, error)
	// CreateEntry appends one tab to a group.
	CreateEntry(ctx context.Context, ref tabgroup.GroupRef, title, url string) error
	// RemoveGroup deletes the group with the given id. Missing ids are a no-op.
	RemoveGroup(ctx context.Context, dateAdded int64) error
	// RemoveEntry deletes every entry of the group whose url matches. A
	// missing group is a no-op.
	RemoveEntry(ctx context.Context, ref tabgroup.GroupRef, url string) error
	// ListGroups returns every group in creation order.
	ListGroups(ctx context.Context) ([]tabgroup.TabGroup, error)
	// PruneEmpty deletes every group without tabs.
	PruneEmpty(ctx context.Context) error
	// BulkReplace replaces all groups with the contents of a raw payload.
	BulkReplace(ctx context.Context, raw []byte) error
}

// Exporter produces a payload accepted by BulkReplace.
type Exporter interface {
	Export(ctx context.Context) (tabgroup.Payload, error)
}

// Watcher streams storage change events.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Preferences is a string key/value store.
type Preferences interface {
	// Get returns the stored value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

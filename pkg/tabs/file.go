package tabs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Window is one browser window in a snapshot document.
type Window struct {
	ID      int   `json:"id" yaml:"id"`
	Focused bool  `json:"focused" yaml:"focused"`
	Tabs    []Tab `json:"tabs" yaml:"tabs"`
}

// Snapshot is the document read by FileSource.
type Snapshot struct {
	CurrentTabID int      `json:"currentTabId" yaml:"currentTabId"`
	Windows      []Window `json:"windows" yaml:"windows"`
}

// FileSource reads the browser's windows from a YAML or JSON snapshot file,
// written by the native messaging host. The file is re-read on every call.
type FileSource struct {
	Path    string
	Exclude func(Tab) bool
}

// NewFileSource returns a source over path using the default exclusion policy.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, Exclude: ShouldExclude}
}

var _ Source = (*FileSource)(nil)

func (f *FileSource) load() (Snapshot, error) {
	if f.Path == "" {
		return Snapshot{}, errors.New("tabs: snapshot path unknown")
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("tabs: read snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("tabs: decode snapshot: %w", err)
	}
	return s, nil
}

func (f *FileSource) CurrentWindowTabs(ctx context.Context) ([]Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := f.load()
	if err != nil {
		return nil, err
	}
	for _, w := range s.Windows {
		if !w.Focused {
			continue
		}
		out := make([]Tab, len(w.Tabs))
		copy(out, w.Tabs)
		for i := range out {
			if out[i].WindowID == 0 {
				out[i].WindowID = w.ID
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Index < out[j].Index
		})
		return out, nil
	}
	return nil, ErrNoFocusedWindow
}

func (f *FileSource) ShouldExclude(tab Tab) bool {
	if f.Exclude == nil {
		return ShouldExclude(tab)
	}
	return f.Exclude(tab)
}

func (f *FileSource) CurrentTabID(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s, err := f.load()
	if err != nil {
		return 0, err
	}
	if s.CurrentTabID == 0 {
		return 0, ErrNoCurrentTab
	}
	return s.CurrentTabID, nil
}

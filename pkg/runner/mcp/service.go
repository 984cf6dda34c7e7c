// Package mcp exposes tidy's saved tab groups over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tidy/pkg/filter"
	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabgroup"
	"tableflip.dev/tidy/pkg/tabs"
)

// Service runs tool and resource requests against the state store.
type Service struct {
	State *state.Store
}

// GroupDTO is a transport-friendly view of a tab group.
type GroupDTO struct {
	DateAdded int64          `json:"dateAdded"`
	Title     string         `json:"title,omitempty"`
	Count     int            `json:"count"`
	Tabs      []tabgroup.Tab `json:"tabs"`
}

func NewService(s *state.Store) *Service {
	return &Service{State: s}
}

func (s *Service) ready() error {
	if s.State == nil {
		return errors.New("state is not configured")
	}
	return nil
}

// ListTabGroups refreshes from storage and returns the groups matching query,
// newest first. The shared search query is left untouched.
func (s *Service) ListTabGroups(ctx context.Context, query string) ([]GroupDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return nil, err
	}
	snap := s.State.Snapshot()
	snap.SearchQuery = query
	return toDTOs(state.Project(snap)), nil
}

// TabGroup returns the group with the given id as currently stored.
func (s *Service) TabGroup(ctx context.Context, dateAdded int64) (*GroupDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return nil, err
	}
	for _, g := range s.State.Snapshot().Data.TabGroups {
		if g.DateAdded == dateAdded {
			dto := toDTO(g)
			return &dto, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", store.ErrGroupNotFound, dateAdded)
}

// DeleteTabGroup removes a group. Ids are positive; anything else names no
// group.
func (s *Service) DeleteTabGroup(ctx context.Context, dateAdded int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	if dateAdded <= 0 {
		return fmt.Errorf("%w: %d", store.ErrGroupNotFound, dateAdded)
	}
	return s.State.DeleteTabGroup(ctx, dateAdded)
}

// DeleteTab removes url from the group and returns what is left of it.
func (s *Service) DeleteTab(ctx context.Context, dateAdded int64, url string) (*GroupDTO, error) {
	group, err := s.TabGroup(ctx, dateAdded)
	if err != nil {
		return nil, err
	}
	ref := tabgroup.TabGroup{DateAdded: group.DateAdded, Title: group.Title, Tabs: group.Tabs}
	if err := s.State.DeleteTab(ctx, ref, url); err != nil {
		return nil, err
	}
	return s.TabGroup(ctx, dateAdded)
}

// PruneEmptyTabGroups deletes empty groups and returns how many went away.
func (s *Service) PruneEmptyTabGroups(ctx context.Context) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return 0, err
	}
	before := len(s.State.Snapshot().Data.TabGroups)
	if err := s.State.PruneEmptyTabGroups(ctx); err != nil {
		return 0, err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return 0, err
	}
	return before - len(s.State.Snapshot().Data.TabGroups), nil
}

// SaveTabGroup saves the focused window, keeping the tabs expression accepts.
func (s *Service) SaveTabGroup(ctx context.Context, expression string) ([]tabs.Tab, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	keep, err := filter.Compile(expression)
	if err != nil {
		return nil, err
	}
	saved, err := s.State.SaveTabGroup(ctx, keep)
	if err != nil {
		return nil, err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return nil, err
	}
	return saved, nil
}

// Snapshot returns the refreshed state document.
func (s *Service) Snapshot(ctx context.Context) (state.Snapshot, error) {
	if err := s.ready(); err != nil {
		return state.Snapshot{}, err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return state.Snapshot{}, err
	}
	return s.State.Snapshot(), nil
}

func toDTO(g tabgroup.TabGroup) GroupDTO {
	return GroupDTO{
		DateAdded: g.DateAdded,
		Title:     g.Title,
		Count:     len(g.Tabs),
		Tabs:      g.Tabs,
	}
}

func toDTOs(groups []tabgroup.TabGroup) []GroupDTO {
	out := make([]GroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, toDTO(g))
	}
	return out
}

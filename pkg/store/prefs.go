package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Prefs stores preferences next to the tab groups.
type Prefs struct {
	s *Diskv
}

var _ Preferences = (*Prefs)(nil)

func (p *Prefs) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	k, err := prefKey(key)
	if err != nil {
		return "", false, err
	}
	val, err := p.s.d.Read(k)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (p *Prefs) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k, err := prefKey(key)
	if err != nil {
		return err
	}
	return p.s.d.Write(k, []byte(value))
}

func prefKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("store: preference key required")
	}
	if strings.ContainsAny(key, `-/\`) {
		return "", fmt.Errorf("store: invalid preference key %q", key)
	}
	return prefsFolder + "-" + key, nil
}

// Package filter compiles user supplied expressions into tab predicates.
//
// Expressions use the expr language against these fields of a tab:
// id, windowId, index, title, url, host, pinned and active. For example:
//
//	not pinned && host endsWith "github.com"
package filter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"tableflip.dev/tidy/pkg/tabs"
)

type env struct {
	ID       int    `expr:"id"`
	WindowID int    `expr:"windowId"`
	Index    int    `expr:"index"`
	Title    string `expr:"title"`
	URL      string `expr:"url"`
	Host     string `expr:"host"`
	Pinned   bool   `expr:"pinned"`
	Active   bool   `expr:"active"`
}

func envFor(t tabs.Tab) env {
	host := ""
	if u, err := url.Parse(t.URL); err == nil {
		host = strings.ToLower(u.Hostname())
	}
	return env{
		ID:       t.ID,
		WindowID: t.WindowID,
		Index:    t.Index,
		Title:    t.Title,
		URL:      t.URL,
		Host:     host,
		Pinned:   t.Pinned,
		Active:   t.Active,
	}
}

// Compile returns a predicate for expression. An empty expression keeps every
// tab. A tab for which evaluation fails is not kept.
func Compile(expression string) (tabs.Predicate, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return tabs.All, nil
	}
	program, err := expr.Compile(expression, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", expression, err)
	}
	return predicate(program), nil
}

func predicate(program *vm.Program) tabs.Predicate {
	return func(t tabs.Tab) bool {
		out, err := expr.Run(program, envFor(t))
		if err != nil {
			return false
		}
		keep, ok := out.(bool)
		return ok && keep
	}
}

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/version"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const (
	defaultListenAddr   = "127.0.0.1:8080"
	defaultEndpointPath = "/mcp"
	shutdownGrace       = 5 * time.Second
)

// Runner serves the tab group tools and resources until its context ends.
type Runner struct {
	State   *state.Store
	Name    string
	Version string

	Transport Transport

	// HTTP only.
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
}

func (r Runner) Do(ctx context.Context) error {
	if r.State == nil {
		return errors.New("mcp runner requires state")
	}
	srv := r.newServer()

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.NewStdioServer(srv).Listen(ctx, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) newServer() *server.MCPServer {
	name, v := r.Name, r.Version
	if name == "" {
		name = "tidy"
	}
	if v == "" {
		v = version.Version
	}
	srv := server.NewMCPServer(name+" MCP", v,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("List, save, prune and delete saved browser tab groups."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.State)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// EndpointPath returns the HTTP path the server is mounted on.
func (r Runner) EndpointPath() string {
	p := strings.TrimSpace(r.HTTPEndpointPath)
	switch {
	case p == "":
		return defaultEndpointPath
	case p[0] != '/':
		return "/" + p
	default:
		return p
	}
}

// serveHTTP listens first so OnHTTPListening sees the bound address, which
// matters when the port is 0.
func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	addr := r.HTTPListenAddr
	if addr == "" {
		addr = defaultListenAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	mux := http.NewServeMux()
	mux.Handle(r.EndpointPath(), server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerStateResource(srv, svc)
	registerTabGroupTemplate(srv, svc)
}

func registerStateResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tidy://state",
		"State",
		mcp.WithResourceDescription("Every saved tab group plus version and theme."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		snap, err := svc.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, snap)
	})
}

func registerTabGroupTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tidy://tabgroups/{dateAdded}",
		"Tab Group",
		mcp.WithTemplateDescription("One saved tab group."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dateAdded, err := argInt64(request.Params.Arguments["dateAdded"])
		if err != nil {
			return nil, err
		}
		group, err := svc.TabGroup(ctx, dateAdded)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, group)
	})
}

// argInt64 reads a template argument, which arrives as a string or a list of
// strings.
func argInt64(v any) (int64, error) {
	switch a := v.(type) {
	case string:
		return strconv.ParseInt(a, 10, 64)
	case []string:
		if len(a) > 0 {
			return strconv.ParseInt(a[0], 10, 64)
		}
	}
	return 0, fmt.Errorf("dateAdded is required")
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

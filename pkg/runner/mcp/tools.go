package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTabGroupsTool(srv, svc)
	registerDeleteTabGroupTool(srv, svc)
	registerDeleteTabTool(srv, svc)
	registerPruneTool(srv, svc)
	registerSaveTabGroupTool(srv, svc)
}

func registerListTabGroupsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tab_groups",
		mcp.WithDescription("List saved tab groups, newest first."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text matched against tab titles and urls. Matching groups only show matching tabs."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		groups, err := svc.ListTabGroups(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":     query,
			"tabGroups": groups,
			"count":     len(groups),
		})
	})
}

func registerDeleteTabGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_tab_group",
		mcp.WithDescription("Delete a saved tab group."),
		mcp.WithNumber("dateAdded",
			mcp.Required(),
			mcp.Description("Identifier of the group to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			DateAdded int64 `json:"dateAdded"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := svc.DeleteTabGroup(ctx, args.DateAdded); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": args.DateAdded})
	})
}

func registerDeleteTabTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_tab",
		mcp.WithDescription("Delete every tab with the given url from a saved group."),
		mcp.WithNumber("dateAdded",
			mcp.Required(),
			mcp.Description("Identifier of the group holding the tab."),
		),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Url of the tab to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			DateAdded int64  `json:"dateAdded"`
			URL       string `json:"url"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.URL == "" {
			return mcp.NewToolResultError("url is required"), nil
		}
		group, err := svc.DeleteTab(ctx, args.DateAdded, args.URL)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(group)
	})
}

func registerPruneTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"prune_empty_tab_groups",
		mcp.WithDescription("Delete every saved group that has no tabs."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		removed, err := svc.PruneEmptyTabGroups(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"removed": removed})
	})
}

func registerSaveTabGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"save_tab_group",
		mcp.WithDescription("Save the tabs of the focused browser window as a new group."),
		mcp.WithString("filter",
			mcp.Description("Optional expression selecting tabs, e.g. `!pinned && host endsWith \"github.com\"`."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		saved, err := svc.SaveTabGroup(ctx, request.GetString("filter", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"saved": saved,
			"count": len(saved),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}

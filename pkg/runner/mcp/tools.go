package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddEventTool(srv, svc)
	registerUpdateEventTool(srv, svc)
	registerDeleteEventTool(srv, svc)
	registerListEventsTool(srv, svc)
	registerListDaysTool(srv, svc)
	registerSearchEventsTool(srv, svc)
	registerGetEventTool(srv, svc)
}

func registerAddEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_event",
		mcp.WithDescription("Create a new activity in the agenda."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day of the activity in YYYY-MM-DD form."),
		),
		mcp.WithString("time",
			mcp.Description("Time of the activity in HH:MM form (default 09:00)."),
		),
		mcp.WithString("activity",
			mcp.Required(),
			mcp.Description("Description of the activity."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date     string `json:"date"`
			Time     string `json:"time"`
			Activity string `json:"activity"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEvent(ctx, AddEventOptions{
			Date:     args.Date,
			Time:     args.Time,
			Activity: args.Activity,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_event",
		mcp.WithDescription("Update the date, time or description of an activity."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to modify."),
		),
		mcp.WithString("date",
			mcp.Description("New day in YYYY-MM-DD form; omit to keep."),
		),
		mcp.WithString("time",
			mcp.Description("New time in HH:MM form; omit to keep."),
		),
		mcp.WithString("activity",
			mcp.Description("New description; omit to keep."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.UpdateEvent(ctx, UpdateEventOptions{
			ID:       id,
			Date:     request.GetString("date", ""),
			Time:     request.GetString("time", ""),
			Activity: request.GetString("activity", ""),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_event",
		mcp.WithDescription("Remove an activity from the agenda."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DeleteEvent(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func registerListEventsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_events",
		mcp.WithDescription("List agenda activities, optionally filtered to a day or month."),
		mcp.WithString("date",
			mcp.Description("Optional filter: a day (YYYY-MM-DD) or a month (YYYY-MM)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := strings.TrimSpace(request.GetString("date", ""))
		results, err := svc.ListEvents(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":   date,
			"events": results,
			"count":  len(results),
		})
	})
}

func registerListDaysTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_days",
		mcp.WithDescription("List all agenda days that have activities."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListDays(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"days":  summaries,
			"count": len(summaries),
		})
	})
}

func registerSearchEventsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_events",
		mcp.WithDescription("Search activities by substring match across descriptions and dates."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of activities to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchEvents(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_event",
		mcp.WithDescription("Fetch a single activity by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Activity identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EventByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}

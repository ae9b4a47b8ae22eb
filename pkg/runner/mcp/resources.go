package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDaysResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerEventTemplate(srv, svc)
}

func registerDaysResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"profeia://days",
		"Agenda Days",
		mcp.WithResourceDescription("All agenda days that have activities, with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListDays(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"days":  summaries,
			"count": len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"profeia://days/{date}",
		"Day Activities",
		mcp.WithTemplateDescription("Activities scheduled for one agenda day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		events, err := svc.ListEvents(ctx, date)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"date":   date,
			"count":  len(events),
			"events": events,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEventTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"profeia://events/{id}",
		"Activity Details",
		mcp.WithTemplateDescription("Detailed information about a single activity."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("event id is required")
		}

		dto, err := svc.EventByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"event": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
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

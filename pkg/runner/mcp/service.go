// Package mcp provides the Model Context Protocol server integration for profeia.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/store"
)

// Service coordinates persistence-backed operations that are shared by the MCP server.
type Service struct {
	Persistence store.Persistence
}

// ErrEventNotFound is returned when an activity cannot be located in persistence.
var ErrEventNotFound = errors.New("event not found")

// AddEventOptions captures the parameters used to create a new activity.
type AddEventOptions struct {
	Date     string
	Time     string
	Activity string
}

// UpdateEventOptions captures the parameters used to edit an activity.
// Empty fields keep their stored value.
type UpdateEventOptions struct {
	ID       string
	Date     string
	Time     string
	Activity string
}

// DaySummary describes one agenda day and basic aggregate metadata.
type DaySummary struct {
	Date          string `json:"date"`
	EventCount    int    `json:"eventCount"`
	FirstTime     string `json:"firstTime,omitempty"`
	FirstActivity string `json:"firstActivity,omitempty"`
}

// EventDTO is a transport-friendly projection of an activity.
type EventDTO struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Unix     int64  `json:"unix,omitempty"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

// ListDays returns summaries for every agenda day that has activities.
func (s *Service) ListDays(ctx context.Context) ([]DaySummary, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}

	byDate := make(map[string][]*event.Event)
	for _, e := range s.Persistence.List() {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	summaries := make([]DaySummary, 0, len(byDate))
	for date, events := range byDate {
		event.Sort(events)
		first := events[0]
		summaries = append(summaries, DaySummary{
			Date:          date,
			EventCount:    len(events),
			FirstTime:     first.Time,
			FirstActivity: first.Activity,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})
	return summaries, nil
}

// ListEvents gathers activities, optionally filtered to one day or one
// month. Date takes "YYYY-MM-DD" or the "YYYY-MM" prefix form.
func (s *Service) ListEvents(ctx context.Context, date string) ([]EventDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}

	events := s.Persistence.List()
	if date == "" {
		return toDTOs(events), nil
	}

	filtered := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if e.Date == date || strings.HasPrefix(e.Date, date+"-") {
			filtered = append(filtered, e)
		}
	}
	return toDTOs(filtered), nil
}

// AddEvent persists a new activity using the supplied options.
func (s *Service) AddEvent(ctx context.Context, opts AddEventOptions) (*EventDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}

	at := opts.Time
	if at == "" {
		at = event.DefaultTime
	}
	e := event.New(opts.Date, at, opts.Activity)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	all := s.Persistence.List()
	// Millisecond ids can collide when tools fire back to back.
	now := time.Now()
	e.ID = event.MintID(now)
	for taken(all, e.ID) {
		now = now.Add(time.Millisecond)
		e.ID = event.MintID(now)
	}

	all = append(all, e)
	if err := s.Persistence.ReplaceAll(all); err != nil {
		return nil, err
	}

	dto := toDTO(e)
	return &dto, nil
}

// UpdateEvent rewrites the stored fields of an activity.
func (s *Service) UpdateEvent(ctx context.Context, opts UpdateEventOptions) (*EventDTO, error) {
	e, err := s.findEvent(opts.ID)
	if err != nil {
		return nil, err
	}

	updated := e.Clone()
	if opts.Date != "" {
		updated.Date = opts.Date
	}
	if opts.Time != "" {
		updated.Time = opts.Time
	}
	if opts.Activity != "" {
		updated.Activity = opts.Activity
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	all := s.Persistence.List()
	for i := range all {
		if all[i].ID == opts.ID {
			all[i] = updated
		}
	}
	if err := s.Persistence.ReplaceAll(all); err != nil {
		return nil, err
	}

	dto := toDTO(updated)
	return &dto, nil
}

// DeleteEvent removes an activity from the agenda.
func (s *Service) DeleteEvent(ctx context.Context, id string) (*EventDTO, error) {
	e, err := s.findEvent(id)
	if err != nil {
		return nil, err
	}

	all := s.Persistence.List()
	kept := make([]*event.Event, 0, len(all))
	for _, candidate := range all {
		if candidate.ID != id {
			kept = append(kept, candidate)
		}
	}
	if err := s.Persistence.ReplaceAll(kept); err != nil {
		return nil, err
	}

	dto := toDTO(e)
	return &dto, nil
}

// SearchEvents performs a substring match across activity texts and dates.
func (s *Service) SearchEvents(ctx context.Context, query string, limit int) ([]EventDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return []EventDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	results := make([]EventDTO, 0, limit)
	for _, e := range s.Persistence.List() {
		if len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Activity), q) || strings.Contains(e.Date, q) {
			results = append(results, toDTO(e))
		}
	}
	return results, nil
}

// EventByID locates an activity by id and returns the DTO representation.
func (s *Service) EventByID(ctx context.Context, id string) (*EventDTO, error) {
	e, err := s.findEvent(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

func (s *Service) findEvent(id string) (*event.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	if id == "" {
		return nil, errors.New("id is required")
	}

	for _, e := range s.Persistence.List() {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEventNotFound, id)
}

func taken(events []*event.Event, id string) bool {
	for _, e := range events {
		if e.ID == id {
			return true
		}
	}
	return false
}

func toDTOs(events []*event.Event) []EventDTO {
	event.Sort(events)
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e *event.Event) EventDTO {
	dto := EventDTO{
		ID:       e.ID,
		Date:     e.Date,
		Time:     e.Time,
		Activity: e.Activity,
	}
	if when, err := e.When(); err == nil {
		dto.Unix = when.Unix()
	}
	return dto
}

// Package ai wraps the generative-AI chat API as an opaque text
// oracle. Sessions are explicit objects with a create/use lifecycle so
// tests can run several independently, instead of the usual ambient
// singleton.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the generateContent endpoint.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// NewClient builds a client from the given config.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
		log:  zerolog.New(os.Stderr).With().Timestamp().Str("component", "ai").Logger(),
	}
}

// Role identifies a message author.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of a chat session.
type Message struct {
	ID   string
	Role Role
	Text string
}

// Session is a single conversation with a fixed system instruction.
// History accumulates in memory and is resent on every call, which is
// how the upstream chat API models multi-turn context.
type Session struct {
	client      *Client
	instruction string
	history     []Message
}

// NewSession opens a conversation with the given persona instruction.
func (c *Client) NewSession(systemInstruction string) *Session {
	return &Session{client: c, instruction: systemInstruction}
}

// History returns the accumulated turns.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Send submits a prompt and returns the model's reply. Transient
// failures are retried with exponential backoff; the reply is appended
// to the session history on success.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	s.history = append(s.history, Message{ID: uuid.NewString(), Role: RoleUser, Text: prompt})

	var reply string
	operation := func() error {
		text, err := s.client.generate(ctx, s.instruction, s.history)
		if err != nil {
			return err
		}
		reply = text
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		// Drop the unanswered turn so a retry by the caller does not
		// duplicate it.
		s.history = s.history[:len(s.history)-1]
		return "", err
	}

	s.history = append(s.history, Message{ID: uuid.NewString(), Role: RoleModel, Text: reply})
	return reply, nil
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, instruction string, history []Message) (string, error) {
	req := generateRequest{Contents: make([]generateContent, 0, len(history))}
	if instruction != "" {
		req.SystemInstruction = &generateContent{Parts: []generatePart{{Text: instruction}}}
	}
	for _, m := range history {
		req.Contents = append(req.Contents, generateContent{
			Role:  string(m.Role),
			Parts: []generatePart{{Text: m.Text}},
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", backoff.Permanent(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Msg("generate request failed")
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		c.log.Warn().Int("status", resp.StatusCode).Msg("transient upstream error")
		return "", fmt.Errorf("ai: upstream status %d", resp.StatusCode)
	default:
		return "", backoff.Permanent(fmt.Errorf("ai: upstream status %d: %s", resp.StatusCode, payload))
	}

	var decoded generateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", backoff.Permanent(fmt.Errorf("ai: decode response: %w", err))
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", backoff.Permanent(fmt.Errorf("ai: empty response"))
	}

	text := ""
	for _, part := range decoded.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}

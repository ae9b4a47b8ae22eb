package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profeia.dev/profeia/pkg/profile"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{APIKey: "test-key", Model: "gemini-2.5-flash", BaseURL: srv.URL})
	return srv, client
}

func reply(w http.ResponseWriter, text string) {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func TestSessionSendKeepsHistory(t *testing.T) {
	var got generateRequest
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		reply(w, "respuesta")
	})

	s := client.NewSession("instrucción")
	out, err := s.Send(context.Background(), "hola")
	if err != nil {
		t.Fatal(err)
	}
	if out != "respuesta" {
		t.Fatalf("unexpected reply %q", out)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "instrucción" {
		t.Fatalf("system instruction not sent: %+v", got.SystemInstruction)
	}

	if _, err := s.Send(context.Background(), "segunda"); err != nil {
		t.Fatal(err)
	}
	// The full conversation is resent: user, model, user.
	if len(got.Contents) != 3 {
		t.Fatalf("expected 3 turns in second request, got %d", len(got.Contents))
	}
	history := s.History()
	if len(history) != 4 {
		t.Fatalf("expected 4 history messages, got %d", len(history))
	}
	if history[0].ID == history[1].ID {
		t.Fatalf("message ids must be unique")
	}
}

func TestSendRetriesTransientErrors(t *testing.T) {
	calls := 0
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		reply(w, "ok")
	})

	s := client.NewSession("")
	out, err := s.Send(context.Background(), "hola")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ok" || calls != 2 {
		t.Fatalf("expected retry then success, got %q after %d calls", out, calls)
	}
}

func TestSendPermanentErrorDropsTurn(t *testing.T) {
	calls := 0
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	})

	s := client.NewSession("")
	if _, err := s.Send(context.Background(), "hola"); err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("4xx must not be retried, got %d calls", calls)
	}
	if len(s.History()) != 0 {
		t.Fatalf("failed turn must not pollute history")
	}
}

func TestSystemInstruction(t *testing.T) {
	teacher := &profile.Config{
		Name:    "Laura",
		Subject: "Matemática",
		Level:   profile.LevelSecundario,
		Grade:   "Tercer Año",
	}

	got := SystemInstruction(FeaturePlanner, teacher, Params{PlanType: "Semanal"})
	for _, want := range []string{"Laura", "Matemática", "Tercer Año", `tipo "Semanal"`, "40 minutos"} {
		if !strings.Contains(got, want) {
			t.Fatalf("planner instruction missing %q:\n%s", want, got)
		}
	}

	got = SystemInstruction(FeatureSpeech, teacher, Params{})
	if !strings.Contains(got, SpeechEvents[0]) {
		t.Fatalf("speech instruction should default to the first event")
	}
}

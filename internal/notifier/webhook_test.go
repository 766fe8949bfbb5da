package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookSend(t *testing.T) {
	var got WebhookPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "secret-token")
	if err := wh.Send("user-1", "1x Domain ready in 160 min"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if got.UserID != "user-1" {
		t.Errorf("user_id = %q, want user-1", got.UserID)
	}
	if got.Text != "1x Domain ready in 160 min" {
		t.Errorf("text = %q", got.Text)
	}
	if auth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", auth)
	}
}

func TestWebhookSend_GatewayRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown user", http.StatusNotFound)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "secret-token")
	if err := wh.Send("user-1", "hello"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestWebhookSend_GatewayDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	wh := NewWebhook(srv.URL, "secret-token")
	if err := wh.Send("user-1", "hello"); err == nil {
		t.Fatal("expected error when gateway is unreachable")
	}
}

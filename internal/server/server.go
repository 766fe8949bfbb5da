// Package server exposes the bot's HTTP surface: the health endpoint
// and the inbound message hook the chat gateway forwards user messages
// to.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/camontes/resinabot/internal/commands"
)

type Server struct {
	http    *http.Server
	handler *commands.Handler
	log     *log.Logger
}

// MessageRequest is what the gateway POSTs for each inbound chat
// message addressed to the bot.
type MessageRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

// MessageResponse carries the reply the gateway should post back to the
// channel. An empty reply means the message was not a bot command.
type MessageResponse struct {
	Reply string `json:"reply"`
}

func New(addr string, handler *commands.Handler, logger *log.Logger) *Server {
	s := &Server{handler: handler, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/messages", s.handleMessage)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed is
// swallowed; it is the normal shutdown path.
func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("resin bot is running\n"))
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	reply, err := s.handler.Handle(req.UserID, req.Content)
	if err != nil {
		// The reply already phrases the failure for the user; the
		// cause only goes to the log.
		s.log.Error("command failed", "user", req.UserID, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(MessageResponse{Reply: reply}); err != nil {
		s.log.Error("failed to write response", "error", err)
	}
}

package server

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/bible-io/core/canon"
	"github.com/FocuswithJustin/bible-io/internal/logging"
)

const (
	wsMaxMessageSize = 4096
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = 54 * time.Second
	wsWriteWait      = 10 * time.Second
)

// lookupRequest is one client message on /v1/ws. Either Ref or Book and
// Chapter must be set; Verse 0 asks for the whole chapter.
type lookupRequest struct {
	ID          string `json:"id,omitempty"`
	Translation string `json:"translation"`
	Ref         string `json:"ref,omitempty"`
	Book        string `json:"book,omitempty"`
	Chapter     int    `json:"chapter,omitempty"`
	Verse       int    `json:"verse,omitempty"`
}

// lookupResponse echoes the request ID with either a result or an error.
type lookupResponse struct {
	ID      string         `json:"id,omitempty"`
	Type    string         `json:"type"`
	Verse   *verseResponse `json:"verse,omitempty"`
	Passage *passage       `json:"passage,omitempty"`
	Error   *errorBody     `json:"error,omitempty"`
}

// checkOrigin accepts same-origin requests, and any origin listed in
// AllowedOrigins ("*" accepts every origin).
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(s.opts.AllowedOrigins, "*") || slices.Contains(s.opts.AllowedOrigins, origin) {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	logging.SecurityEvent("origin_rejected", "websocket", "origin", origin)
	return false
}

func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	logging.WebSocketEvent("client_connected", int(s.clients.Add(1)))
	defer func() {
		conn.Close()
		logging.WebSocketEvent("client_disconnected", int(s.clients.Add(-1)))
	}()

	done := make(chan struct{})
	defer close(done)
	go pinger(conn, done)

	conn.SetReadLimit(wsMaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.WarnContext(r.Context(), "websocket unexpected close", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsPongWait))

		resp := s.answer(msg)
		data, err := json.Marshal(resp)
		if err != nil {
			logging.Error("failed to marshal lookup response", "error", err)
			return
		}
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// pinger keeps the connection alive. WriteControl may run concurrently with
// the reader loop's writes.
func pinger(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

// answer decodes one request and performs the lookup.
func (s *Server) answer(msg []byte) lookupResponse {
	var req lookupRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return lookupResponse{Type: "error", Error: &errorBody{Kind: "bad_request", Message: "message must be a JSON lookup request"}}
	}

	fail := func(err error) lookupResponse {
		_, kind := classify(err)
		return lookupResponse{ID: req.ID, Type: "error", Error: &errorBody{Kind: kind, Message: err.Error()}}
	}

	t, ok := s.lib.Get(req.Translation)
	if !ok {
		return fail(errTranslationNotFound)
	}

	if req.Ref != "" {
		data, err := lookupReference(t, req.Ref)
		if err != nil {
			return fail(err)
		}
		resp := lookupResponse{ID: req.ID}
		if v, ok := data["verse"].(verseResponse); ok {
			resp.Type, resp.Verse = "verse", &v
		} else if p, ok := data["passage"].(passage); ok {
			resp.Type, resp.Passage = "passage", &p
		}
		return resp
	}

	if req.Book == "" {
		return lookupResponse{ID: req.ID, Type: "error", Error: &errorBody{Kind: "bad_request", Message: "either ref or book is required"}}
	}
	b, err := canon.Lookup(req.Book)
	if err != nil {
		return fail(err)
	}
	if req.Verse == 0 {
		texts, err := t.Chapter(b, req.Chapter)
		if err != nil {
			return fail(err)
		}
		p := newPassage(t, b, req.Chapter, texts)
		return lookupResponse{ID: req.ID, Type: "passage", Passage: &p}
	}
	text, err := t.Verse(b, req.Chapter, req.Verse)
	if err != nil {
		return fail(err)
	}
	v := newVerse(t, b, req.Chapter, req.Verse, text)
	return lookupResponse{ID: req.ID, Type: "verse", Verse: &v}
}

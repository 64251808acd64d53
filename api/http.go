// Package api exposes command.Dispatch over HTTP: a thin introspection
// adapter for operators and tests that would rather curl a subcommand
// than speak the host database's native wire protocol. Routing and JSON
// response shape are adapted from this codebase's own admin_handler.go /
// response_helpers.go conventions.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"valuecore/command"
	"valuecore/logger"
	"valuecore/object"
	"valuecore/object/pools"
)

// Handler serves the OBJECT/MEMORY introspection surface over HTTP,
// backed by a single keyspace Store.
type Handler struct {
	store *object.Store
}

// NewHandler wires a router exposing GET /object/{subcommand} and
// GET /memory/{subcommand}, mirroring the teacher's registration style
// (one mux.Router, one handler method per route family).
func NewHandler(store *object.Store) http.Handler {
	h := &Handler{store: store}
	r := mux.NewRouter()
	r.HandleFunc("/object/{subcommand}", h.handleObject).Methods(http.MethodGet)
	r.HandleFunc("/memory/{subcommand}", h.handleMemory).Methods(http.MethodGet)
	return r
}

// replyResponse is the JSON shape a command.Reply is transcoded to.
type replyResponse struct {
	Type      string      `json:"type"`
	Value     interface{} `json:"value,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

func transcode(reply command.Reply) replyResponse {
	resp := replyResponse{RequestID: reply.RequestID.String()}
	switch reply.Type {
	case command.ReplyNil:
		resp.Type = "nil"
	case command.ReplyInteger:
		resp.Type = "integer"
		resp.Value = reply.Integer
	case command.ReplyBulkString:
		resp.Type = "bulk"
		resp.Value = reply.Bulk
	case command.ReplyError:
		resp.Type = "error"
		resp.Error = reply.Err.Error()
	case command.ReplyArray:
		resp.Type = "array"
		items := make([]interface{}, len(reply.Array))
		for i, item := range reply.Array {
			items[i] = transcode(item)
		}
		resp.Value = items
	}
	return resp
}

func (h *Handler) handleObject(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subcommand"]
	args := []string{sub}
	if key := r.URL.Query().Get("key"); key != "" {
		args = append(args, key)
	}
	h.respond(w, command.Dispatch(h.store, "OBJECT", args))
}

func (h *Handler) handleMemory(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subcommand"]
	args := []string{sub}
	if key := r.URL.Query().Get("key"); key != "" {
		args = append(args, key)
		if samples := r.URL.Query().Get("samples"); samples != "" {
			args = append(args, "SAMPLES", samples)
		}
	}
	h.respond(w, command.Dispatch(h.store, "MEMORY", args))
}

func (h *Handler) respond(w http.ResponseWriter, reply command.Reply) {
	resp := transcode(reply)
	status := http.StatusOK
	if reply.Type == command.ReplyError {
		status = http.StatusBadRequest
	} else if reply.Type == command.ReplyNil {
		status = http.StatusNotFound
	}
	respondJSON(w, status, resp)
}

// respondJSON writes a JSON response using a pooled scratch buffer, the
// same allocation-avoidance shape as the teacher's RespondJSON.
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	buf := pools.GetBuffer()
	defer pools.PutBuffer(buf)

	enc := json.NewEncoder(buf)
	if err := enc.Encode(payload); err != nil {
		logger.Error("api: failed to encode response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

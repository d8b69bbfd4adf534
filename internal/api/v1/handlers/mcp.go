package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sdmeers/UK-weather-MCP/internal/mcp"
)

type MCPHandler struct {
	registry *mcp.Registry
	timeout  time.Duration
}

func NewMCPHandler(registry *mcp.Registry, timeout time.Duration) *MCPHandler {
	return &MCPHandler{
		registry: registry,
		timeout:  timeout,
	}
}

func (h *MCPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/mcp/tools":
		h.ListTools(w, r)
	case "/mcp/call":
		h.CallTool(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// ListTools serves the tool catalog.
func (h *MCPHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, ToolListResponse{
		Tools: h.registry.List(),
	})
}

// CallTool dispatches a tool invocation. Upstream failures surface as tool
// text, not as HTTP errors; only unknown tools and unusable parameters are
// rejected.
func (h *MCPHandler) CallTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request ToolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if request.Tool == "" {
		respondWithError(w, http.StatusBadRequest, "tool name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	content, err := h.registry.Call(ctx, request.Tool, request.Params)
	if err != nil {
		if errors.Is(err, mcp.ErrToolNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}

		log.Error().Err(err).Str("tool", request.Tool).Msg("tool call rejected")
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ToolCallResponse{
		Tool:    request.Tool,
		Content: content,
	})
}

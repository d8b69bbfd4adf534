package handlers

import (
	"encoding/json"

	"github.com/sdmeers/UK-weather-MCP/internal/mcp"
)

type ToolCallRequest struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

type ToolCallResponse struct {
	Tool    string `json:"tool"`
	Content string `json:"content"`
}

type ToolListResponse struct {
	Tools []mcp.ToolDef `json:"tools"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

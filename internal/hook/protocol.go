// Package hook implements the JSON request/response protocol between the
// host agent and tddguard.
//
// Each invocation reads exactly one JSON request from stdin and writes
// exactly one JSON response to stdout. The adapter is the fail-open boundary:
// a missing, malformed, or incomplete request — or any fault inside the
// decision function — yields an allow response rather than an error.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Request is one hook invocation's input. Fields beyond the ones named here
// are ignored; the host may attach arbitrary context.
type Request struct {
	// SessionID identifies the host session, when provided
	SessionID string `json:"session_id"`

	// HookEventName is the lifecycle point, e.g. PreToolUse or SessionStart
	HookEventName string `json:"hook_event_name"`

	// ToolName is the host tool being gated, e.g. Write or Edit
	ToolName string `json:"tool_name"`

	// ToolInput carries the target of the gated action
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput locates the file a tool action targets.
type ToolInput struct {
	// FilePath is the target file; empty when the action has no file target
	FilePath string `json:"file_path"`
}

// Response is one hook invocation's output.
type Response struct {
	// Decision is "allow" or "block"
	Decision string `json:"decision"`

	// Reason explains a block or annotates an allow
	Reason string `json:"reason,omitempty"`
}

// AllowResponse returns the plain allow response.
func AllowResponse() Response {
	return Response{Decision: "allow"}
}

// BlockResponse returns a block response with the given reason.
func BlockResponse(reason string) Response {
	return Response{Decision: "block", Reason: reason}
}

// ReadRequest decodes one request from r.
func ReadRequest(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode hook request: %w", err)
	}
	return &req, nil
}

// WriteResponse encodes one response to w.
func WriteResponse(w io.Writer, resp Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("failed to encode hook response: %w", err)
	}
	return nil
}

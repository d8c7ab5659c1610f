package handler

import (
	"encoding/json"
	"net/http"
)

// Issue is one field-level problem. An empty Path refers to the whole body.
type Issue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Envelope is the body of every JSON response.
type Envelope struct {
	OK     bool    `json:"ok"`
	Error  string  `json:"error,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders body with the given status.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// OK renders 200 {"ok":true}.
func OK() Response {
	return JSON(http.StatusOK, Envelope{OK: true})
}

// JSONError renders {"ok":false,"error":msg} with optional issues.
func JSONError(status int, msg string, issues ...Issue) Response {
	for i := range issues {
		if issues[i].Path == nil {
			issues[i].Path = []string{}
		}
	}
	return JSON(status, Envelope{Error: msg, Issues: issues})
}

package services

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement is an external program the pipeline shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// ToolStatus reports whether a requirement can be found.
type ToolStatus struct {
	Requirement
	Available bool
	Path      string
	Detail    string
}

// CheckTools resolves each requirement on PATH.
func CheckTools(requirements []Requirement) []ToolStatus {
	results := make([]ToolStatus, 0, len(requirements))
	for _, req := range requirements {
		req.Command = strings.TrimSpace(req.Command)
		status := ToolStatus{Requirement: req}
		if req.Command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(req.Command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", req.Command)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

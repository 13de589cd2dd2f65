// Package tools checks for the external MongoDB Database Tools binaries
// that the backup pipeline shells out to.
package tools

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ToolRequirement describes a tool that may be needed for an operation.
type ToolRequirement struct {
	Name     string // e.g. "mongodump"
	Purpose  string // e.g. "database export"
	Required bool   // false = informational only
}

// ToolStatus reports the availability of a single tool.
type ToolStatus struct {
	Name      string
	Path      string
	Version   string
	Available bool
}

// Validator checks whether external CLI tools are present on the system.
type Validator struct {
	log *log.Logger

	// LookPathFunc can be overridden in tests to stub exec.LookPath.
	LookPathFunc func(file string) (string, error)

	// VersionFunc can be overridden in tests to stub version detection.
	VersionFunc func(name string) string
}

// NewValidator creates a Validator that logs through logger.
func NewValidator(logger *log.Logger) *Validator {
	return &Validator{
		log:          logger,
		LookPathFunc: exec.LookPath,
		VersionFunc:  toolVersion,
	}
}

// Validate checks every requirement and returns per-tool status.
// An error is returned only when at least one *required* tool is missing.
func (v *Validator) Validate(reqs []ToolRequirement) ([]ToolStatus, error) {
	results := make([]ToolStatus, 0, len(reqs))
	var missing []string

	for _, req := range reqs {
		ts := ToolStatus{Name: req.Name}

		path, err := v.LookPathFunc(req.Name)
		if err != nil {
			ts.Available = false
			if req.Required {
				missing = append(missing, req.Name)
			}
			if v.log != nil {
				v.log.Debug("tool not found", "tool", req.Name, "purpose", req.Purpose)
			}
		} else {
			ts.Available = true
			ts.Path = path
			ts.Version = v.VersionFunc(req.Name)
			if v.log != nil {
				v.log.Debug("tool found", "tool", req.Name, "path", path, "version", ts.Version)
			}
		}

		results = append(results, ts)
	}

	if len(missing) > 0 {
		return results, fmt.Errorf("missing required tools: %s - install the MongoDB Database Tools", strings.Join(missing, ", "))
	}
	return results, nil
}

// BackupTools returns the tools consulted before a backup run.
func BackupTools() []ToolRequirement {
	return []ToolRequirement{
		{Name: "mongodump", Purpose: "database export", Required: true},
		{Name: "mongorestore", Purpose: "database import", Required: false},
		{Name: "mongostat", Purpose: "server statistics", Required: false},
	}
}

// toolVersion asks the tool for its version and returns the first line.
func toolVersion(name string) string {
	output, err := exec.Command(name, "--version").Output()
	if err != nil {
		return ""
	}
	version := strings.TrimSpace(string(output))
	if idx := strings.IndexByte(version, '\n'); idx >= 0 {
		version = version[:idx]
	}
	return version
}

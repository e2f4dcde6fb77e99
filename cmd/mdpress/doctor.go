package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	mdpress "github.com/alnah/go-mdpress"
	"github.com/alnah/go-mdpress/internal/config"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Tools    []toolInfo `json:"tools"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds the lookup result for one external executable.
type toolInfo struct {
	Role     string `json:"role"` // pandoc, kindlegen, open
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
	Required bool   `json:"required"`
}

// envInfo holds platform details.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// systemInfo holds system check results.
type systemInfo struct {
	DirWritable bool `json:"dir_writable"`
}

// runDoctor checks the configured tools and prints the result. lookPath nil
// means exec.LookPath.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctor(ctx context.Context, cfg *config.Config, jsonOutput bool, env *Environment, lookPath func(string) (string, error)) int {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	result := diagnose(ctx, cfg, env, lookPath)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// diagnose performs all diagnostic checks.
func diagnose(ctx context.Context, cfg *config.Config, env *Environment, lookPath func(string) (string, error)) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env:    envInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	opener := cfg.Tools.Open
	if opener == "" {
		opener = mdpress.OpenCommand("", "").Tool
	}

	checkTool(ctx, result, env, lookPath, toolInfo{Role: "pandoc", Name: cfg.Tools.Pandoc, Required: true}, envPandoc)
	checkTool(ctx, result, env, lookPath, toolInfo{Role: "kindlegen", Name: cfg.Tools.Kindlegen}, envKindlegen)
	checkTool(ctx, result, env, lookPath, toolInfo{Role: "open", Name: opener}, envOpen)
	checkSystem(result, env.Dir)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTool looks up one executable. A missing required tool is an error,
// a missing optional one a warning. Only pandoc reports a version.
func checkTool(ctx context.Context, result *doctorResult, env *Environment, lookPath func(string) (string, error), info toolInfo, envVar string) {
	path, err := lookPath(info.Name)
	if err != nil {
		msg := fmt.Sprintf("%s not found (%s). Install it or set %s", info.Name, info.Role, envVar)
		if info.Required {
			result.Errors = append(result.Errors, msg)
		} else {
			result.Warnings = append(result.Warnings, msg+"; needed for --"+optionalFlag(info.Role))
		}
		result.Tools = append(result.Tools, info)
		return
	}

	info.Found = true
	info.Path = path

	if info.Role == "pandoc" && env.Runner != nil {
		out, err := env.Runner.Run(ctx, path, "--version")
		if err == nil {
			info.Version = firstLine(string(out))
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get pandoc version: %v", err))
		}
	}

	result.Tools = append(result.Tools, info)
}

func optionalFlag(role string) string {
	if role == "kindlegen" {
		return "mobi"
	}
	return role
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

// checkSystem verifies outputs can be written next to the input.
func checkSystem(result *doctorResult, dir string) {
	if dir == "" {
		dir = "."
	}
	testFile := filepath.Join(dir, ".mdpress-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Directory not writable: %s", dir))
	} else {
		_ = os.Remove(testFile)
		result.System.DirWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "mdpress doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tools")
	for _, t := range r.Tools {
		switch {
		case t.Found && t.Version != "":
			fmt.Fprintf(w, "  [OK] %s: %s (%s)\n", t.Role, t.Path, t.Version)
		case t.Found:
			fmt.Fprintf(w, "  [OK] %s: %s\n", t.Role, t.Path)
		case t.Required:
			fmt.Fprintf(w, "  [ERROR] %s: %s not found\n", t.Role, t.Name)
		default:
			fmt.Fprintf(w, "  [WARN] %s: %s not found\n", t.Role, t.Name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.DirWritable {
		fmt.Fprintln(w, "  [OK] Directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

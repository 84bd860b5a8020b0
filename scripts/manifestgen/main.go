package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
	"github.com/plausible-tools/plausible-mcp-server/internal/tools"
	"github.com/plausible-tools/plausible-mcp-server/internal/version"
)

// Options captures manifest generation settings.
type Options struct {
	Name        string
	Version     string
	Description string
	Command     string
	OutputDir   string
}

// Manifest is the extension package descriptor consumed by MCP hosts.
type Manifest struct {
	ManifestVersion string                    `json:"manifest_version"`
	Name            string                    `json:"name"`
	Version         string                    `json:"version"`
	Description     string                    `json:"description"`
	Server          ManifestServer            `json:"server"`
	Tools           []protocol.ToolDescriptor `json:"tools"`
	UserConfig      map[string]UserConfigItem `json:"user_config"`
}

// ManifestServer tells the host how to launch the server binary.
type ManifestServer struct {
	Type      string         `json:"type"`
	Command   string         `json:"command"`
	Transport string         `json:"transport"`
	Env       map[string]any `json:"env,omitempty"`
}

// UserConfigItem describes one setting the host collects from the user.
type UserConfigItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Sensitive   bool   `json:"sensitive,omitempty"`
	Default     string `json:"default,omitempty"`
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	path, err := Generate(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("manifest written to %s\n", path)
}

func parseFlags() (*Options, error) {
	var (
		name        = flag.String("name", "plausible-mcp-server", "manifest name")
		ver         = flag.String("version", version.Get().Version, "version string (X.Y.Z)")
		description = flag.String("description", "MCP server exposing the Plausible Analytics API", "short description")
		command     = flag.String("command", "plausible-mcp-server", "server launch command")
		outDir      = flag.String("output_dir", ".", "output directory for manifest.json")
	)

	flag.Parse()

	if *ver == "" {
		return nil, errors.New("version is required")
	}
	if *name == "" {
		return nil, errors.New("name is required")
	}

	return &Options{
		Name:        *name,
		Version:     *ver,
		Description: *description,
		Command:     *command,
		OutputDir:   *outDir,
	}, nil
}

// Generate writes manifest.json for the current tool catalog and
// returns its path.
func Generate(opts Options) (string, error) {
	manifest := buildManifest(opts)

	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(opts.OutputDir, "manifest.json")
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func buildManifest(opts Options) Manifest {
	// The descriptor is static; no client needed to read it.
	catalog := []protocol.ToolDescriptor{
		tools.PlausibleQuery(nil).Descriptor(),
	}

	return Manifest{
		ManifestVersion: "0.2",
		Name:            opts.Name,
		Version:         opts.Version,
		Description:     opts.Description,
		Server: ManifestServer{
			Type:      "binary",
			Command:   opts.Command,
			Transport: "stdio",
			Env: map[string]any{
				"PLAUSIBLE_API_KEY":  "${user_config.api_key}",
				"PLAUSIBLE_BASE_URL": "${user_config.base_url}",
			},
		},
		Tools: catalog,
		UserConfig: map[string]UserConfigItem{
			"api_key": {
				Type:        "string",
				Title:       "Plausible API key",
				Description: "Stats API key from your Plausible account settings",
				Required:    true,
				Sensitive:   true,
			},
			"base_url": {
				Type:        "string",
				Title:       "Plausible API base URL",
				Description: "Override for self-hosted instances",
				Required:    false,
				Default:     "https://plausible.io/api/v2",
			},
		},
	}
}

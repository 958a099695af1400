package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Disk writes objects under a local root directory that the API serves
// statically. Used in development and for single-host deployments.
type Disk struct {
	root    string
	baseURL string
}

func NewDisk(root, baseURL string) *Disk {
	return &Disk{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (d *Disk) Save(_ context.Context, path string, data []byte, _ string) (string, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	return d.baseURL + "/" + path, nil
}

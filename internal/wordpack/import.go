package wordpack

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Import fetches a word list from a local file or an http(s) URL, validates
// it, and installs it into dir as <name>.txt via an atomic rename. Existing
// packs are only overwritten when force is set.
func Import(ctx context.Context, name, source, dir string, force bool) (Pack, error) {
	if err := validatePackName(name); err != nil {
		return Pack{}, err
	}

	var (
		words []string
		err   error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		words, err = fetchWords(ctx, source)
	} else {
		words, err = LoadFile(source)
	}
	if err != nil {
		return Pack{}, fmt.Errorf("failed to read word list from %s: %w", source, err)
	}

	path := filepath.Join(dir, name+".txt")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return Pack{}, fmt.Errorf("word pack already exists: %s (use --force to overwrite)", path)
		} else if !os.IsNotExist(err) {
			return Pack{}, fmt.Errorf("failed to stat word pack: %w", err)
		}
	}
	if err := writeWords(path, words); err != nil {
		return Pack{}, err
	}
	return Pack{
		Name:        name,
		Description: fmt.Sprintf("Custom pack (%d words)", len(words)),
		Words:       words,
	}, nil
}

func validatePackName(name string) error {
	if name == "" {
		return fmt.Errorf("pack name must not be empty")
	}
	if strings.ContainsAny(name, "/\\ ") || name != filepath.Base(name) {
		return fmt.Errorf("invalid pack name %q", name)
	}
	return nil
}

func fetchWords(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return ParseWords(resp.Body)
}

func writeWords(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create pack dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "pack-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp pack: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write pack: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush pack: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close pack: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to install pack: %w", err)
	}
	return nil
}

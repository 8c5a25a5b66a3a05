// Package storage lists and loads world definition files from a data
// directory. Files may be JSON or YAML; the decoder is picked by extension.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/room-engine/pkg/world"
)

// WorldStorage reads world definitions from the filesystem.
type WorldStorage struct {
	dataDir string
	logger  *slog.Logger
}

func NewWorldStorage(dataDir string, logger *slog.Logger) *WorldStorage {
	return &WorldStorage{dataDir: dataDir, logger: logger}
}

// ListWorlds maps world names to their filenames. Files that fail to parse
// are logged and skipped rather than failing the listing.
func (s *WorldStorage) ListWorlds() (map[string]string, error) {
	worlds := make(map[string]string)

	err := filepath.WalkDir(s.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isWorldFile(path) {
			return nil
		}

		def, err := s.GetWorld(filepath.Base(path))
		if err != nil {
			s.logger.Warn("Failed to read world file", "path", path, "error", err)
			return nil
		}

		worlds[def.Name] = filepath.Base(path)
		return nil
	})

	if err != nil {
		s.logger.Error("Failed to walk worlds directory", "error", err)
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	return worlds, nil
}

// GetWorld loads a single world definition by filename.
func (s *WorldStorage) GetWorld(filename string) (*world.Definition, error) {
	path := filepath.Join(s.dataDir, filename)
	s.logger.Debug("Loading world", "filename", filename, "full_path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("world not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	return DecodeDefinition(data, filepath.Ext(path))
}

// DecodeDefinition parses a world definition from raw bytes. The extension
// selects the codec: ".json", ".yaml" or ".yml".
func DecodeDefinition(data []byte, ext string) (*world.Definition, error) {
	var def world.Definition
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to unmarshal world JSON: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("failed to unmarshal world YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported world file extension %q", ext)
	}
	return &def, nil
}

func isWorldFile(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

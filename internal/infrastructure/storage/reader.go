package storage

import (
	"dusk-rpg/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Load читает сохранение по ID.
func (s *SaveService) Load(id string) (*SaveData, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, id)
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	return decode(raw)
}

func decode(raw []byte) (*SaveData, error) {
	var data SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse save: %w", err)
	}
	if data.Player.ID == "" {
		return nil, fmt.Errorf("failed to parse save: missing player id")
	}
	return &data, nil
}

// List возвращает краткие сведения обо всех сохранениях, новые сверху.
// Битые файлы пропускаются с предупреждением.
func (s *SaveService) List() ([]SaveSummary, error) {
	entries, err := afero.ReadDir(s.fs, s.SaveDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var out []SaveSummary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), saveExt) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), saveExt)
		data, err := s.Load(id)
		if err != nil {
			logger.Log.WithField("file", entry.Name()).WithError(err).Warn("Skipping unreadable save.")
			continue
		}
		out = append(out, SaveSummary{
			ID:        data.Player.ID,
			Name:      data.Player.Name,
			Level:     data.Player.Level,
			ClassName: data.Player.Class.String(),
			Timestamp: data.Timestamp,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Delete удаляет сохранение.
func (s *SaveService) Delete(id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSaveNotFound, id)
		}
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

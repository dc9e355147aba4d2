package storage

import (
	"dusk-rpg/internal/domain"
	"dusk-rpg/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	saveExt = ".json"
	tmpExt  = ".tmp"
)

var (
	// ErrSaveNotFound - сохранения с таким ID нет.
	ErrSaveNotFound = errors.New("save not found")

	// ErrInvalidSaveID - ID не годится в имя файла.
	ErrInvalidSaveID = errors.New("invalid save id")
)

// validID - ID персонажа - UUID, но принимаем любой безопасный для имени файла токен.
var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// SaveData - документ сохранения: персонаж, часы и время записи.
type SaveData struct {
	Player     domain.CharacterSnapshot `json:"player"`
	TimeSystem domain.ClockSnapshot     `json:"timeSystem"`
	Timestamp  time.Time                `json:"timestamp"`
}

// SaveSummary - строка в списке сохранений.
type SaveSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	ClassName string    `json:"className"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveService хранит сохранения JSON-файлами <id>.json в каталоге SaveDir.
type SaveService struct {
	fs      afero.Fs
	SaveDir string
	now     func() time.Time
}

// NewSaveService создаёт хранилище на файловой системе fs (afero.NewOsFs() в бою,
// afero.NewMemMapFs() в тестах). Каталог создаётся, если его нет.
func NewSaveService(fs afero.Fs, dir string) (*SaveService, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &SaveService{fs: fs, SaveDir: dir, now: time.Now}, nil
}

func (s *SaveService) path(id string) (string, error) {
	if !validID.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSaveID, id)
	}
	return filepath.Join(s.SaveDir, id+saveExt), nil
}

// Save записывает снимок персонажа и часов. Возвращает ID сохранения (= ID персонажа).
func (s *SaveService) Save(player domain.CharacterSnapshot, clock domain.ClockSnapshot) (string, error) {
	path, err := s.path(player.ID)
	if err != nil {
		return "", err
	}

	data := SaveData{
		Player:     player,
		TimeSystem: clock,
		Timestamp:  s.now().UTC(),
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode save: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы не оставить обрезанное сохранение.
	// Имя временного файла уникально: одну запись могут сохранять несколько подключений сразу.
	if err := s.writeAtomic(path, player.ID, raw); err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "save_service",
		"save_id":   player.ID,
		"level":     player.Level,
		"phase":     clock.CurrentPhaseIndex,
	}).Debug("Game saved.")
	return player.ID, nil
}

func (s *SaveService) writeAtomic(path, id string, raw []byte) error {
	tmp, err := afero.TempFile(s.fs, s.SaveDir, id+"-*"+tmpExt)
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	name := tmp.Name()

	_, writeErr := tmp.Write(raw)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = s.fs.Remove(name)
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := s.fs.Rename(name, path); err != nil {
		_ = s.fs.Remove(name)
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

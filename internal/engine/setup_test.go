package engine

import (
	"dusk-rpg/internal/domain"
	"dusk-rpg/internal/infrastructure/storage"
	"dusk-rpg/pkg/logger"
	"math/rand"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// countingStore считает записи поверх настоящего хранилища в памяти.
type countingStore struct {
	*storage.SaveService
	saves int
}

func (c *countingStore) Save(p domain.CharacterSnapshot, clock domain.ClockSnapshot) (string, error) {
	c.saves++
	return c.SaveService.Save(p, clock)
}

func newTestSession(t *testing.T, seed int64) (*Session, *countingStore) {
	t.Helper()
	svc, err := storage.NewSaveService(afero.NewMemMapFs(), "saves")
	require.NoError(t, err)
	store := &countingStore{SaveService: svc}
	return NewSession(store, rand.New(rand.NewSource(seed))), store
}

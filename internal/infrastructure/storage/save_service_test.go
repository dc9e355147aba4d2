package storage

import (
	"dusk-rpg/internal/core/types/enums"
	"dusk-rpg/internal/domain"
	"dusk-rpg/pkg/logger"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*SaveService, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	svc, err := NewSaveService(fs, "saves")
	require.NoError(t, err)
	return svc, fs
}

func newSnapshot(t *testing.T, name string, class enums.ClassType) domain.CharacterSnapshot {
	t.Helper()
	c, err := domain.NewCharacter(name, class)
	require.NoError(t, err)
	return c.Snapshot()
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	svc, fs := newTestService(t)

	c, err := domain.NewCharacter("Aria", enums.ClassRogue)
	require.NoError(t, err)
	c.GainExperience(80)
	c.AddItem(domain.Item{Name: "Ring", Slot: enums.SlotAccessory, Cost: 150, Stats: domain.StatBonus{HP: 20}})
	c.EquipItem(domain.Item{Name: "Dagger", Slot: enums.SlotWeapon, Cost: 100, Stats: domain.StatBonus{Dex: 5}})
	snap := c.Snapshot()

	id, err := svc.Save(snap, domain.ClockSnapshot{CurrentPhaseIndex: 2})
	require.NoError(t, err)
	assert.Equal(t, c.ID, id)

	exists, err := afero.Exists(fs, filepath.Join("saves", id+".json"))
	require.NoError(t, err)
	assert.True(t, exists)

	assertNoTempFiles(t, fs)

	data, err := svc.Load(id)
	require.NoError(t, err)
	assert.True(t, snap.Equal(data.Player))
	assert.Equal(t, 2, data.TimeSystem.CurrentPhaseIndex)
	assert.False(t, data.Timestamp.IsZero())
}

func TestSave_Overwrites(t *testing.T) {
	svc, _ := newTestService(t)
	snap := newSnapshot(t, "Aria", enums.ClassMage)

	_, err := svc.Save(snap, domain.ClockSnapshot{})
	require.NoError(t, err)

	snap.Gold = 999
	_, err = svc.Save(snap, domain.ClockSnapshot{CurrentPhaseIndex: 3})
	require.NoError(t, err)

	data, err := svc.Load(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 999, data.Player.Gold)
	assert.Equal(t, 3, data.TimeSystem.CurrentPhaseIndex)
}

func TestLoad_Errors(t *testing.T) {
	svc, fs := newTestService(t)

	_, err := svc.Load("missing")
	assert.ErrorIs(t, err, ErrSaveNotFound)

	_, err = svc.Load("../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidSaveID)

	require.NoError(t, afero.WriteFile(fs, filepath.Join("saves", "broken.json"), []byte("{nope"), 0o644))
	_, err = svc.Load("broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSaveNotFound)
}

func TestList_NewestFirstAndSkipsBroken(t *testing.T) {
	svc, fs := newTestService(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	older := newSnapshot(t, "Old", enums.ClassWarrior)
	svc.now = func() time.Time { return base }
	_, err := svc.Save(older, domain.ClockSnapshot{})
	require.NoError(t, err)

	newer := newSnapshot(t, "New", enums.ClassMage)
	svc.now = func() time.Time { return base.Add(time.Hour) }
	_, err = svc.Save(newer, domain.ClockSnapshot{})
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, filepath.Join("saves", "junk.json"), []byte("not json"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join("saves", "notes.txt"), []byte("hello"), 0o644))

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, "Mage", list[0].ClassName)
	assert.Equal(t, "Old", list[1].Name)
	assert.Equal(t, 1, list[1].Level)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	snap := newSnapshot(t, "Gone", enums.ClassWarrior)
	_, err := svc.Save(snap, domain.ClockSnapshot{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(snap.ID))

	_, err = svc.Load(snap.ID)
	assert.ErrorIs(t, err, ErrSaveNotFound)
	assert.ErrorIs(t, svc.Delete(snap.ID), ErrSaveNotFound)
}

func assertNoTempFiles(t *testing.T, fs afero.Fs) {
	t.Helper()
	entries, err := afero.ReadDir(fs, "saves")
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), tmpExt), "leftover temp file %s", e.Name())
	}
}

func TestSave_ConcurrentWritersOfOneSave(t *testing.T) {
	svc, fs := newTestService(t)
	snap := newSnapshot(t, "Aria", enums.ClassMage)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(phase int) {
			defer wg.Done()
			_, err := svc.Save(snap, domain.ClockSnapshot{CurrentPhaseIndex: phase % 4})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	data, err := svc.Load(snap.ID)
	require.NoError(t, err)
	assert.True(t, snap.Equal(data.Player))
	assertNoTempFiles(t, fs)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

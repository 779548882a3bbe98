package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDBRepository_SaveLoad(t *testing.T) {
	repo := NewMemoryRepository()
	defer repo.Close()

	lines := []Line{
		{ID: 1, Name: "Notebook Pro", Price: 4500, Image: "/img/nb-1.jpg", Quantity: 2},
		{ID: 2, Name: "Mouse Wireless", Price: 89.9, Image: "", Quantity: 1},
	}
	require.NoError(t, repo.Save(lines))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, lines, loaded)
}

func TestLevelDBRepository_LoadMissingSlot(t *testing.T) {
	repo := NewMemoryRepository()
	defer repo.Close()

	loaded, err := repo.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLevelDBRepository_LoadCorruptValue(t *testing.T) {
	repo := NewMemoryRepository()
	defer repo.Close()

	require.NoError(t, repo.db.Put([]byte(cartKey), []byte("{not json"), nil))

	_, err := repo.Load()
	assert.ErrorIs(t, err, ErrCorruptCart)
}

func TestLevelDBRepository_SaveOverwritesWholeCollection(t *testing.T) {
	repo := NewMemoryRepository()
	defer repo.Close()

	require.NoError(t, repo.Save([]Line{{ID: 1, Quantity: 5}}))
	require.NoError(t, repo.Save([]Line{{ID: 2, Quantity: 1}}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].ID)
}

func TestLevelDBRepository_File(t *testing.T) {
	path := t.TempDir() + "/cart.db"

	repo, err := NewLevelDBRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save([]Line{{ID: 3, Name: "Headset", Price: 299, Quantity: 1}}))
	require.NoError(t, repo.Close())

	// Reopen: the slot survives the process.
	repo, err = NewLevelDBRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Headset", loaded[0].Name)
}

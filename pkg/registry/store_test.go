package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "registry.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStoreCreateAndFind(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	loc := types.Location{Linux: "/mnt/configs/big_buck", Windows: `p:\configs\big_buck`}
	id, err := store.CreateConfiguration(ctx, "Primary", loc)
	require.NoError(t, err)
	assert.Positive(t, id)

	rec, err := store.FindConfiguration(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.Record{ID: id, Code: "Primary", Location: loc}, rec)
}

func TestStoreFindMissing(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.FindConfiguration(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	id, err := store.CreateConfiguration(ctx, "Primary", types.Location{Linux: "/old"})
	require.NoError(t, err)

	next := types.Location{Linux: "/new", Mac: "/Volumes/new"}
	require.NoError(t, store.UpdateConfiguration(ctx, id, next))

	rec, err := store.FindConfiguration(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, next, rec.Location)

	err = store.UpdateConfiguration(ctx, id+100, next)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	_, err := store.CreateConfiguration(ctx, "Primary", types.Location{Linux: "/a"})
	require.NoError(t, err)
	_, err = store.CreateConfiguration(ctx, "Dev", types.Location{Linux: "/b"})
	require.NoError(t, err)

	records, err := store.ListConfigurations(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Primary", records[0].Code)
	assert.Equal(t, "Dev", records[1].Code)
}

func TestStoreCreateRequiresCode(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.CreateConfiguration(context.Background(), "  ", types.Location{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestStoreReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	id, err := store.CreateConfiguration(ctx, "Primary", types.Location{Linux: "/a"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.FindConfiguration(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "/a", rec.Location.Linux)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE x (a INT);\n-- +migrate Down\nDROP TABLE x;\n"
	assert.Equal(t, "\nCREATE TABLE x (a INT);\n", extractUpMigration(content))
	assert.Equal(t, "SELECT 1;", extractUpMigration("SELECT 1;"))
}

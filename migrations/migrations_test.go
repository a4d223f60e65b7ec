package migrations

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceListsMigrationsInOrder(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	v, err := src.First()
	require.NoError(t, err)
	versions := []uint{v}
	for {
		next, err := src.Next(v)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		versions = append(versions, next)
		v = next
	}
	assert.Equal(t, []uint{1, 2, 3, 4}, versions)
}

func TestEveryMigrationHasUpAndDown(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	for _, v := range []uint{1, 2, 3, 4} {
		up, _, err := src.ReadUp(v)
		require.NoError(t, err, "up %d", v)
		body, err := io.ReadAll(up)
		require.NoError(t, err)
		assert.NotEmpty(t, body)
		up.Close()

		down, _, err := src.ReadDown(v)
		require.NoError(t, err, "down %d", v)
		down.Close()
	}
}

func TestSchemaKeepsMealTimestampPrecision(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	up, _, err := src.ReadUp(2)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(body), "date_time       TIMESTAMPTZ NOT NULL")
}

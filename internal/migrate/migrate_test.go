package migrate

import (
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/epic-events/migrations"
)

func TestMigrationsEmbedded(t *testing.T) {
	require.NoError(t, prepare())

	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ms, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, ms, len(names))
	require.Equal(t, int64(1), ms[0].Version)
}

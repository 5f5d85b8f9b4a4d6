package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	migs, err := loadMigrations(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, migs)

	assert.Equal(t, 1, migs[0].Version)
	assert.Equal(t, "create_pets", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS pets")
}

func TestLoadMigrations_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0010_later.sql":    {Data: []byte("SELECT 10")},
		"m/0002_second.sql":   {Data: []byte("SELECT 2")},
		"m/0001_first.sql":    {Data: []byte("SELECT 1")},
		"m/README.md":         {Data: []byte("docs")},
		"m/nested/0003_x.sql": {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys, "m")
	require.NoError(t, err)

	versions := make([]int, 0, len(migs))
	for _, m := range migs {
		versions = append(versions, m.Version)
	}
	assert.Equal(t, []int{1, 2, 10}, versions)
	assert.Equal(t, "SELECT 2", migs[1].SQL)
}

func TestLoadMigrations_Rejects(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"no name":    {"m/0001.sql": {Data: []byte("x")}},
		"bad prefix": {"m/abcd_x.sql": {Data: []byte("x")}},
		"zero":       {"m/0000_x.sql": {Data: []byte("x")}},
		"duplicate": {
			"m/0001_a.sql": {Data: []byte("x")},
			"m/1_b.sql":    {Data: []byte("y")},
		},
	}
	for name, fsys := range cases {
		_, err := loadMigrations(fsys, "m")
		assert.Error(t, err, name)
	}
}

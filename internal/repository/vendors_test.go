package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorUpsertMergesByDomainAndName(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository(testClient(t), testLogger())

	// Name only, then domain only, then both: all three observations must
	// converge on a single record with both fields populated.
	id1, err := repo.Upsert(ctx, strp("Acme"), nil)
	require.NoError(t, err)

	id2, err := repo.Upsert(ctx, nil, strp("acme.com"))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2, "domain-only observation cannot match a name-only record")

	id3, err := repo.Upsert(ctx, strp("Acme"), strp("acme.com"))
	require.NoError(t, err)
	assert.Equal(t, id2, id3, "domain lookup wins over name lookup")

	vendors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)

	for _, v := range vendors {
		if v.ID == id2 {
			require.NotNil(t, v.Name)
			require.NotNil(t, v.Domain)
			assert.Equal(t, "Acme", *v.Name)
			assert.Equal(t, "acme.com", *v.Domain)
		}
	}
}

func TestVendorUpsertBackfillsNameOnDomainMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository(testClient(t), testLogger())

	id1, err := repo.Upsert(ctx, nil, strp("acme.com"))
	require.NoError(t, err)

	id2, err := repo.Upsert(ctx, strp("Acme Inc"), strp("acme.com"))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	vendors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	require.NotNil(t, vendors[0].Name)
	assert.Equal(t, "Acme Inc", *vendors[0].Name)
}

func TestVendorUpsertNeverOverwritesPopulatedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository(testClient(t), testLogger())

	id1, err := repo.Upsert(ctx, strp("Acme Inc"), strp("acme.com"))
	require.NoError(t, err)

	// A later observation with a different name for the same domain must not
	// clobber the stored name.
	id2, err := repo.Upsert(ctx, strp("ACME Incorporated"), strp("acme.com"))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	vendors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Acme Inc", *vendors[0].Name)
}

func TestVendorUpsertEmptyStringsTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository(testClient(t), testLogger())

	id, err := repo.Upsert(ctx, strp(""), strp(""))
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())

	vendors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Nil(t, vendors[0].Name)
	assert.Nil(t, vendors[0].Domain)
}

func TestVendorUpsertNameOnlyReuse(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorRepository(testClient(t), testLogger())

	id1, err := repo.Upsert(ctx, strp("Globex"), nil)
	require.NoError(t, err)
	id2, err := repo.Upsert(ctx, strp("Globex"), nil)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/verandah/app/models"
)

func TestOccupyAvailableTable(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	table := seedTable(t, db, 1)

	svc := NewTableService(db)
	got, err := svc.Occupy(table.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TableOccupied, got.Status)
	require.NotNil(t, got.OccupiedBy)
	assert.Equal(t, user.ID, *got.OccupiedBy)
}

func TestOccupyConflictsOnNonAvailableTable(t *testing.T) {
	db := newTestDB(t)
	first := seedUser(t, db, models.RoleCustomer)
	second := seedUser(t, db, models.RoleCustomer)
	table := seedTable(t, db, 1)

	svc := NewTableService(db)
	_, err := svc.Occupy(table.ID, first.ID)
	require.NoError(t, err)

	_, err = svc.Occupy(table.ID, second.ID)
	assert.ErrorIs(t, err, ErrTableOccupied)

	// The first claim still holds.
	got, err := svc.All()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].OccupiedBy)
	assert.Equal(t, first.ID, *got[0].OccupiedBy)
}

func TestOccupyMissingTable(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)

	svc := NewTableService(db)
	_, err := svc.Occupy(999, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReleaseIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	table := seedTable(t, db, 1)

	svc := NewTableService(db)
	_, err := svc.Occupy(table.ID, user.ID)
	require.NoError(t, err)

	got, err := svc.Release(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, got.Status)
	assert.Nil(t, got.OccupiedBy)

	// Releasing again is a no-op, not an error.
	got, err = svc.Release(table.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, got.Status)

	_, err = svc.Release(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvailableListsOnlyFreeTables(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	t1 := seedTable(t, db, 1)
	seedTable(t, db, 2)

	svc := NewTableService(db)
	_, err := svc.Occupy(t1.ID, user.ID)
	require.NoError(t, err)

	free, err := svc.Available()
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, 2, free[0].TableNumber)
}

func TestAdminUpdateForcesStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleCustomer)
	table := seedTable(t, db, 1)

	svc := NewTableService(db)
	_, err := svc.Occupy(table.ID, user.ID)
	require.NoError(t, err)

	got, err := svc.AdminUpdate(table.ID, AdminUpdateInput{Status: models.TableMaintenance, Capacity: 6})
	require.NoError(t, err)
	assert.Equal(t, models.TableMaintenance, got.Status)
	assert.Equal(t, 6, got.Capacity)
	assert.Nil(t, got.OccupiedBy)

	_, err = svc.AdminUpdate(999, AdminUpdateInput{Status: models.TableAvailable})
	assert.ErrorIs(t, err, ErrNotFound)
}

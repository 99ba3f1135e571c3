package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debitit-backend/internal/domain"
)

func TestCreditorRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCreditorRepository(db)
	ctx := context.Background()

	creditor := &domain.Creditor{UserID: 1, Name: "Acme", Contact: "acme@example.com"}

	mock.ExpectQuery("INSERT INTO creditors").
		WithArgs(creditor.UserID, creditor.Name, creditor.Contact, creditor.Due).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, creditor)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), creditor.ID)
}

func TestCreditorRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCreditorRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, name, contact, due FROM creditors").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "contact", "due"}).
				AddRow(7, 1, "Acme", "acme@example.com", "50"))

		creditor, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Acme", creditor.Name)
		assert.True(t, creditor.Due.Equal(decimal.NewFromInt(50)))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, name, contact, due FROM creditors").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreditorRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCreditorRepository(db)
	ctx := context.Background()

	t.Run("deletes row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM creditors").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM creditors").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
	})
}

package resumes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestGet_Found(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT data, updated_at FROM resumes WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"data", "updated_at"}).AddRow([]byte(`{"full_name":"Ada"}`), now))

	got, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", got.UserID)
	require.JSONEq(t, `{"full_name":"Ada"}`, string(got.Data))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT data`).WithArgs("u1").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT data`).WillReturnError(errors.New("down"))

	_, err := repo.Get(context.Background(), "u1")
	require.ErrorContains(t, err, "db error: down")
	require.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestSave_Upserts(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO resumes .* ON CONFLICT \(user_id\)\s+DO UPDATE SET data = EXCLUDED\.data`).
		WithArgs("u1", []byte(`{"email":"a@b.c"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &models.Resume{UserID: "u1", Data: []byte(`{"email":"a@b.c"}`)})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO resumes`).WillReturnError(errors.New("down"))

	err := repo.Save(context.Background(), &models.Resume{UserID: "u1", Data: []byte(`{}`)})
	require.ErrorContains(t, err, "db error: down")
}

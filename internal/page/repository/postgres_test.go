package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/page/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

var pageCols = []string{"id", "store_id", "slug", "title", "schema", "schema_draft", "published", "created_at", "updated_at"}

func TestFindAll(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	published := true

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM pages WHERE store_id = $1 AND published = $2 AND (slug ILIKE $3 OR title ILIKE $4)`)).
		WithArgs("s1", true, "%abo%", "%abo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY title ASC NULLS LAST, created_at ASC LIMIT 1 OFFSET 1`)).
		WithArgs("s1", true, "%abo%", "%abo%").
		WillReturnRows(sqlmock.NewRows(pageCols).
			AddRow("pg2", "s1", "about-us", nil, []byte("[]"), []byte("[]"), true, now, now))

	pages, total, err := repo.FindAll(context.Background(), &dto.PageFilters{StoreID: "s1", Search: "abo", Published: &published, Page: 2, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, pages, 1)
	assert.Nil(t, pages[0].Title)
	assert.Empty(t, pages[0].SchemaDraft)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateSlugIsConflict(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(`INSERT INTO pages`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &model.Page{StoreID: "s1", Slug: "about", Schema: section.Schema{}, SchemaDraft: section.Schema{}})
	assert.True(t, apperror.IsConflict(err))
}

func TestUpdateDuplicateSlugIsConflict(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(`UPDATE pages`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Update(context.Background(), &model.Page{BaseModel: model.BaseModel{ID: "pg1"}, StoreID: "s1", Slug: "about"})
	assert.True(t, apperror.IsConflict(err))
}

func TestFindByIDScopedToStore(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM pages WHERE id = \$1 AND store_id = \$2`).
		WithArgs("pg1", "s2").
		WillReturnRows(sqlmock.NewRows(pageCols))

	_, err := repo.FindByID(context.Background(), "s2", "pg1")
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pages WHERE id = $1 AND store_id = $2`)).
			WithArgs("pg1", "s1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), "s1", "pg1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(`DELETE FROM pages`).
			WithArgs("pg1", "s2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "s2", "pg1")
		assert.True(t, apperror.IsNotFound(err))
	})
}

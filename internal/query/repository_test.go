package query_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"query-gateway/internal/query"
	"query-gateway/pkg/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newTestRepository(t *testing.T) (*query.Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return query.NewRepository(&db.Db{DB: mockDB, Dialect: "sqlite"}), mock
}

func TestQueryNormalizesScalars(t *testing.T) {
	repo, mock := newTestRepository(t)

	when := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	blob := []byte{0xff, 0xfe, 0x00}

	rows := sqlmock.NewRows([]string{"n", "s", "b", "tm", "raw", "missing"}).
		AddRow(int64(42), "text", []byte("hello"), when, blob, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM scalars")).WillReturnRows(rows)

	cols, data, err := repo.Query(context.Background(), "SELECT * FROM scalars")
	assert.NoError(t, err)
	assert.Equal(t, []string{"n", "s", "b", "tm", "raw", "missing"}, cols)
	assert.Len(t, data, 1)

	row := data[0]
	assert.Equal(t, int64(42), row[0])
	assert.Equal(t, "text", row[1])
	// valid UTF-8 bytes come back as a string
	assert.Equal(t, "hello", row[2])
	assert.Equal(t, when.Format(time.RFC3339Nano), row[3])
	// non-UTF-8 bytes come back as a tagged base64 payload
	assert.Equal(t, map[string]any{"type": "bytes", "base64": "//4A"}, row[4])
	assert.Nil(t, row[5])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRowErrorYieldsNoPartialResult(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(int64(1)).
		AddRow(int64(2)).
		RowError(1, errors.New("connection reset"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM t")).WillReturnRows(rows)

	cols, data, err := repo.Query(context.Background(), "SELECT id FROM t")
	assert.Error(t, err)
	assert.Nil(t, cols)
	assert.Nil(t, data)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecDiscardsResult(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM t")).
		WillReturnResult(sqlmock.NewResult(0, 7))

	err := repo.Exec(context.Background(), "DELETE FROM t")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecForwardsEngineError(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE missing")).
		WillReturnError(errors.New("no such table: missing"))

	err := repo.Exec(context.Background(), "DROP TABLE missing")
	assert.EqualError(t, err, "no such table: missing")
	assert.NoError(t, mock.ExpectationsWereMet())
}

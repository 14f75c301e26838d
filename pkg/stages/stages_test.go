package stages

import (
	"context"
	"database/sql"
	"io/ioutil"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/asecurityteam/logevent"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
)

func testLogFn(_ context.Context) domain.Logger {
	return logevent.New(logevent.Config{Output: ioutil.Discard})
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	mockdb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return mockdb, mock
}

func expectColumns(mock sqlmock.Sqlmock, table string, columns ...string) {
	rows := sqlmock.NewRows([]string{"column_name"})
	for _, c := range columns {
		rows.AddRow(c)
	}
	mock.ExpectQuery("information_schema.columns").WithArgs(table).WillReturnRows(rows)
}

func expectUniqueKey(mock sqlmock.Sqlmock, table string, column string, unique bool) {
	mock.ExpectQuery("pg_index").WithArgs(`"`+table+`"`, column).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(unique))
}

type fakeProgress struct {
	completed map[string]bool
	saved     []string
	err       error
}

func (p *fakeProgress) IsCompleted(_ context.Context, stage string, item string) (bool, error) {
	return p.completed[stage+":"+item], p.err
}

func (p *fakeProgress) SaveResult(_ context.Context, stage string, item string) error {
	p.saved = append(p.saved, stage+":"+item)
	return p.err
}

package images

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fstr-project/pereval/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func strPtr(s string) *string { return &s }

const insertQuery = `(?s)^INSERT\s+INTO\s+images\s*\(pass_id,\s*data,\s*title\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(int64(10), "base64payload", strPtr("north slope")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	img := &models.Image{PassID: 10, Data: "base64payload", Title: strPtr("north slope")}
	got, err := repo.Create(context.Background(), img)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(int64(10), "payload", nil).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Image{PassID: 10, Data: "payload"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByPassID_OrderPreserved(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*pass_id,\s*data,\s*title\s+FROM\s+images\s+WHERE\s+pass_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`
	rows := sqlmock.NewRows([]string{"id", "pass_id", "data", "title"}).
		AddRow(int64(1), int64(10), "first", "a").
		AddRow(int64(2), int64(10), "second", nil)
	mock.ExpectQuery(q).WithArgs(int64(10)).WillReturnRows(rows)

	got, err := repo.ListByPassID(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListByPassID error: %v", err)
	}
	if len(got) != 2 || got[0].Data != "first" || got[1].Data != "second" {
		t.Fatalf("unexpected images: %+v", got)
	}
	if got[1].Title != nil {
		t.Fatalf("expected nil title, got %v", *got[1].Title)
	}
}

func TestListByPassID_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*pass_id,\s*data,\s*title\s+FROM\s+images\s+WHERE\s+pass_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`
	mock.ExpectQuery(q).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pass_id", "data", "title"}))

	got, err := repo.ListByPassID(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListByPassID error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no images, got %d", len(got))
	}
}

package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func TestClientStorage_Postgres_Get(t *testing.T) {
	gdb, mock := newMockPostgres(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "client_entries" WHERE client_id = $1 AND entry_key = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "client_id", "entry_key", "value"}).
			AddRow(1, now, now, "c1", "@smart-order:token", "tok"))

	v, ok, err := NewClientStorage(gdb, "c1").Get(context.Background(), "@smart-order:token")
	if err != nil || !ok || v != "tok" {
		t.Fatalf("Get = %q %v %v", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestClientStorage_Postgres_GetMissing(t *testing.T) {
	gdb, mock := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "client_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "entry_key", "value"}))

	_, ok, err := NewClientStorage(gdb, "c1").Get(context.Background(), "@smart-order:user")
	if err != nil || ok {
		t.Fatalf("missing entry: ok=%v err=%v", ok, err)
	}
}

func TestClientStorage_Postgres_SetUpserts(t *testing.T) {
	gdb, mock := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "client_entries"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT ("client_id","entry_key") DO UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	if err := NewClientStorage(gdb, "c1").Set(context.Background(), "@smart-order:token", "tok"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestClientStorage_Postgres_Delete(t *testing.T) {
	gdb, mock := newMockPostgres(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "client_entries" WHERE client_id = $1 AND entry_key IN ($2,$3)`)).
		WithArgs("c1", "@smart-order:user", "@smart-order:token").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := NewClientStorage(gdb, "c1").Delete(context.Background(), "@smart-order:user", "@smart-order:token"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

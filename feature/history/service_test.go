package history

import (
	"context"
	"testing"
	"time"

	"github.com/abhayror17/Excel-Comparator/core/compare"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRecordRun(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comparison_runs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	report := &compare.Report{
		LeftName:  "left.xlsx",
		RightName: "right.xlsx",
		Stats: compare.Stats{
			SheetsCompared: 2,
			TotalModified:  3,
		},
	}

	err := svc.RecordRun(context.Background(), report, 1200*time.Millisecond)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRun_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comparison_runs`").
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	err := svc.RecordRun(context.Background(), &compare.Report{}, time.Second)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "left_name", "right_name", "identical"}).
		AddRow("run-2", "a.xlsx", "b.xlsx", true).
		AddRow("run-1", "c.xlsx", "d.xlsx", false)

	mock.ExpectQuery("SELECT \\* FROM `comparison_runs`").WillReturnRows(rows)

	runs, err := svc.List(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.True(t, runs[0].Identical)
}

func TestGet_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `comparison_runs`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeature_DisabledWithoutDB(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())

	assert.Equal(t, "history", feature.Name())
	assert.False(t, feature.IsEnabled())
}

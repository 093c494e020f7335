// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studytrackr/internal/model"
	"studytrackr/internal/platform/sqlite"
	"studytrackr/internal/repository"
)

// OpenDB opens a migrated in-memory SQLite database private to the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sqlite.New(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get test sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// OpenRedis starts an in-process Redis server and returns a client for it.
func OpenRedis(t *testing.T) (*redisv9.Client, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

// CreateUser inserts a user whose password is the given plain text.
func CreateUser(t *testing.T, db *gorm.DB, username, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func CreateCourse(t *testing.T, db *gorm.DB, userID uint, name string, grade int) *model.Course {
	t.Helper()
	course := &model.Course{UserID: userID, Name: name, EstimatedGrade: grade}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course %s: %v", name, err)
	}
	return course
}

func CreateStudySession(t *testing.T, db *gorm.DB, courseID uint, date string, hours float64) *model.StudySession {
	t.Helper()
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	session := &model.StudySession{CourseID: courseID, Date: day, Hours: hours}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("create study session: %v", err)
	}
	return session
}

func CountRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// AfterUserLookups runs fn once, right after the n-th SELECT against the
// users table. Tests use it to slip a row in between a uniqueness check and
// the insert that follows it.
func AfterUserLookups(t *testing.T, db *gorm.DB, n int, fn func()) {
	t.Helper()
	seen := 0
	err := db.Callback().Query().After("gorm:query").Register("testutil:after_user_lookups", func(tx *gorm.DB) {
		if tx.Statement.Table != "users" {
			return
		}
		seen++
		if seen == n {
			fn()
		}
	})
	if err != nil {
		t.Fatalf("register query callback: %v", err)
	}
}

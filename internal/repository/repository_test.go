package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrackr/internal/model"
	"studytrackr/internal/repository"
	"studytrackr/internal/testutil"
)

func TestUserRepository_CreateAndLookups(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missingID, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missingID)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}))

	err := repo.Create(ctx, &model.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = repo.Create(ctx, &model.User{Username: "other", Email: "a@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "password123")
	bob := testutil.CreateUser(t, db, "bob", "password123")
	aliceCourse := testutil.CreateCourse(t, db, alice.ID, "Algebra", 90)
	bobCourse := testutil.CreateCourse(t, db, bob.ID, "Biology", 80)
	testutil.CreateStudySession(t, db, aliceCourse.ID, "2024-03-01", 2)
	testutil.CreateStudySession(t, db, bobCourse.ID, "2024-03-01", 1)

	require.NoError(t, repo.Delete(ctx, alice.ID))

	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.User{}))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.Course{}))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.StudySession{}))

	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), repository.ErrNotFound)
}

func TestCourseRepository_ListByUserID(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewCourseRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "password123")
	bob := testutil.CreateUser(t, db, "bob", "password123")
	require.NoError(t, repo.Create(ctx, &model.Course{UserID: alice.ID, Name: "Algebra", EstimatedGrade: 93}))
	require.NoError(t, repo.Create(ctx, &model.Course{UserID: alice.ID, Name: "History", EstimatedGrade: 65}))
	require.NoError(t, repo.Create(ctx, &model.Course{UserID: bob.ID, Name: "Biology", EstimatedGrade: 70}))

	courses, err := repo.ListByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Algebra", courses[0].Name)
	assert.Equal(t, "History", courses[1].Name)
}

func TestCourseRepository_DeleteOwned(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewCourseRepository(db)
	sessions := repository.NewStudySessionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "password123")
	bob := testutil.CreateUser(t, db, "bob", "password123")
	course := testutil.CreateCourse(t, db, alice.ID, "Algebra", 90)
	s1 := testutil.CreateStudySession(t, db, course.ID, "2024-03-01", 2)
	s2 := testutil.CreateStudySession(t, db, course.ID, "2024-03-02", 1.5)

	t.Run("foreign owner", func(t *testing.T) {
		err := repo.DeleteOwned(ctx, course.ID, bob.ID)
		assert.ErrorIs(t, err, repository.ErrNotOwner)
		got, err := repo.GetByID(ctx, course.ID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, int64(2), testutil.CountRows(t, db, &model.StudySession{}))
	})

	t.Run("missing", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteOwned(ctx, 9999, alice.ID), repository.ErrNotFound)
	})

	t.Run("owner cascades", func(t *testing.T) {
		require.NoError(t, repo.DeleteOwned(ctx, course.ID, alice.ID))
		got, err := repo.GetByID(ctx, course.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		for _, id := range []uint{s1.ID, s2.ID} {
			gone, err := sessions.GetByID(ctx, id)
			require.NoError(t, err)
			assert.Nil(t, gone)
		}
	})
}

func TestStudySessionRepository_CreateForOwner(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewStudySessionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "password123")
	bob := testutil.CreateUser(t, db, "bob", "password123")
	course := testutil.CreateCourse(t, db, alice.ID, "Algebra", 90)

	err := repo.CreateForOwner(ctx, &model.StudySession{CourseID: course.ID, Hours: 1}, bob.ID)
	assert.ErrorIs(t, err, repository.ErrNotOwner)

	err = repo.CreateForOwner(ctx, &model.StudySession{CourseID: 9999, Hours: 1}, alice.ID)
	assert.ErrorIs(t, err, repository.ErrNotOwner)
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &model.StudySession{}))

	session := &model.StudySession{CourseID: course.ID, Hours: 2.5, Note: "chapter 3"}
	require.NoError(t, repo.CreateForOwner(ctx, session, alice.ID))
	assert.NotZero(t, session.ID)
}

func TestStudySessionRepository_ListAndSum(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewStudySessionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "password123")
	bob := testutil.CreateUser(t, db, "bob", "password123")
	algebra := testutil.CreateCourse(t, db, alice.ID, "Algebra", 90)
	history := testutil.CreateCourse(t, db, alice.ID, "History", 70)
	biology := testutil.CreateCourse(t, db, bob.ID, "Biology", 80)
	testutil.CreateStudySession(t, db, algebra.ID, "2024-03-01", 2)
	testutil.CreateStudySession(t, db, algebra.ID, "2024-03-05", 1.5)
	testutil.CreateStudySession(t, db, history.ID, "2024-03-03", 1)
	testutil.CreateStudySession(t, db, biology.ID, "2024-03-04", 4)

	list, err := repo.ListByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-03-05", list[0].Date.Format(model.DateLayout))
	assert.Equal(t, "Algebra", list[0].CourseName)
	assert.Equal(t, "2024-03-03", list[1].Date.Format(model.DateLayout))
	assert.Equal(t, "History", list[1].CourseName)
	assert.Equal(t, "2024-03-01", list[2].Date.Format(model.DateLayout))

	totals, err := repo.SumHoursByCourse(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint]float64{algebra.ID: 3.5, history.ID: 1}, totals)
}

func TestStudySessionRepository_DeleteOwned(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewStudySessionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "password123")
	bob := testutil.CreateUser(t, db, "bob", "password123")
	course := testutil.CreateCourse(t, db, alice.ID, "Algebra", 90)
	session := testutil.CreateStudySession(t, db, course.ID, "2024-03-01", 2)

	assert.ErrorIs(t, repo.DeleteOwned(ctx, session.ID, bob.ID), repository.ErrNotOwner)
	assert.ErrorIs(t, repo.DeleteOwned(ctx, 9999, alice.ID), repository.ErrNotFound)

	still, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, still)

	require.NoError(t, repo.DeleteOwned(ctx, session.ID, alice.ID))
	gone, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

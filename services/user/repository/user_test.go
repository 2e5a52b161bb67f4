package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{"id", "full_name", "email", "phone", "password", "push_subscription", "is_active", "created_at", "updated_at"}
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	u := &models.User{
		FullName: "Asha Kulkarni",
		Email:    "asha@example.com",
		Phone:    "+919812345678",
		Password: "hashed-password",
	}

	mock.ExpectExec("^INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), u.FullName, u.Email, u.Phone, u.Password, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), u)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.True(t, u.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	testCases := []struct {
		name       string
		email      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:  "Success",
			email: "asha@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
				rows := sqlmock.NewRows(userColumns()).
					AddRow(userID, "Asha Kulkarni", "asha@example.com", "+919812345678", "hashed", nil, true, time.Now(), time.Now())
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("asha@example.com").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "asha@example.com", user.Email)
				assert.Equal(t, "Asha Kulkarni", user.FullName)
				assert.Nil(t, user.PushSubscription)
			},
		},
		{
			name:  "Not Found",
			email: "missing@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("missing@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns()))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, ErrUserNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByEmail(context.Background(), tc.email)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePushSubscription(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	subscription := `{"endpoint":"https://push/1"}`

	mock.ExpectExec("^UPDATE users SET push_subscription").
		WithArgs(subscription, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePushSubscription(context.Background(), userID, subscription)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePushSubscription_UnknownUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectExec("^UPDATE users SET push_subscription").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePushSubscription(context.Background(), userID, "{}")

	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestGetPushSubscriptions(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "push_subscription"}).
		AddRow("user-1", `{"endpoint":"https://push/1"}`).
		AddRow("user-3", `{"endpoint":"https://push/3"}`)

	mock.ExpectQuery("^SELECT id, push_subscription FROM users").
		WillReturnRows(rows)

	subscriptions, err := repo.GetPushSubscriptions(context.Background(), []string{"user-1", "user-2", "user-3"})

	require.NoError(t, err)
	assert.Len(t, subscriptions, 2)
	assert.Equal(t, `{"endpoint":"https://push/1"}`, subscriptions["user-1"])
	assert.NotContains(t, subscriptions, "user-2")
}

func TestGetPushSubscriptions_EmptyInput(t *testing.T) {
	repo, _, cleanup := setupUserRepoTest(t)
	defer cleanup()

	// No query should run for an empty ID list
	subscriptions, err := repo.GetPushSubscriptions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, subscriptions)
}

func TestAddEmergencyContact(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	contact := &models.EmergencyContact{
		UserID: uuid.New(),
		Name:   "Ravi",
		Phone:  "+919812345678",
		Email:  "ravi@example.com",
	}

	mock.ExpectQuery("^INSERT INTO emergency_contacts").
		WithArgs(sqlmock.AnyArg(), contact.UserID, contact.Name, contact.Phone, contact.Email, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"position"}).AddRow(2))

	err := repo.AddEmergencyContact(context.Background(), contact)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, 2, contact.Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmergencyContact_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	contactID := uuid.New()

	mock.ExpectExec("^DELETE FROM emergency_contacts").
		WithArgs(contactID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEmergencyContact(context.Background(), userID, contactID)

	assert.Error(t, err)
}

func TestGetEmergencyContacts(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "position", "created_at"}).
		AddRow(uuid.New(), userID, "Ravi", "+919812345678", "ravi@example.com", 0, time.Now()).
		AddRow(uuid.New(), userID, "Meera", "+919887654321", "meera@example.com", 1, time.Now())

	mock.ExpectQuery("^SELECT (.+) FROM emergency_contacts").
		WithArgs(userID).
		WillReturnRows(rows)

	contacts, err := repo.GetEmergencyContacts(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Ravi", contacts[0].Name)
	assert.Equal(t, "Meera", contacts[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package usecase

import (
	"context"
	"testing"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/user/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePushSubscription_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, authTestConfig())

	userID := uuid.New()
	subscription := `{"endpoint":"https://push.example.com/sub/abc","keys":{"p256dh":"k1","auth":"k2"}}`

	mockRepo.EXPECT().
		UpdatePushSubscription(gomock.Any(), userID, subscription).
		Return(nil)

	// Act
	err := uc.SavePushSubscription(context.Background(), userID, subscription)

	// Assert
	assert.NoError(t, err)
}

func TestSavePushSubscription_RejectsInvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, authTestConfig())

	tests := []struct {
		name         string
		subscription string
	}{
		{name: "not json", subscription: "definitely not json"},
		{name: "missing endpoint", subscription: `{"keys":{"auth":"k"}}`},
		{name: "empty", subscription: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.SavePushSubscription(context.Background(), uuid.New(), tt.subscription)
			assert.Error(t, err)
		})
	}
}

func TestAddContact_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, authTestConfig())

	userID := uuid.New()
	contact := &models.EmergencyContact{
		Name:  "Ravi",
		Phone: "+91 98123-45678",
		Email: "ravi@example.com",
	}

	mockRepo.EXPECT().
		AddEmergencyContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored *models.EmergencyContact) error {
			assert.Equal(t, userID, stored.UserID)
			assert.Equal(t, "+919812345678", stored.Phone)
			stored.Position = 0
			return nil
		})

	// Act
	created, err := uc.AddContact(context.Background(), userID, contact)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
}

func TestAddContact_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, authTestConfig())

	tests := []struct {
		name    string
		contact *models.EmergencyContact
	}{
		{
			name:    "missing name",
			contact: &models.EmergencyContact{Phone: "+919812345678", Email: "a@b.com"},
		},
		{
			name:    "bad phone",
			contact: &models.EmergencyContact{Name: "Ravi", Phone: "12345", Email: "a@b.com"},
		},
		{
			name:    "bad email",
			contact: &models.EmergencyContact{Name: "Ravi", Phone: "+919812345678", Email: "nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := uc.AddContact(context.Background(), uuid.New(), tt.contact)
			assert.Error(t, err)
			assert.Nil(t, created)
		})
	}
}

func TestListContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, authTestConfig())

	userID := uuid.New()
	stored := []models.EmergencyContact{
		{ID: uuid.New(), UserID: userID, Name: "Ravi", Position: 0},
		{ID: uuid.New(), UserID: userID, Name: "Meera", Position: 1},
	}

	mockRepo.EXPECT().
		GetEmergencyContacts(gomock.Any(), userID).
		Return(stored, nil)

	contacts, err := uc.ListContacts(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, stored, contacts)
}

func TestRemoveContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, authTestConfig())

	userID := uuid.New()
	contactID := uuid.New()

	mockRepo.EXPECT().
		DeleteEmergencyContact(gomock.Any(), userID, contactID).
		Return(nil)

	err := uc.RemoveContact(context.Background(), userID, contactID)

	assert.NoError(t, err)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/utils"
	"github.com/code01-66/Digi-Sanchaar/services/user"
	"github.com/google/uuid"
)

// UserUC implements the user service use cases
type UserUC struct {
	userRepo user.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new user usecase
func NewUserUC(userRepo user.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// SavePushSubscription validates and stores a Web Push subscription blob
func (uc *UserUC) SavePushSubscription(ctx context.Context, userID uuid.UUID, subscription string) error {
	// The blob is opaque to dispatch, but it must at least be JSON with
	// an endpoint or the push gateway can never use it.
	var probe struct {
		Endpoint string `json:"endpoint"`
	}
	if err := json.Unmarshal([]byte(subscription), &probe); err != nil || probe.Endpoint == "" {
		return fmt.Errorf("invalid push subscription payload")
	}

	if err := uc.userRepo.UpdatePushSubscription(ctx, userID, subscription); err != nil {
		return err
	}

	logger.Info("Stored push subscription", logger.String("user_id", userID.String()))
	return nil
}

// AddContact validates and appends an emergency contact
func (uc *UserUC) AddContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) (*models.EmergencyContact, error) {
	if contact.Name == "" {
		return nil, fmt.Errorf("contact name is required")
	}

	phone, err := utils.NormalizePhone(contact.Phone)
	if err != nil {
		return nil, err
	}
	contact.Phone = phone

	if !utils.IsValidEmail(contact.Email) {
		return nil, fmt.Errorf("invalid contact email address")
	}

	contact.UserID = userID
	if err := uc.userRepo.AddEmergencyContact(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// RemoveContact deletes one of the user's emergency contacts
func (uc *UserUC) RemoveContact(ctx context.Context, userID, contactID uuid.UUID) error {
	return uc.userRepo.DeleteEmergencyContact(ctx, userID, contactID)
}

// ListContacts returns the user's emergency contacts in list order
func (uc *UserUC) ListContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error) {
	return uc.userRepo.GetEmergencyContacts(ctx, userID)
}

package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"glamar-shop/models"
)

type ContactStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type ContactNotifier interface {
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

type ContactService struct {
	contacts ContactStore
	notifier ContactNotifier
	log      logrus.FieldLogger
}

// NewContactService accepts a nil notifier, in which case messages are
// only stored and logged.
func NewContactService(contacts ContactStore, notifier ContactNotifier, log logrus.FieldLogger) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier, log: log}
}

func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, newValidationError("All fields are required")
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"contact_id": msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"message":    msg.Message,
	}).Info("New contact message")

	if s.notifier != nil {
		if err := s.notifier.NotifyContact(ctx, *msg); err != nil {
			s.log.WithError(err).WithField("contact_id", msg.ID).Warn("contact notification not sent")
		}
	}

	return msg, nil
}

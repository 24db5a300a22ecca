package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/dispatch"
)

type recipientDirectory struct {
	db *gorm.DB
}

func NewRecipientDirectory(db *gorm.DB) dispatch.RecipientDirectory {
	return &recipientDirectory{db: db}
}

func (d *recipientDirectory) FindRecipient(ctx context.Context, id domain.UserID) (dispatch.Recipient, error) {
	var m UserModel

	result := d.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return dispatch.Recipient{}, dispatch.ErrRecipientNotFound
		}

		slog.Error("failed to find recipient",
			"user_id", id.String(),
			"error", result.Error,
		)

		return dispatch.Recipient{}, result.Error
	}

	return dispatch.Recipient{
		UserID: id,
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Preferences: dispatch.Preferences{
			Email: m.NotifyEmail,
			Push:  m.NotifyPush,
			SMS:   m.NotifySMS,
			InApp: m.NotifyInApp,
		},
	}, nil
}

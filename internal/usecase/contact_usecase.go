package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
)

type contactUsecase struct {
	mailer *email.EmailService
}

func NewContactUsecase(mailer *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{mailer: mailer}
}

func (u *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if !u.mailer.IsConfigured() {
		logger.Log.Warn("contact message dropped, SMTP not configured",
			slog.String("from", req.Email))
		return apperror.New(http.StatusServiceUnavailable, "Contact service is not available right now", nil)
	}

	data := email.ContactEmailData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
	}
	if err := u.mailer.SendContactEmail(data); err != nil {
		logger.Log.Error("failed to send contact email", slog.Any("error", err))
		return apperror.Internal(err)
	}
	return nil
}

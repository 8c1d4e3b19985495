package account

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/joao-fontenele/storefront-core/internal/domain"
)

// EmailSender delivers a message to a recipient. Delivery is asynchronous
// from the recipient's point of view; a returned error means the handoff
// itself failed.
type EmailSender interface {
	Send(ctx context.Context, recipient, body string) error
}

// CodeGenerator produces one-time login codes.
type CodeGenerator interface {
	Generate() domain.OneTimeCode
}

const welcomeBody = "Welcome aboard! Your account is ready."

type Service struct {
	email    EmailSender
	codes    CodeGenerator
	logger   *slog.Logger
	validate func(string) bool
}

func NewService(email EmailSender, codes CodeGenerator, logger *slog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		email:    email,
		codes:    codes,
		logger:   logger,
		validate: isEmailAddress,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type ServiceOption func(*Service)

// WithEmailValidator replaces the default "parses as an address" check.
func WithEmailValidator(validate func(string) bool) ServiceOption {
	return func(s *Service) {
		if validate != nil {
			s.validate = validate
		}
	}
}

func isEmailAddress(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// SignUp registers the address and sends a single welcome email. An
// address that fails validation is rejected with false and no email. A
// failed handoff to the sender is logged but does not undo the signup.
func (s *Service) SignUp(ctx context.Context, email string) (bool, error) {
	if !s.validate(email) {
		return false, nil
	}

	if err := s.email.Send(ctx, email, welcomeBody); err != nil {
		s.logger.Error("failed to send welcome email", "error", err, "recipient", email)
		return true, nil
	}

	s.logger.Info("signup complete", "recipient", email)
	return true, nil
}

// Login generates one login code and emails its string form verbatim. The
// emailed body is exactly the code the generator produced.
func (s *Service) Login(ctx context.Context, email string) error {
	code := s.codes.Generate()

	if err := s.email.Send(ctx, email, code.String()); err != nil {
		return fmt.Errorf("send login code: %w", err)
	}

	s.logger.Info("login code sent", "recipient", email)
	return nil
}

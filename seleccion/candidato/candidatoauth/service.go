package candidatoauth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/candidato"
)

// CandidatoAuthService authenticates candidatos against the portal
type CandidatoAuthService struct {
	candidatoRepo candidato.Repository
	passwordSvc   auth.PasswordService
	tokenService  *CandidatoTokenService
	resetStore    auth.ResetTokenStore
	notifier      auth.ResetNotifier
	resetTokenTTL time.Duration
}

func NewCandidatoAuthService(
	candidatoRepo candidato.Repository,
	passwordSvc auth.PasswordService,
	tokenService *CandidatoTokenService,
	resetStore auth.ResetTokenStore,
	notifier auth.ResetNotifier,
	resetTokenTTL time.Duration,
) *CandidatoAuthService {
	return &CandidatoAuthService{
		candidatoRepo: candidatoRepo,
		passwordSvc:   passwordSvc,
		tokenService:  tokenService,
		resetStore:    resetStore,
		notifier:      notifier,
		resetTokenTTL: resetTokenTTL,
	}
}

// CandidatoSession is the issued portal session
type CandidatoSession struct {
	CandidatoID kernel.CandidatoID `json:"candidato_id"`
	Nombre      string             `json:"nombre"`
	Email       kernel.Email       `json:"email"`
	Token       string             `json:"token"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// Login authenticates a candidato by documento and password
func (s *CandidatoAuthService) Login(ctx context.Context, numeroDocumento, password string) (*CandidatoSession, error) {
	entity, err := s.candidatoRepo.GetByDocumento(ctx, numeroDocumento)
	if err != nil {
		return nil, auth.ErrInvalidCredentials()
	}

	if !entity.IsActive() {
		return nil, candidato.ErrCandidatoInactive()
	}

	if entity.PasswordHash == "" || !s.passwordSvc.Verify(entity.PasswordHash, password) {
		return nil, auth.ErrInvalidCredentials()
	}

	token, err := s.tokenService.GenerateCandidatoToken(entity.ID, entity.Email)
	if err != nil {
		return nil, err
	}

	return &CandidatoSession{
		CandidatoID: entity.ID,
		Nombre:      entity.GetFullName(),
		Email:       entity.Email,
		Token:       token,
		ExpiresAt:   time.Now().Add(30 * time.Minute),
	}, nil
}

// RequestPasswordReset issues a reset token delivered to the candidato's email
func (s *CandidatoAuthService) RequestPasswordReset(ctx context.Context, numeroDocumento string) error {
	entity, err := s.candidatoRepo.GetByDocumento(ctx, numeroDocumento)
	if err != nil {
		// Swallow unknown documento so the endpoint does not leak existence.
		return nil
	}
	if !entity.HasEmail() {
		return nil
	}

	token := uuid.NewString()
	if err := s.resetStore.Put(ctx, "candidato:"+token, kernel.UserID(entity.ID), s.resetTokenTTL); err != nil {
		return errx.Wrap(err, "failed to store reset token", errx.TypeInternal)
	}

	return s.notifier.SendPasswordReset(ctx, entity.Email, token)
}

// ResetPassword consumes a reset token and sets the new password
func (s *CandidatoAuthService) ResetPassword(ctx context.Context, token, password string) error {
	if len(password) < 8 {
		return candidato.ErrInvalidRequest().WithDetail("min_length", 8)
	}

	userID, err := s.resetStore.Take(ctx, "candidato:"+token)
	if err != nil {
		return errx.Wrap(err, "failed to resolve reset token", errx.TypeInternal)
	}
	if userID.IsEmpty() {
		return auth.ErrInvalidResetToken()
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	return s.candidatoRepo.UpdatePassword(ctx, kernel.CandidatoID(userID), hash)
}

// Profile returns the candidato behind a session
func (s *CandidatoAuthService) Profile(ctx context.Context, candidatoID kernel.CandidatoID) (*candidato.Candidato, error) {
	return s.candidatoRepo.GetByID(ctx, candidatoID)
}

package candidatoauth

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CandidatoTokenService wraps IAM's TokenService for candidato portal tokens
type CandidatoTokenService struct {
	iamTokenService auth.TokenService
}

// NewCandidatoTokenService creates a wrapper around IAM's TokenService
func NewCandidatoTokenService(iamTokenService auth.TokenService) *CandidatoTokenService {
	return &CandidatoTokenService{
		iamTokenService: iamTokenService,
	}
}

// GenerateCandidatoToken generates a portal token for a candidato. The
// candidato ID rides in the subject; the portal claim marks it so admin
// middleware rejects it.
func (s *CandidatoTokenService) GenerateCandidatoToken(
	candidatoID kernel.CandidatoID,
	email kernel.Email,
) (string, error) {
	token, err := s.iamTokenService.GenerateAccessToken(
		kernel.UserID(candidatoID),
		string(email),
		nil,
		"candidato",
	)
	if err != nil {
		return "", errx.Wrap(err, "failed to generate candidato token", errx.TypeInternal)
	}

	return token, nil
}

// ValidateCandidatoToken validates a portal token
func (s *CandidatoTokenService) ValidateCandidatoToken(tokenString string) (*CandidatoClaims, error) {
	tokenClaims, err := s.iamTokenService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	if tokenClaims.Portal != "candidato" {
		return nil, auth.ErrInvalidToken().WithDetail("portal", tokenClaims.Portal)
	}

	return &CandidatoClaims{
		CandidatoID: kernel.CandidatoID(tokenClaims.UserID),
		Email:       kernel.Email(tokenClaims.Email),
		ExpiresAt:   tokenClaims.ExpiresAt,
	}, nil
}

// CandidatoClaims represents candidato-specific claims
type CandidatoClaims struct {
	CandidatoID kernel.CandidatoID
	Email       kernel.Email
	ExpiresAt   time.Time
}

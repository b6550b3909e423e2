package authinfra

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordService hashes passwords with bcrypt.
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a password service with the given cost.
// A cost of 0 uses the bcrypt default.
func NewBcryptPasswordService(cost int) *BcryptPasswordService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordService{cost: cost}
}

func (s *BcryptPasswordService) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptPasswordService) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

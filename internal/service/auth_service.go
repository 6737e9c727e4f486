package service

import (
	"errors"

	"go-baki-pos/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN       = errors.New("invalid PIN")
	ErrPINNotConfigured = errors.New("operator PIN is not configured")
)

type AuthService interface {
	Login(pin string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type Operator struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Operator Operator `json:"operator"`
}

type TokenValidationResponse struct {
	Operator Operator `json:"operator"`
}

// authService guards the shop with one operator PIN
type authService struct {
	pinHash  []byte
	operator Operator
}

func NewAuthService(pinHash, operatorName string) AuthService {
	return &authService{
		pinHash:  []byte(pinHash),
		operator: Operator{ID: uuid.New(), Name: operatorName},
	}
}

// HashPIN hashes a PIN for OPERATOR_PIN_HASH
func HashPIN(pin string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *authService) Login(pin string) (*LoginResponse, error) {
	if len(s.pinHash) == 0 {
		return nil, ErrPINNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(pin)); err != nil {
		return nil, ErrInvalidPIN
	}

	token, err := jwt.GenerateToken(s.operator.ID, s.operator.Name)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, Operator: s.operator}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.OperatorID != s.operator.ID {
		// token from a previous process run
		return nil, jwt.ErrInvalidToken
	}
	return &TokenValidationResponse{Operator: Operator{ID: claims.OperatorID, Name: claims.Name}}, nil
}

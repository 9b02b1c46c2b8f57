package service

import (
	"errors"
	"time"

	"go-pos-dashboard/internal/gateway"
	"go-pos-dashboard/pkg/jwt"
)

var (
	ErrInvalidInput       = errors.New("Invalid input. Please check your details.")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrUnknownRole        = errors.New("Unknown role. Please contact support.")
	ErrLoginUnavailable   = errors.New("An error occurred. Please try again later.")
)

// LoginResult adalah hasil login: token sesi plus tujuan redirect sesuai role.
type LoginResult struct {
	Token    string `json:"-"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

type AuthService interface {
	Login(username, password string) (*LoginResult, error)
}

type authService struct {
	authGateway gateway.AuthGateway
	sessionTTL  time.Duration
}

func NewAuthService(authGw gateway.AuthGateway, sessionTTL time.Duration) AuthService {
	return &authService{authGateway: authGw, sessionTTL: sessionTTL}
}

// Login meneruskan kredensial ke backend dan menerbitkan token sesi dengan
// role dari jawaban backend. Pesan error mengikuti status backend.
func (s *authService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	role, err := s.authGateway.VerifyUser(username, password)
	if err != nil {
		switch gateway.StatusOf(err) {
		case 400:
			return nil, ErrInvalidInput
		case 401:
			return nil, ErrInvalidCredentials
		case 404:
			return nil, ErrUserNotFound
		}
		return nil, ErrLoginUnavailable
	}

	var redirect string
	switch role {
	case "admin":
		redirect = "/admin"
	case "user":
		redirect = "/dashboard"
	default:
		return nil, ErrUnknownRole
	}

	token, err := jwt.GenerateSession(username, role, s.sessionTTL)
	if err != nil {
		return nil, ErrLoginUnavailable
	}

	return &LoginResult{Token: token, Role: role, Redirect: redirect}, nil
}

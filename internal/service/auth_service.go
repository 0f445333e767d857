package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"einsatzplan/internal/config"
	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"
	"einsatzplan/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const consentRequiredMsg = "Bitte zuerst auf der Startseite in die Datenverarbeitung einwilligen."

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ConsentStatus(ctx context.Context, username string) (*dto.ConsentStatusResponse, error)
	SetConsent(ctx context.Context, p model.Principal, req dto.SetConsentRequest) error
	// RequireConsent blocks employee-role principals without recorded
	// DSGVO consent. Manager roles pass unconditionally.
	RequireConsent(ctx context.Context, p model.Principal) error
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, errors.New("Login fehlgeschlagen")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("Login fehlgeschlagen")
	}

	role := model.NormalizeRole(user.Role)
	if role == "" {
		role = model.RoleMitarbeiter
	}

	token, err := s.generateToken(user.Username, role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        mapUser(user),
	}, nil
}

func (s *authService) generateToken(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) ConsentStatus(ctx context.Context, username string) (*dto.ConsentStatusResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.ConsentStatusResponse{}, nil
		}
		return nil, err
	}
	return &dto.ConsentStatusResponse{
		Given:    user.ConsentGiven,
		Name:     strings.TrimSpace(user.ConsentName),
		Date:     strings.TrimSpace(user.ConsentDate),
		FullName: user.FullName(),
	}, nil
}

func (s *authService) SetConsent(ctx context.Context, p model.Principal, req dto.SetConsentRequest) error {
	if model.NormalizeRole(p.Role) != model.RoleMitarbeiter {
		return forbiddenErr("Nicht erlaubt")
	}
	if !truthy(req.Yes) {
		return validationErr("Bitte bestätige die Einwilligung.")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return validationErr("Name ist erforderlich.")
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return s.repo.SetConsent(ctx, p.Username, name, date)
}

func (s *authService) RequireConsent(ctx context.Context, p model.Principal) error {
	if model.NormalizeRole(p.Role) != model.RoleMitarbeiter {
		return nil
	}
	user, err := s.repo.FindByUsername(ctx, p.Username)
	if err != nil {
		// when in doubt, lock
		return consentErr(consentRequiredMsg)
	}
	if !user.ConsentGiven {
		return consentErr(consentRequiredMsg)
	}
	return nil
}

// truthy accepts the historical frontend spellings of consent.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "ja", "yes":
			return true
		}
	case float64:
		return t == 1
	}
	return false
}

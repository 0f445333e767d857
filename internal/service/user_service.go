package service

import (
	"context"
	"errors"
	"strings"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"
	"einsatzplan/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bootstrapAccounts are excluded from every roster listing.
var bootstrapAccounts = []string{"AdminTest", "TestAdmin"}

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	List(ctx context.Context) ([]dto.UserResponse, error)
	ListPublic(ctx context.Context) ([]dto.PublicUserResponse, error)
	Update(ctx context.Context, username string, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, username string) error
	Rename(ctx context.Context, req dto.RenameUserRequest) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func mapUser(u *model.User) dto.UserResponse {
	email := ""
	if u.Email != nil {
		email = strings.TrimSpace(*u.Email)
	}
	return dto.UserResponse{
		Username:     u.Username,
		Role:         u.Role,
		Vorname:      u.Vorname,
		Nachname:     u.Nachname,
		Email:        email,
		S34a:         u.S34a,
		S34aArt:      u.S34aArt,
		Pschein:      u.Pschein,
		BewachID:     u.BewachID,
		Steuernummer: u.Steuernummer,
		Bsw:          u.Bsw,
		Sanitaeter:   u.Sanitaeter,
		Stundensatz:  u.Stundensatz,
		ConsentGiven: u.ConsentGiven,
		ConsentName:  u.ConsentName,
		ConsentDate:  u.ConsentDate,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return validationErr("username ist erforderlich")
	}
	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return conflictErr("Benutzername existiert schon")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return err
	}

	var email *string
	if e := strings.TrimSpace(req.Email); e != "" {
		email = &e
	}
	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         orDefault(req.Role, model.RoleMitarbeiter),
		Vorname:      req.Vorname,
		Nachname:     req.Nachname,
		Email:        email,
		S34a:         orDefault(req.S34a, "nein"),
		S34aArt:      model.NormalizeS34aArt(req.S34aArt),
		Pschein:      orDefault(req.Pschein, "nein"),
		BewachID:     req.BewachID,
		Steuernummer: req.Steuernummer,
		Bsw:          orDefault(req.Bsw, "nein"),
		Sanitaeter:   orDefault(req.Sanitaeter, "nein"),
		Stundensatz:  req.Stundensatz,
	}
	return s.repo.Create(ctx, user)
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx, bootstrapAccounts)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = mapUser(&users[i])
	}
	return resp, nil
}

func (s *userService) ListPublic(ctx context.Context) ([]dto.PublicUserResponse, error) {
	users, err := s.repo.List(ctx, bootstrapAccounts)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PublicUserResponse, len(users))
	for i, u := range users {
		resp[i] = dto.PublicUserResponse{
			Username: u.Username,
			Vorname:  u.Vorname,
			Nachname: u.Nachname,
		}
	}
	return resp, nil
}

func (s *userService) Update(ctx context.Context, username string, req dto.UpdateUserRequest) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("Benutzer nicht gefunden")
		}
		return err
	}

	if req.Vorname != nil {
		user.Vorname = *req.Vorname
	}
	if req.Nachname != nil {
		user.Nachname = *req.Nachname
	}
	if req.Email != nil {
		e := strings.TrimSpace(*req.Email)
		user.Email = &e
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.S34a != nil {
		user.S34a = *req.S34a
	}
	// A blank s34a_art keeps the prior value: saving the email must not
	// wipe the Sachkunde qualification.
	if req.S34aArt != nil {
		if v := model.NormalizeS34aArt(*req.S34aArt); v != "" {
			user.S34aArt = v
		}
	}
	if req.Pschein != nil {
		user.Pschein = *req.Pschein
	}
	if req.BewachID != nil {
		user.BewachID = *req.BewachID
	}
	if req.Steuernummer != nil {
		user.Steuernummer = *req.Steuernummer
	}
	if req.Bsw != nil {
		user.Bsw = *req.Bsw
	}
	if req.Sanitaeter != nil {
		user.Sanitaeter = *req.Sanitaeter
	}
	if req.Stundensatz != nil {
		user.Stundensatz = req.Stundensatz
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}

	return s.repo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

func (s *userService) Rename(ctx context.Context, req dto.RenameUserRequest) error {
	oldUsername := strings.TrimSpace(req.OldUsername)
	newUsername := strings.TrimSpace(req.NewUsername)
	if oldUsername == "" || newUsername == "" {
		return validationErr("old_username und new_username erforderlich")
	}

	if _, err := s.repo.FindByUsername(ctx, oldUsername); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("Alter Benutzer nicht gefunden")
		}
		return err
	}
	exists, err := s.repo.Exists(ctx, newUsername)
	if err != nil {
		return err
	}
	if exists {
		return conflictErr("Neuer Benutzername existiert schon")
	}

	return s.repo.Rename(ctx, oldUsername, newUsername)
}

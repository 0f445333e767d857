package service

import (
	"context"
	"testing"

	"einsatzplan/internal/config"
	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Vorname:      "Max",
		Nachname:     "Mustermann",
	}))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "max", "geheim", model.RoleMitarbeiter)
	svc := NewAuthService(repo, testConfig())

	t.Run("success issues bearer token", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "max", Password: "geheim"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, 8*3600, resp.ExpiresIn)
		assert.Equal(t, "max", resp.User.Username)
	})

	t.Run("wrong password fails uniformly", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "max", Password: "falsch"})
		require.Error(t, err)
		assert.Equal(t, "Login fehlgeschlagen", err.Error())
	})

	t.Run("unknown user fails with the same message", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "wer", Password: "geheim"})
		require.Error(t, err)
		assert.Equal(t, "Login fehlgeschlagen", err.Error())
	})
}

func TestSetConsent(t *testing.T) {
	ctx := context.Background()
	employee := model.Principal{Username: "max", Role: model.RoleMitarbeiter}

	newSvc := func(t *testing.T) (AuthService, *fakeUserRepo) {
		repo := newFakeUserRepo()
		seedUser(t, repo, "max", "geheim", model.RoleMitarbeiter)
		return NewAuthService(repo, testConfig()), repo
	}

	t.Run("manager roles may not consent", func(t *testing.T) {
		svc, _ := newSvc(t)
		err := svc.SetConsent(ctx, model.Principal{Username: "chef1", Role: model.RoleChef}, dto.SetConsentRequest{Yes: true, Name: "Chef"})
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindForbidden, svcErr.Kind)
	})

	t.Run("consent must be affirmed", func(t *testing.T) {
		svc, _ := newSvc(t)
		err := svc.SetConsent(ctx, employee, dto.SetConsentRequest{Yes: "nein", Name: "Max"})
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "Bitte bestätige die Einwilligung.", svcErr.Msg)
	})

	t.Run("name required", func(t *testing.T) {
		svc, _ := newSvc(t)
		err := svc.SetConsent(ctx, employee, dto.SetConsentRequest{Yes: true, Name: "  "})
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "Name ist erforderlich.", svcErr.Msg)
	})

	t.Run("frontend spellings of yes accepted", func(t *testing.T) {
		for _, yes := range []any{true, "1", "true", "ja", "YES", float64(1)} {
			svc, repo := newSvc(t)
			require.NoError(t, svc.SetConsent(ctx, employee, dto.SetConsentRequest{Yes: yes, Name: "Max Mustermann", Date: "2024-03-01"}))
			assert.True(t, repo.users["max"].ConsentGiven, "yes value %v", yes)
			assert.Equal(t, "Max Mustermann", repo.users["max"].ConsentName)
			assert.Equal(t, "2024-03-01", repo.users["max"].ConsentDate)
		}
	})

	t.Run("date defaults to today", func(t *testing.T) {
		svc, repo := newSvc(t)
		require.NoError(t, svc.SetConsent(ctx, employee, dto.SetConsentRequest{Yes: true, Name: "Max"}))
		assert.NotEmpty(t, repo.users["max"].ConsentDate)
	})
}

func TestRequireConsent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	seedUser(t, repo, "max", "geheim", model.RoleMitarbeiter)
	svc := NewAuthService(repo, testConfig())

	t.Run("managers pass without consent", func(t *testing.T) {
		assert.NoError(t, svc.RequireConsent(ctx, model.Principal{Username: "chef1", Role: model.RoleChef}))
	})

	t.Run("employee blocked before consent", func(t *testing.T) {
		err := svc.RequireConsent(ctx, model.Principal{Username: "max", Role: model.RoleMitarbeiter})
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindConsent, svcErr.Kind)
		assert.Equal(t, consentRequiredMsg, svcErr.Msg)
	})

	t.Run("employee passes after consent", func(t *testing.T) {
		require.NoError(t, svc.SetConsent(ctx, model.Principal{Username: "max", Role: model.RoleMitarbeiter}, dto.SetConsentRequest{Yes: true, Name: "Max"}))
		assert.NoError(t, svc.RequireConsent(ctx, model.Principal{Username: "max", Role: model.RoleMitarbeiter}))
	})

	t.Run("unknown user is locked", func(t *testing.T) {
		err := svc.RequireConsent(ctx, model.Principal{Username: "geist", Role: model.RoleMitarbeiter})
		assert.Error(t, err)
	})
}

func TestConsentStatusUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())
	resp, err := svc.ConsentStatus(context.Background(), "geist")
	require.NoError(t, err)
	assert.False(t, resp.Given)
	assert.Empty(t, resp.Name)
}

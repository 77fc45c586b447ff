// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livrestore/storefront/internal/models"
)

func TestRegisterCreatesIdentity(t *testing.T) {
	sess := newTestSession()
	svc := NewAuthService(testConfig())

	resp, err := svc.Register(sess, &RegisterRequest{
		Name:     "João Pereira",
		Email:    "joao@example.com",
		Password: "secret123",
		Address:  "Av. Getúlio Vargas, 500",
		Phone:    "(99) 97777-1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "João Pereira", resp.User.Name)
	assert.Equal(t, "joao@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NoError(t, resp.User.CheckPassword("secret123"))

	// Registration activates the identity and lands on home.
	require.NotNil(t, sess.User())
	assert.Equal(t, "João Pereira", sess.User().Name)
	assert.Equal(t, models.ViewHome, sess.CurrentView())
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(testConfig())

	_, err := svc.Register(newTestSession(), &RegisterRequest{
		Name:     "João",
		Email:    "not-an-email",
		Password: "123",
		Address:  "x",
		Phone:    "y",
	})
	assert.Error(t, err)
}

func TestLoginActivatesDemoProfile(t *testing.T) {
	sess := newTestSession()
	svc := NewAuthService(testConfig())

	// Login is a mock: any credentials pass, only the email is kept.
	resp, err := svc.Login(sess, &LoginRequest{
		Email:    "qualquer@example.com",
		Password: "whatever",
	})
	require.NoError(t, err)

	assert.Equal(t, demoUserID, resp.User.ID)
	assert.Equal(t, demoName, resp.User.Name)
	assert.Equal(t, demoAddress, resp.User.Address)
	assert.Equal(t, demoPhone, resp.User.Phone)
	assert.Equal(t, "qualquer@example.com", resp.User.Email)
	assert.Equal(t, models.ViewHome, sess.CurrentView())
}

func TestLogoutClearsIdentity(t *testing.T) {
	sess := newTestSession()
	svc := NewAuthService(testConfig())

	_, err := svc.Login(sess, &LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	require.NotNil(t, sess.User())

	svc.Logout(sess)

	assert.Nil(t, sess.User())
	assert.Equal(t, models.ViewHome, sess.CurrentView())
}

package auth

import (
	"YT_comment_export/infrastructure/token_manager"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string)      {}
func (nopLogger) Debug(string)        {}
func (nopLogger) Close()              {}

const clientSecret = `{"installed":{
	"client_id":"id.apps.googleusercontent.com",
	"client_secret":"secret",
	"auth_uri":"https://accounts.google.com/o/oauth2/auth",
	"token_uri":"https://oauth2.googleapis.com/token",
	"redirect_uris":["http://localhost"]
}}`

func TestClientOptionsAPIKey(t *testing.T) {
	svc := NewCredentialService(Credentials{APIKey: "key", ClientSecretFile: "ignored.json"}, nil, nopLogger{})

	opts, err := svc.ClientOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestClientOptionsNoCredential(t *testing.T) {
	svc := NewCredentialService(Credentials{}, nil, nopLogger{})

	_, err := svc.ClientOptions(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestClientOptionsStoredToken(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "client_secret.json")
	require.NoError(t, os.WriteFile(secretPath, []byte(clientSecret), 0600))

	tokens := token_manager.NewTokenService(filepath.Join(dir, "token.json"))
	require.NoError(t, tokens.SaveToken(&oauth2.Token{
		AccessToken:  "still-valid",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	}))

	svc := NewCredentialService(Credentials{ClientSecretFile: secretPath}, tokens, nopLogger{})

	opts, err := svc.ClientOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestClientOptionsMissingToken(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "client_secret.json")
	require.NoError(t, os.WriteFile(secretPath, []byte(clientSecret), 0600))

	tokens := token_manager.NewTokenService(filepath.Join(dir, "token.json"))
	svc := NewCredentialService(Credentials{ClientSecretFile: secretPath}, tokens, nopLogger{})

	_, err := svc.ClientOptions(context.Background())
	assert.Error(t, err)
}

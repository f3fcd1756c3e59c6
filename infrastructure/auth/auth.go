package auth

import (
	"YT_comment_export/infrastructure/token_manager"
	"YT_comment_export/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"os"
)

var ErrNoCredential = errors.New("nenhuma credencial configurada")

type Credentials struct {
	APIKey           string
	ClientSecretFile string
}

type credentialServiceImpl struct {
	creds        Credentials
	tokenService token_manager.TokenService
	log          ports.LoggerPort
}

// CredentialService turns the configured credential into client options for
// the YouTube service. An API key wins over a stored OAuth token.
type CredentialService interface {
	ClientOptions(ctx context.Context) ([]option.ClientOption, error)
}

func NewCredentialService(creds Credentials, tokenService token_manager.TokenService, logger ports.LoggerPort) CredentialService {
	return &credentialServiceImpl{
		creds:        creds,
		tokenService: tokenService,
		log:          logger,
	}
}

func (a *credentialServiceImpl) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if a.creds.APIKey != "" {
		a.log.Info("Using API key credential")
		return []option.ClientOption{option.WithAPIKey(a.creds.APIKey)}, nil
	}

	if a.creds.ClientSecretFile == "" {
		return nil, ErrNoCredential
	}

	tokenSource, err := a.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	a.log.Info("Using stored OAuth token credential")

	return []option.ClientOption{option.WithTokenSource(tokenSource)}, nil
}

func (a *credentialServiceImpl) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	config, err := loadConfig([]string{youtube.YoutubeReadonlyScope}, a.creds.ClientSecretFile)
	if err != nil {
		return nil, fmt.Errorf("não foi possível carregar a configuração do cliente: %w", err)
	}

	token, err := a.tokenService.LoadToken()
	if err != nil {
		return nil, fmt.Errorf("não foi possível carregar o token: %w", err)
	}

	source := config.TokenSource(ctx, token)
	refreshedToken, err := source.Token()
	if err != nil {
		_ = a.tokenService.DeleteLocalToken()
		return nil, fmt.Errorf("não foi possível atualizar o token: %w", err)
	}

	if refreshedToken.AccessToken != token.AccessToken || (refreshedToken.RefreshToken != "" && refreshedToken.RefreshToken != token.RefreshToken) {
		if errSave := a.tokenService.SaveToken(refreshedToken); errSave != nil {
			return nil, fmt.Errorf("não foi possível salvar o token atualizado: %w", errSave)
		}
		a.log.Info("OAuth token refreshed and saved")
	}

	return oauth2.ReuseTokenSource(refreshedToken, source), nil
}

func loadConfig(scopes []string, clienteSecretFilePath string) (*oauth2.Config, error) {
	b, err := os.ReadFile(clienteSecretFilePath)
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler o arquivo de segredo do cliente (%s): %w", clienteSecretFilePath, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("não foi possível analisar a configuração do cliente a partir do arquivo JSON: %w", err)
	}

	return config, nil
}

package token_manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"golang.org/x/oauth2"
	"os"
	"path/filepath"
)

var ErrInvalidToken = errors.New("token inválido: não contém AccessToken ou RefreshToken")

type tokenServiceImpl struct {
	TokenFilePath string
}

type TokenService interface {
	DeleteLocalToken() error
	LoadToken() (*oauth2.Token, error)
	SaveToken(token *oauth2.Token) error
}

func NewTokenService(tokenFilePath string) TokenService {
	if tokenFilePath == "" {
		tokenFilePath = "token.json"
	}

	return &tokenServiceImpl{
		TokenFilePath: tokenFilePath,
	}
}

func (t *tokenServiceImpl) DeleteLocalToken() error {
	if err := os.Remove(t.TokenFilePath); err != nil {
		return fmt.Errorf("não foi possível remover o arquivo de token: %w", err)
	}

	return nil
}

func (t *tokenServiceImpl) LoadToken() (*oauth2.Token, error) {
	file, err := os.Open(t.TokenFilePath)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir arquivo de token %s: %w", t.TokenFilePath, err)
	}
	defer file.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(file).Decode(token); err != nil {
		return nil, fmt.Errorf("falha ao decodificar token do arquivo %s: %w", t.TokenFilePath, err)
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, ErrInvalidToken
	}

	return token, nil
}

// SaveToken replaces the token file atomically (temp file + rename).
func (t *tokenServiceImpl) SaveToken(token *oauth2.Token) error {
	tmp, err := os.CreateTemp(filepath.Dir(t.TokenFilePath), ".token-*.json")
	if err != nil {
		return fmt.Errorf("não foi possível criar arquivo temporário para o token %s: %w", t.TokenFilePath, err)
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(token); err != nil {
		tmp.Close()
		return fmt.Errorf("falha ao codificar token: %w", err)
	}

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("falha ao ajustar permissões do token: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("falha ao fechar arquivo temporário do token: %w", err)
	}

	if err := os.Rename(tmp.Name(), t.TokenFilePath); err != nil {
		return fmt.Errorf("não foi possível salvar o arquivo de token %s: %w", t.TokenFilePath, err)
	}

	return nil
}

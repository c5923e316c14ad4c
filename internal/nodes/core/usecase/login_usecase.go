package usecase

import (
	"context"
	"encoding/base64"
	"errors"

	"node-metrics-dashboard/internal/nodes/core/ports"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("authentication failed, invalid username or password")
)

type LoginInput struct {
	Username string
	Password string
}

type LoginUseCase struct {
	reader ports.StatsReaderPort
}

func NewLoginUseCase(reader ports.StatsReaderPort) *LoginUseCase {
	return &LoginUseCase{reader: reader}
}

// Execute builds a Basic authorization token and returns it once the stats
// service accepts it. Nothing is stored server-side.
func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", ErrMissingCredentials
	}

	token := BasicToken(in.Username, in.Password)
	ok, err := uc.reader.CheckToken(ctx, token)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	return token, nil
}

func BasicToken(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	userName    string
	sessionID   string
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient)

	return &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			log.Printf("error closing connection: %v", err)
		}
	}()

	log.Printf("Connected to %s (type 'help' for commands)", a.config.ServerEndpointAddr)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sessionID != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}

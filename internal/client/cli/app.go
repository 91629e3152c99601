package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

type App struct {
	config         *config.Config
	accountService services.AccountService
	storeService   services.StoreService
	reader         *bufio.Reader
	out            io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.OpenSession(ctx, c.SessionDSN)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewStorefrontClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:         c,
		accountService: services.NewAccountService(apiClient, db),
		storeService:   services.NewStoreService(apiClient, db),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.accountService.Close(ctx)

	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")
	if err := a.accountService.Ping(ctx); err != nil {
		printlnFn("Warning:", err.Error())
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	s, err := a.accountService.Session(context.Background())
	return err == nil && s.UserID != ""
}

func (a *App) getStatus() string {
	s, err := a.accountService.Session(context.Background())
	if err != nil || s.UserID == "" {
		return "(guest)"
	}
	if s.StoreID == "" {
		return "(" + s.Email + ")"
	}
	return "(" + s.Email + " store " + s.StoreID + ")"
}

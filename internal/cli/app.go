package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/quickchat/internal/accounts"
	"github.com/dmitrijs2005/quickchat/internal/chat"
	"github.com/dmitrijs2005/quickchat/internal/config"
	"github.com/dmitrijs2005/quickchat/internal/filex"
	"github.com/dmitrijs2005/quickchat/internal/logging"
	"github.com/dmitrijs2005/quickchat/internal/messages"
	"github.com/dmitrijs2005/quickchat/internal/records"
	"github.com/dmitrijs2005/quickchat/internal/storage"
)

// executor is the part of chat.Core the handlers use.
type executor interface {
	Execute(ctx context.Context, cmd chat.Command) chat.Result
	LoggedIn() bool
	User() string
}

type App struct {
	config *config.Config
	core   executor
	repo   storage.Repository
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens storage according to c, restores the saved outbox and builds
// the chat core. The logger is tagged with a fresh session id.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, c.LogFormat).With("session", uuid.NewString())

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	var (
		repo  storage.Repository
		store accounts.Store
	)
	switch c.Storage {
	case config.StorageSQLite:
		dsn := c.DatabaseFile
		if !filepath.IsAbs(dsn) {
			dsn = filepath.Join(dataDir, dsn)
		}
		db, err := storage.InitDatabase(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		repo = storage.NewSQLiteRepository(db)
		store = accounts.NewSQLiteStore(db)
	default:
		jr, err := storage.NewJSONRepository(dataDir)
		if err != nil {
			return nil, err
		}
		repo = jr
		store = accounts.NewMemoryStore()
	}

	outbox := messages.NewOutbox()
	storage.LoadOutbox(ctx, repo, outbox, logger)

	recs := records.NewStore()
	if c.SeedRecords {
		recs.Populate()
	}

	core := chat.NewCore(chat.Deps{
		Accounts:    accounts.NewService(store),
		Outbox:      outbox,
		Records:     recs,
		Repo:        repo,
		Logger:      logger,
		RecordsFile: c.RecordsFile,
	})

	logger.Info(ctx, "app started", "storage", c.Storage, "data_dir", dataDir, "sent", outbox.TotalSent())

	return &App{
		config: c,
		core:   core,
		repo:   repo,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and releases storage when it ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	printlnFn("Welcome to QuickChat (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close(ctx context.Context) {
	if a.repo == nil {
		return
	}
	if err := a.repo.Close(); err != nil {
		a.logger.Warn(ctx, "failed to close storage", "err", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.core.LoggedIn()
}

func (a *App) status() string {
	if u := a.core.User(); u != "" {
		return u
	}
	return "guest"
}

// run executes cmd and prints the result text.
func (a *App) run(ctx context.Context, cmd chat.Command) chat.Result {
	res := a.core.Execute(ctx, cmd)
	printlnFn(res.Text)
	return res
}

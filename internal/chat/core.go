package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/quickchat/internal/accounts"
	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/dmitrijs2005/quickchat/internal/logging"
	"github.com/dmitrijs2005/quickchat/internal/messages"
	"github.com/dmitrijs2005/quickchat/internal/records"
	"github.com/dmitrijs2005/quickchat/internal/storage"
)

const (
	MsgNotLoggedIn   = "Please log in first."
	MsgLoggedOut     = "Logged out."
	MsgUnknown       = "Unknown command."
	MsgSaveFailed    = "Warning: messages could not be saved."
	MsgNoSent        = "No sent messages found."
	MsgNoLongest     = "No sent messages available."
	msgPopulatedFmt  = "Arrays populated with %d test messages."
	msgTotalFmt      = "Total messages sent: %d"
	msgNotFoundIDFmt = "No message found with ID: %s"
	msgNoRecipFmt    = "No messages found for recipient: %s"
	msgNotFoundHFmt  = "No message found with hash: %s"
)

const senderPreviewLength = 25

// Deps are the collaborators a Core works with.
type Deps struct {
	Accounts    *accounts.Service
	Outbox      *messages.Outbox
	Records     *records.Store
	Repo        storage.Repository
	Logger      logging.Logger
	RecordsFile string
}

// Core owns the session state: who is logged in and the next message number.
type Core struct {
	accounts    *accounts.Service
	outbox      *messages.Outbox
	records     *records.Store
	repo        storage.Repository
	logger      logging.Logger
	recordsFile string

	mu   sync.Mutex
	user string
	seq  int
}

func NewCore(d Deps) *Core {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Outbox == nil {
		d.Outbox = messages.NewOutbox()
	}
	if d.Records == nil {
		d.Records = records.NewStore()
	}
	if d.RecordsFile == "" {
		d.RecordsFile = storage.DefaultRecordsFile
	}
	return &Core{
		accounts:    d.Accounts,
		outbox:      d.Outbox,
		records:     d.Records,
		repo:        d.Repo,
		logger:      d.Logger,
		recordsFile: d.RecordsFile,
	}
}

// LoggedIn reports whether a session is active.
func (c *Core) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != ""
}

// User returns the logged-in username, or "".
func (c *Core) User() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Execute runs cmd and describes the outcome.
func (c *Core) Execute(ctx context.Context, cmd Command) Result {
	if requiresLogin[cmd.Kind] && !c.LoggedIn() {
		return Result{Text: MsgNotLoggedIn, Err: common.ErrorNotLoggedIn}
	}

	c.logger.Debug(ctx, "execute", "kind", string(cmd.Kind))

	switch cmd.Kind {
	case KindRegister:
		return c.register(ctx, cmd)
	case KindLogin:
		return c.login(ctx, cmd)
	case KindLogout:
		c.mu.Lock()
		c.user = ""
		c.mu.Unlock()
		return okResult(MsgLoggedOut)
	case KindCompose:
		return c.compose(ctx, cmd)
	case KindSent:
		return okResult(c.outbox.PrintMessages())
	case KindTotal:
		return okResult(fmt.Sprintf(msgTotalFmt, c.outbox.TotalSent()))
	case KindPopulate:
		c.records.Populate()
		return okResult(fmt.Sprintf(msgPopulatedFmt, c.records.Len()))
	case KindSenders:
		return c.senders()
	case KindLongest:
		return c.longest()
	case KindFind:
		return c.find(cmd.ID)
	case KindRecipient:
		return c.byRecipient(cmd.Recipient)
	case KindDelete:
		return c.delete(ctx, cmd.Hash)
	case KindReport:
		return okResult(c.records.SentReport())
	case KindImport:
		return c.importRecords(ctx, cmd.Path)
	case KindStats:
		return okResult(c.records.Stats().String())
	default:
		return failResult(MsgUnknown)
	}
}

func (c *Core) register(ctx context.Context, cmd Command) Result {
	res, err := c.accounts.Register(ctx, cmd.Username, cmd.Password, cmd.Phone, cmd.FirstName, cmd.LastName)
	if err != nil {
		c.logger.Error(ctx, "register failed", "err", err)
		return errResult("Registration could not be saved.", err)
	}
	return Result{OK: res.OK, Text: res.Message}
}

func (c *Core) login(ctx context.Context, cmd Command) Result {
	res, err := c.accounts.Login(ctx, cmd.Username, cmd.Password)
	if err != nil {
		c.logger.Error(ctx, "login failed", "err", err)
		return errResult("Login is unavailable right now.", err)
	}
	if res.OK() {
		c.mu.Lock()
		c.user = cmd.Username
		c.mu.Unlock()
		c.logger.Info(ctx, "user logged in", "user", cmd.Username)
	}
	return Result{OK: res.OK(), Text: res.Message}
}

// compose checks recipient and length, builds the message and applies the
// disposition. The message number advances for every message built.
func (c *Core) compose(ctx context.Context, cmd Command) Result {
	c.mu.Lock()
	m := messages.New(cmd.Recipient, cmd.Content, c.seq)
	c.mu.Unlock()

	if m.CheckRecipientCell() == 0 {
		return failResult(m.RecipientStatus())
	}
	if status := m.ValidateLength(); status != messages.MsgContentReady {
		return failResult(status)
	}

	c.mu.Lock()
	c.seq++
	c.mu.Unlock()

	text := c.outbox.Apply(cmd.Disposition, m)
	res := Result{OK: text != messages.MsgCancelled, Text: text, Message: m}

	if cmd.Disposition == messages.DispositionSend || cmd.Disposition == messages.DispositionStore {
		if err := c.persist(ctx); err != nil {
			res.Err = err
			res.Text += "\n" + MsgSaveFailed
		}
	}
	return res
}

func (c *Core) persist(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}
	if err := storage.SaveOutbox(ctx, c.repo, c.outbox); err != nil {
		c.logger.Warn(ctx, "failed to save messages", "err", err)
		return err
	}
	return nil
}

func (c *Core) senders() Result {
	list := c.records.SentSummaries()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-12s %-20s %-30s\n", "Sender", "Recipient", "Message Preview")
	sb.WriteString(strings.Repeat("-", 60))
	if len(list) == 0 {
		sb.WriteString("\n" + MsgNoSent)
		return failResult(sb.String())
	}
	for _, s := range list {
		fmt.Fprintf(&sb, "\n%-12s %-20s %-30s", s.Sender, s.Recipient, records.Preview(s.Content, senderPreviewLength))
	}
	return okResult(sb.String())
}

func (c *Core) longest() Result {
	r, ok := c.records.LongestSent()
	if !ok {
		return failResult(MsgNoLongest)
	}
	text := fmt.Sprintf("Message: %s\nLength: %d characters\nRecipient: %s\nMessage ID: %s\nMessage Hash: %s",
		r.Content, len([]rune(r.Content)), r.Recipient, r.ID, r.Hash)
	return Result{OK: true, Text: text, Records: []records.Record{r}}
}

func (c *Core) find(id string) Result {
	r, err := c.records.FindByID(id)
	if errors.Is(err, common.ErrorNotFound) {
		return failResult(fmt.Sprintf(msgNotFoundIDFmt, id))
	}
	text := fmt.Sprintf("Recipient: %s\nMessage: %s\nStatus: %s\nHash: %s\nSender: %s",
		r.Recipient, r.Content, r.Flag, r.Hash, r.Sender)
	return Result{OK: true, Text: text, Records: []records.Record{r}}
}

func (c *Core) byRecipient(recipient string) Result {
	list := c.records.FindAllByRecipient(recipient)
	if len(list) == 0 {
		return failResult(fmt.Sprintf(msgNoRecipFmt, recipient))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d message(s) for %s:", len(list), recipient)
	for i, r := range list {
		fmt.Fprintf(&sb, "\n%d. %q [%s]", i+1, r.Content, r.Flag)
	}
	return Result{OK: true, Text: sb.String(), Records: list}
}

func (c *Core) delete(ctx context.Context, hash string) Result {
	r, err := c.records.DeleteByHash(hash)
	if errors.Is(err, common.ErrorNotFound) {
		return failResult(fmt.Sprintf(msgNotFoundHFmt, hash))
	}
	c.logger.Info(ctx, "record deleted", "hash", hash)
	text := fmt.Sprintf("Message %q successfully deleted.\nRecipient: %s\nHash: %s\nStatus: %s",
		r.Content, r.Recipient, r.Hash, r.Flag)
	return Result{OK: true, Text: text, Records: []records.Record{r}}
}

func (c *Core) importRecords(ctx context.Context, path string) Result {
	if path == "" {
		path = c.recordsFile
	}
	list, err := storage.LoadRecords(path)
	if err != nil {
		c.logger.Warn(ctx, "failed to load records", "path", path, "err", err)
		return errResult(fmt.Sprintf("Could not load messages from %s.", path), err)
	}

	res := c.records.Import(list)
	for _, e := range res.Errors {
		c.logger.Warn(ctx, "record skipped", "path", path, "err", e)
	}
	text := fmt.Sprintf("Loaded %d messages from %s.", res.Added, path)
	if res.Skipped > 0 {
		text += fmt.Sprintf(" Skipped %d.", res.Skipped)
	}
	return okResult(text)
}

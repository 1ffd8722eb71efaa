// Package console is the terminal front-end of the chat client.
// It only turns user input into service calls and renders state; it never
// writes to the store directly.
package console

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/repositories"
	"boozbaal-chat/runtime/workers"
	"boozbaal-chat/services"
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ChatFactory builds the chat service of a freshly logged-in user.
type ChatFactory func(user domain.User) services.IChatService

type Console struct {
	out      *syncWriter
	log      *slog.Logger
	login    services.ILoginService
	newChat  ChatFactory
	sessions repositories.ISessionRepository
	sup      *workers.Supervisor

	chat      services.IChatService
	stopTabs  context.CancelFunc
	view      *sessionView
	suggestWG sync.WaitGroup
}

func New(out io.Writer, log *slog.Logger,
	login services.ILoginService, newChat ChatFactory,
	sessions repositories.ISessionRepository, sup *workers.Supervisor) *Console {
	return &Console{
		out:      &syncWriter{w: out},
		log:      log,
		login:    login,
		newChat:  newChat,
		sessions: sessions,
		sup:      sup,
	}
}

// Run reads commands from in until EOF, /quit or ctx cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	defer c.dispose()

	if user, ok := c.login.Current(); ok {
		c.start(ctx, user)
	} else {
		c.renderLoginPrompt()
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case line := <-lines:
			if quit := c.Handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// Handle executes a single input line and reports whether the user quit.
func (c *Console) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		c.send(line)
		return false
	}

	name, args, _ := strings.Cut(line[1:], " ")
	cmd, ok := commands[strings.ToLower(name)]
	if !ok {
		c.printf("Unknown command /%s, type /help\n", name)
		return false
	}
	if cmd.needsUser && c.chat == nil {
		c.printf("Please log in first: /login <name> <email>\n")
		return false
	}
	return cmd.run(ctx, c, strings.TrimSpace(args))
}

// Wait blocks until pending suggestion requests have returned.
func (c *Console) Wait() {
	c.suggestWG.Wait()
}

func (c *Console) start(ctx context.Context, user domain.User) {
	c.chat = c.newChat(user)
	c.stopTabs = c.sup.Spawn(ctx, c.chat.TabWatcher())
	c.printf("Logged in as %s <%s>\n", user.Name, user.Email)
	c.renderTabs()
	c.mount(ctx)
}

// mount attaches the view to the active chat, disposing the previous one.
func (c *Console) mount(ctx context.Context) {
	chatID, ok := c.chat.Active()
	if c.view != nil {
		if ok && c.view.chatID == chatID {
			return
		}
		c.view.dispose()
		c.view = nil
	}
	if !ok {
		c.renderWelcome()
		return
	}
	c.view = newSessionView(c, chatID)
	c.view.stop = c.sup.Spawn(ctx, c.view.value)
}

func (c *Console) dispose() {
	if c.view != nil {
		c.view.dispose()
		c.view = nil
	}
	if c.stopTabs != nil {
		c.stopTabs()
		c.stopTabs = nil
	}
}

func (c *Console) send(content string) {
	if c.chat == nil {
		c.printf("Please log in first: /login <name> <email>\n")
		return
	}
	if _, err := c.chat.Send(content); err != nil {
		c.printError(err)
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

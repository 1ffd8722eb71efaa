package console

import (
	"boozbaal-chat/domain"
	"context"
	"strconv"
	"strings"
)

type command struct {
	usage     string
	help      string
	needsUser bool
	run       func(ctx context.Context, c *Console, args string) bool
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"login":   {"/login <name> <email>", "identify yourself on this device", false, cmdLogin},
		"whoami":  {"/whoami", "show the current user", true, cmdWhoami},
		"logout":  {"/logout", "forget the current user", true, cmdLogout},
		"new":     {"/new <name> <email>", "start a chat and get its invitation link", true, cmdNew},
		"open":    {"/open <link|chat id>", "open a chat from an invitation link", true, cmdOpen},
		"tabs":    {"/tabs", "list open chats", true, cmdTabs},
		"switch":  {"/switch <#|chat id>", "switch to another open chat", true, cmdSwitch},
		"close":   {"/close [#|chat id]", "close a tab (the active one by default)", true, cmdClose},
		"link":    {"/link", "show the invitation link of the active chat", true, cmdLink},
		"history": {"/history", "print the active chat again", true, cmdHistory},
		"suggest": {"/suggest", "ask the AI for a reply suggestion", true, cmdSuggest},
		"draft":   {"/draft [text]", "show or replace the draft", true, cmdDraft},
		"emoji":   {"/emoji [#]", "list emojis or add one to the draft", true, cmdEmoji},
		"send":    {"/send", "send the draft", true, cmdSend},
		"help":    {"/help", "list commands", false, cmdHelp},
		"quit":    {"/quit", "leave", false, cmdQuit},
	}
}

var helpOrder = []string{
	"login", "whoami", "logout", "new", "open", "tabs", "switch", "close",
	"link", "history", "suggest", "draft", "emoji", "send", "help", "quit",
}

// splitIdentity reads "<name...> <email>": the last word is the email.
func splitIdentity(args string) (string, string) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return args, ""
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}

func cmdLogin(ctx context.Context, c *Console, args string) bool {
	if c.chat != nil {
		c.printf("Already logged in as %s, /logout first\n", c.chat.User().Name)
		return false
	}
	name, email := splitIdentity(args)
	user, err := c.login.Login(name, email)
	if err != nil {
		c.printError(err)
		return false
	}
	c.start(ctx, user)
	return false
}

func cmdWhoami(_ context.Context, c *Console, _ string) bool {
	user := c.chat.User()
	c.printf("%s <%s> (%s)\n", user.Name, user.Email, user.ID)
	return false
}

func cmdLogout(_ context.Context, c *Console, _ string) bool {
	c.dispose()
	c.login.Logout()
	c.chat = nil
	c.renderLoginPrompt()
	return false
}

func cmdNew(ctx context.Context, c *Console, args string) bool {
	name, email := splitIdentity(args)
	_, link, err := c.chat.CreateChat(name, email)
	if err != nil {
		c.printError(err)
		return false
	}
	c.printf("Invitation link ready! Share it with %s:\n%s\n", name, link)
	c.mount(ctx)
	return false
}

func cmdOpen(ctx context.Context, c *Console, args string) bool {
	if _, err := c.chat.Navigate(args); err != nil {
		c.printError(err)
		return false
	}
	c.mount(ctx)
	return false
}

func cmdTabs(_ context.Context, c *Console, _ string) bool {
	c.renderTabs()
	return false
}

func cmdSwitch(ctx context.Context, c *Console, args string) bool {
	return cmdOpen(ctx, c, c.resolveTab(args))
}

func cmdClose(ctx context.Context, c *Console, args string) bool {
	chatID, ok := c.chat.Active()
	if args != "" {
		chatID, ok = c.resolveTab(args), true
	}
	if !ok {
		c.printf("No chat to close\n")
		return false
	}
	c.chat.CloseTab(chatID)
	c.mount(ctx)
	return false
}

func cmdLink(_ context.Context, c *Console, _ string) bool {
	chatID, ok := c.chat.Active()
	if !ok {
		c.printf("No active chat\n")
		return false
	}
	c.printf("%s\n", c.chat.InviteLink(chatID))
	return false
}

func cmdHistory(_ context.Context, c *Console, _ string) bool {
	if c.view == nil {
		c.renderWelcome()
		return false
	}
	c.view.redraw()
	return false
}

// cmdSuggest runs the request in the background; the control stays
// disabled until the answer comes back.
func cmdSuggest(ctx context.Context, c *Console, _ string) bool {
	if c.chat.Composer().Pending() {
		c.printf("A suggestion is already on its way\n")
		return false
	}
	chat := c.chat
	c.printf("Thinking...\n")
	c.suggestWG.Add(1)
	go func() {
		defer c.suggestWG.Done()
		text, applied, err := chat.Suggest(ctx)
		if err != nil {
			c.printError(err)
			return
		}
		if applied {
			c.printf("Suggestion: %s\n(/send to send it, /draft <text> to change it)\n", text)
		}
	}()
	return false
}

func cmdDraft(_ context.Context, c *Console, args string) bool {
	if args != "" {
		c.chat.Composer().SetDraft(args)
	}
	c.printf("Draft: %s\n", c.chat.Composer().Draft())
	return false
}

func cmdEmoji(_ context.Context, c *Console, args string) bool {
	if args == "" {
		c.renderEmojis()
		return false
	}
	position, err := strconv.Atoi(args)
	emoji, ok := domain.EmojiAt(position)
	if err != nil || !ok {
		c.printf("Pick an emoji between 1 and %d\n", len(domain.Emojis))
		return false
	}
	c.chat.Composer().Append(emoji)
	c.printf("Draft: %s\n", c.chat.Composer().Draft())
	return false
}

func cmdSend(_ context.Context, c *Console, _ string) bool {
	if _, err := c.chat.SendDraft(); err != nil {
		c.printError(err)
	}
	return false
}

func cmdHelp(_ context.Context, c *Console, _ string) bool {
	for _, name := range helpOrder {
		cmd := commands[name]
		c.printf("  %-24s %s\n", cmd.usage, cmd.help)
	}
	c.printf("  %-24s %s\n", "<text>", "send a message to the active chat")
	return false
}

func cmdQuit(_ context.Context, _ *Console, _ string) bool {
	return true
}

// resolveTab turns a 1-based tab position into its chat id.
func (c *Console) resolveTab(args string) string {
	position, err := strconv.Atoi(args)
	if err != nil {
		return args
	}
	tabs := c.chat.Tabs()
	if position < 1 || position > len(tabs) {
		return args
	}
	return tabs[position-1].ChatID
}

package console

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/state"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var (
	selfBubble  = color.New(color.FgWhite, color.BgBlue)
	otherBubble = color.New(color.FgBlack, color.BgWhite)
	headerStyle = color.New(color.FgGreen, color.OpBold)
)

// sessionView renders one chat and follows its record in the store.
// Only messages not yet printed are written on each change.
type sessionView struct {
	console *Console
	chatID  string
	value   *state.Value[*domain.ChatSession]
	stop    context.CancelFunc

	mu           sync.Mutex
	rendered     int
	headerShown  bool
	missingShown bool
	disposed     bool
}

func newSessionView(c *Console, chatID string) *sessionView {
	v := &sessionView{console: c, chatID: chatID, value: c.sessions.Session(chatID)}
	v.value.OnChange(v.onChange)
	return v
}

func (v *sessionView) onChange(session *domain.ChatSession) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}
	if session == nil {
		if !v.missingShown {
			v.console.printf("Loading chat or chat not found...\n")
			v.missingShown = true
		}
		return
	}
	if !v.headerShown {
		v.console.renderHeader(*session)
		v.headerShown = true
	}
	if len(session.Messages) < v.rendered {
		v.rendered = len(session.Messages)
	}
	for _, message := range session.Messages[v.rendered:] {
		v.console.renderMessage(*session, message)
	}
	v.rendered = len(session.Messages)
}

// redraw prints the whole chat again.
func (v *sessionView) redraw() {
	v.mu.Lock()
	v.rendered = 0
	v.headerShown = false
	v.missingShown = false
	v.mu.Unlock()
	v.onChange(v.value.Get())
}

func (v *sessionView) dispose() {
	v.mu.Lock()
	v.disposed = true
	v.mu.Unlock()
	if v.stop != nil {
		v.stop()
	}
}

func (c *Console) renderLoginPrompt() {
	c.printf("%s\n", headerStyle.Render("Welcome to Boozbaal Chat"))
	c.printf("Please enter your details to start chatting: /login <name> <email>\n")
}

func (c *Console) renderWelcome() {
	c.printf("%s\n", headerStyle.Render("Welcome to Boozbaal Chat"))
	c.printf("Select a chat or start a new one: /new <name> <email>\n")
}

func (c *Console) renderHeader(session domain.ChatSession) {
	other, ok := session.OtherParticipant(c.chat.User().ID)
	name, email := "...", ""
	if ok {
		name, email = other.Name, other.Email
	}
	c.printf("%s\n", headerStyle.Render("Chat with "+name))
	if email != "" {
		c.printf("%s\n", color.FgGray.Render(email))
	}
}

func (c *Console) renderMessage(session domain.ChatSession, message domain.Message) {
	at := message.At().Format("15:04")
	if message.SenderID == c.chat.User().ID {
		c.printf("%s %s\n", strings.Repeat(" ", 20)+selfBubble.Render(" "+message.Content+" "), color.FgGray.Render(at))
		return
	}
	sender := "?"
	for _, p := range session.Participants {
		if p.ID == message.SenderID {
			sender = p.Name
		}
	}
	c.printf("%s %s\n", otherBubble.Render(" "+sender+": "+message.Content+" "), color.FgGray.Render(at))
}

// renderTabs prints the tab bar, the active tab is marked with '*'.
func (c *Console) renderTabs() {
	tabs := c.chat.Tabs()
	if len(tabs) == 0 {
		c.printf("No open chats.\n")
		return
	}
	active, _ := c.chat.Active()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"", "#", "With", "Email", "Chat"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for i, tab := range tabs {
		marker := ""
		if tab.ChatID == active {
			marker = "*"
		}
		table.Append([]string{marker, strconv.Itoa(i + 1), tab.Participant.Name, tab.Participant.Email, tab.ChatID})
	}
	table.Render()
}

func (c *Console) renderEmojis() {
	var b strings.Builder
	for i, emoji := range domain.Emojis {
		fmt.Fprintf(&b, "%2d %s  ", i+1, emoji)
		if (i+1)%5 == 0 {
			b.WriteString("\n")
		}
	}
	c.printf("%s", b.String())
}

func (c *Console) printError(err error) {
	c.printf("%s\n", color.FgRed.Render(err.Error()))
}

package ai

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
)

const MaxReplyWords = 15

// BuildPrompt asks for a short, casual reply to lastMessage.
// When the message is reliably written in another language than English,
// the model is asked to answer in that language.
func BuildPrompt(lastMessage string) string {
	var b strings.Builder
	b.WriteString("You are in a text message conversation. ")
	fmt.Fprintf(&b, "The last message received was: %q.\n", lastMessage)
	fmt.Fprintf(&b, "Suggest a short, casual, and friendly reply. The reply should not be more than %d words.\n", MaxReplyWords)
	b.WriteString("Do not add any quotation marks around your suggested reply.")
	if lang, ok := DetectLanguage(lastMessage); ok {
		fmt.Fprintf(&b, "\nReply in %s.", lang)
	}
	return b.String()
}

// DetectLanguage returns the English name of the language of text when the
// detection is reliable and the language is not English.
func DetectLanguage(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() || info.Lang == whatlanggo.Eng {
		return "", false
	}
	return info.Lang.String(), true
}

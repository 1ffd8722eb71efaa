package domain

// Emojis is the palette offered by the composer.
var Emojis = []string{
	"😀", "😂", "😍", "🤔", "👍", "🙏", "❤️", "🔥", "🎉", "👋",
	"😊", "😭", "😎", "😴", "👎", "🙌", "💔", "💯", "🚀", "👌",
}

// EmojiAt returns the emoji at a 1-based palette position.
func EmojiAt(position int) (string, bool) {
	if position < 1 || position > len(Emojis) {
		return "", false
	}
	return Emojis[position-1], true
}

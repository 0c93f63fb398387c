package model

// Binding ties an opaque webhook token to a Telegram chat.
type Binding struct {
	Token  string // UUIDv4, embedded in the webhook URL
	ChatID int64  // Telegram chat id
}

// State is the durable record owned by the registry.
type State struct {
	BaseURL  string           // webhook URL template, "{uuid}" is replaced with the token
	BotToken string           // Telegram Bot API credential
	Chats    map[string]int64 // token -> chat id
}

// Clone returns a deep copy of s so callers can mutate it without touching s.
func (s State) Clone() State {
	chats := make(map[string]int64, len(s.Chats))
	for token, chatID := range s.Chats {
		chats[token] = chatID
	}
	return State{
		BaseURL:  s.BaseURL,
		BotToken: s.BotToken,
		Chats:    chats,
	}
}

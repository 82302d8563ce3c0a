package tl

const (
	OpChatReactionsNone = "chatReactionsNone"
	OpChatReactionsAll  = "chatReactionsAll"
	OpChatReactionsSome = "chatReactionsSome"
)

// ChatReactions is the closed wire union describing which reactions a chat
// accepts.
type ChatReactions interface {
	Object
	isChatReactions()
}

var (
	_ ChatReactions = ChatReactionsNone{}
	_ ChatReactions = ChatReactionsAll{}
	_ ChatReactions = ChatReactionsSome{}
	_ ChatReactions = Unknown{}
)

type ChatReactionsNone struct{}

func (ChatReactionsNone) Op() string {
	return OpChatReactionsNone
}

func (ChatReactionsNone) isChatReactions() {}

type ChatReactionsAll struct {
	AllowCustom bool `mapstructure:"allow_custom" structs:"allow_custom"`
}

func (ChatReactionsAll) Op() string {
	return OpChatReactionsAll
}

func (ChatReactionsAll) isChatReactions() {}

type ChatReactionsSome struct {
	Reactions []Reaction
}

func (ChatReactionsSome) Op() string {
	return OpChatReactionsSome
}

func (ChatReactionsSome) isChatReactions() {}

package tl

const (
	OpReactionEmpty       = "reactionEmpty"
	OpReactionEmoji       = "reactionEmoji"
	OpReactionCustomEmoji = "reactionCustomEmoji"
	OpReactionPaid        = "reactionPaid"
	OpReactionCount       = "reactionCount"
	OpMessageReactions    = "messageReactions"
)

// Reaction is the closed wire union of reactions.
type Reaction interface {
	Object
	isReaction()
}

var (
	_ Reaction = ReactionEmpty{}
	_ Reaction = ReactionEmoji{}
	_ Reaction = ReactionCustomEmoji{}
	_ Reaction = ReactionPaid{}
	_ Reaction = Unknown{}
)

// REACTION EMPTY
type ReactionEmpty struct{}

func (ReactionEmpty) Op() string {
	return OpReactionEmpty
}

func (ReactionEmpty) isReaction() {}

// REACTION EMOJI
type ReactionEmoji struct {
	Emoticon string `mapstructure:"emoticon" structs:"emoticon"`
}

func (ReactionEmoji) Op() string {
	return OpReactionEmoji
}

func (ReactionEmoji) isReaction() {}

// REACTION CUSTOM EMOJI
type ReactionCustomEmoji struct {
	DocumentID int64 `mapstructure:"document_id" structs:"document_id"`
}

func (ReactionCustomEmoji) Op() string {
	return OpReactionCustomEmoji
}

func (ReactionCustomEmoji) isReaction() {}

// REACTION PAID
type ReactionPaid struct{}

func (ReactionPaid) Op() string {
	return OpReactionPaid
}

func (ReactionPaid) isReaction() {}

// ReactionCount aggregates one reaction over all users of a message.
// ChosenOrder is nil unless the current user picked this reaction.
type ReactionCount struct {
	ChosenOrder *int32
	Reaction    Reaction
	Count       int32
}

func (ReactionCount) Op() string {
	return OpReactionCount
}

type MessageReactions struct {
	Min             bool
	CanSeeList      bool
	ReactionsAsTags bool
	Results         []ReactionCount
}

func (MessageReactions) Op() string {
	return OpMessageReactions
}

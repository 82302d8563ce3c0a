package model

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/questx-lab/reactionmap/pkg/enum"
	"github.com/questx-lab/reactionmap/pkg/errorx"
	"github.com/questx-lab/reactionmap/pkg/tl"
	"github.com/questx-lab/reactionmap/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type ReactionKind string

var (
	ReactionKindEmoji       = enum.New(ReactionKind("emoji"), "emoji")
	ReactionKindCustomEmoji = enum.New(ReactionKind("custom_emoji"), "custom_emoji")
	ReactionKindPaid        = enum.New(ReactionKind("paid"), "paid")
)

// ReactionType describes what kind of reaction something is. The concrete
// variants are ReactionTypeEmoji, ReactionTypeCustomEmoji and ReactionTypePaid;
// a missing reaction is a nil ReactionType.
type ReactionType interface {
	Kind() ReactionKind

	// Write returns the wire constructor this value was decoded from.
	Write(ctx context.Context) (tl.Reaction, error)
}

var (
	_ ReactionType = ReactionTypeEmoji{}
	_ ReactionType = ReactionTypeCustomEmoji{}
	_ ReactionType = ReactionTypePaid{}
	_ ReactionType = UnimplementedReactionType{}
)

// UnimplementedReactionType is the base form of a reaction type. It has no
// wire counterpart, so Write always fails.
type UnimplementedReactionType struct{}

func (UnimplementedReactionType) Kind() ReactionKind {
	return ""
}

func (UnimplementedReactionType) Write(ctx context.Context) (tl.Reaction, error) {
	xcontext.Logger(ctx).Errorf("Write called on a reaction type without wire form")
	return nil, errorx.New(errorx.NotImplemented, "reaction type has no wire form")
}

type ReactionTypeEmoji struct {
	Emoji string
}

func (ReactionTypeEmoji) Kind() ReactionKind {
	return ReactionKindEmoji
}

func (t ReactionTypeEmoji) Write(context.Context) (tl.Reaction, error) {
	return tl.ReactionEmoji{Emoticon: t.Emoji}, nil
}

func (t ReactionTypeEmoji) MarshalJSON() ([]byte, error) {
	return json.Marshal(reactionTypeJSON{Type: string(t.Kind()), Emoji: t.Emoji})
}

type ReactionTypeCustomEmoji struct {
	CustomEmojiID int64
}

func (ReactionTypeCustomEmoji) Kind() ReactionKind {
	return ReactionKindCustomEmoji
}

func (t ReactionTypeCustomEmoji) Write(context.Context) (tl.Reaction, error) {
	return tl.ReactionCustomEmoji{DocumentID: t.CustomEmojiID}, nil
}

func (t ReactionTypeCustomEmoji) MarshalJSON() ([]byte, error) {
	return json.Marshal(reactionTypeJSON{
		Type:          string(t.Kind()),
		CustomEmojiID: strconv.FormatInt(t.CustomEmojiID, 10),
	})
}

// ReactionTypePaid is the paid reaction of a channel. It has no payload.
type ReactionTypePaid struct{}

func (ReactionTypePaid) Kind() ReactionKind {
	return ReactionKindPaid
}

func (ReactionTypePaid) Write(context.Context) (tl.Reaction, error) {
	return tl.ReactionPaid{}, nil
}

func (t ReactionTypePaid) MarshalJSON() ([]byte, error) {
	return json.Marshal(reactionTypeJSON{Type: string(t.Kind())})
}

// Custom emoji ids are strings in JSON, numbers above 2^53 do not survive
// JavaScript clients.
type reactionTypeJSON struct {
	Type          string `json:"type"`
	Emoji         string `json:"emoji,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

func UnmarshalReactionType(b []byte) (ReactionType, error) {
	var data reactionTypeJSON
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, errorx.Wrap(err, errorx.BadRequest, "invalid reaction type: %v", err)
	}

	kind, err := enum.ToEnum[ReactionKind](data.Type)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.BadRequest, "invalid reaction type %q", data.Type)
	}

	switch kind {
	case ReactionKindEmoji:
		if data.Emoji == "" {
			return nil, errorx.New(errorx.BadRequest, "emoji reaction without emoji")
		}
		return ReactionTypeEmoji{Emoji: data.Emoji}, nil

	case ReactionKindCustomEmoji:
		id, err := strconv.ParseInt(data.CustomEmojiID, 10, 64)
		if err != nil {
			return nil, errorx.Wrap(err, errorx.BadRequest, "invalid custom emoji id %q", data.CustomEmojiID)
		}
		return ReactionTypeCustomEmoji{CustomEmojiID: id}, nil

	case ReactionKindPaid:
		return ReactionTypePaid{}, nil

	default:
		return nil, errorx.New(errorx.BadRequest, "invalid reaction type %q", data.Type)
	}
}

// Reaction is a single reaction. Count and ChosenOrder are only set when it
// was parsed from an aggregate record.
type Reaction struct {
	Type        ReactionType `json:"type,omitempty"`
	Count       *int         `json:"count,omitempty"`
	ChosenOrder *int         `json:"chosen_order,omitempty"`
}

func (r Reaction) IsPaid() bool {
	_, ok := r.Type.(ReactionTypePaid)
	return ok
}

// ReactionCount is a reaction added to a message along with the number of
// times it was added. ChosenOrder is nil when the current user did not pick it.
type ReactionCount struct {
	Type        ReactionType `json:"type"`
	TotalCount  int          `json:"total_count"`
	ChosenOrder *int         `json:"chosen_order,omitempty"`
}

type MessageReactions struct {
	Reactions  []ReactionCount `json:"reactions"`
	CanSeeList bool            `json:"can_see_list,omitempty"`
}

// ChatReactions lists the reactions a chat accepts.
type ChatReactions struct {
	AllAreEnabled    bool           `json:"all_are_enabled,omitempty"`
	AllowCustomEmoji bool           `json:"allow_custom_emoji,omitempty"`
	Reactions        []ReactionType `json:"reactions,omitempty"`
}

func (c *ChatReactions) Allows(t ReactionType) bool {
	if c == nil || t == nil {
		return false
	}

	if c.AllAreEnabled {
		return t.Kind() != ReactionKindCustomEmoji || c.AllowCustomEmoji
	}

	return slices.IndexFunc(c.Reactions, func(r ReactionType) bool { return r == t }) >= 0
}

func UnmarshalChatReactions(b []byte) (*ChatReactions, error) {
	var data struct {
		AllAreEnabled    bool              `json:"all_are_enabled"`
		AllowCustomEmoji bool              `json:"allow_custom_emoji"`
		Reactions        []json.RawMessage `json:"reactions"`
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, errorx.Wrap(err, errorx.BadRequest, "invalid chat reactions: %v", err)
	}

	result := &ChatReactions{
		AllAreEnabled:    data.AllAreEnabled,
		AllowCustomEmoji: data.AllowCustomEmoji,
	}
	for _, raw := range data.Reactions {
		t, err := UnmarshalReactionType(raw)
		if err != nil {
			return nil, err
		}

		result.Reactions = append(result.Reactions, t)
	}

	return result, nil
}

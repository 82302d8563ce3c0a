// Package reaction maps wire reactions to their domain representation and
// back.
package reaction

import (
	"context"

	"github.com/questx-lab/reactionmap/internal/common"
	"github.com/questx-lab/reactionmap/internal/model"
	"github.com/questx-lab/reactionmap/pkg/tl"
	"github.com/questx-lab/reactionmap/pkg/xcontext"
)

const (
	typeParser          = "reaction_type"
	reactionParser      = "reaction"
	chatReactionsParser = "chat_reactions"
)

// ParseType returns the reaction type of r, or nil when r is the empty
// reaction or a constructor this parser does not know.
func ParseType(ctx context.Context, r tl.Reaction) model.ReactionType {
	switch v := r.(type) {
	case tl.ReactionEmpty:
		return nil

	case tl.ReactionEmoji:
		return model.ReactionTypeEmoji{Emoji: v.Emoticon}

	case tl.ReactionCustomEmoji:
		return model.ReactionTypeCustomEmoji{CustomEmojiID: v.DocumentID}

	case tl.ReactionPaid:
		return model.ReactionTypePaid{}

	case nil:
		return nil

	default:
		reportUnknown(ctx, typeParser, r.Op())
		return nil
	}
}

// Parse builds a single reaction from the outer wire union. It keeps its own
// dispatch instead of going through ParseType.
func Parse(ctx context.Context, r tl.Reaction) *model.Reaction {
	switch v := r.(type) {
	case tl.ReactionEmoji:
		return &model.Reaction{Type: model.ReactionTypeEmoji{Emoji: v.Emoticon}}

	case tl.ReactionCustomEmoji:
		return &model.Reaction{Type: model.ReactionTypeCustomEmoji{CustomEmojiID: v.DocumentID}}

	case tl.ReactionPaid:
		return &model.Reaction{Type: model.ReactionTypePaid{}}

	case tl.ReactionEmpty, nil:
		return nil

	default:
		reportUnknown(ctx, reactionParser, r.Op())
		return nil
	}
}

// ParseCount builds a reaction carrying the aggregate fields of rc. When the
// inner reaction cannot be resolved the result still holds the count and the
// chosen order, with a nil Type.
func ParseCount(ctx context.Context, rc tl.ReactionCount) *model.Reaction {
	reaction := Parse(ctx, rc.Reaction)
	if reaction == nil {
		reaction = &model.Reaction{}
	}

	count := int(rc.Count)
	reaction.Count = &count
	reaction.ChosenOrder = chosenOrder(rc.ChosenOrder)

	return reaction
}

// ParseReactionCount never drops the record, even if the type is absent.
func ParseReactionCount(ctx context.Context, rc tl.ReactionCount) *model.ReactionCount {
	return &model.ReactionCount{
		Type:        ParseType(ctx, rc.Reaction),
		TotalCount:  int(rc.Count),
		ChosenOrder: chosenOrder(rc.ChosenOrder),
	}
}

func ParseMessageReactions(ctx context.Context, mr tl.MessageReactions) *model.MessageReactions {
	reactions := make([]model.ReactionCount, 0, len(mr.Results))
	for _, rc := range mr.Results {
		reactions = append(reactions, *ParseReactionCount(ctx, rc))
	}

	return &model.MessageReactions{
		Reactions:  reactions,
		CanSeeList: mr.CanSeeList,
	}
}

// ParseChatReactions returns nil when the chat accepts no reaction.
func ParseChatReactions(ctx context.Context, cr tl.ChatReactions) *model.ChatReactions {
	switch v := cr.(type) {
	case tl.ChatReactionsNone, nil:
		return nil

	case tl.ChatReactionsAll:
		return &model.ChatReactions{
			AllAreEnabled:    true,
			AllowCustomEmoji: v.AllowCustom,
		}

	case tl.ChatReactionsSome:
		result := &model.ChatReactions{Reactions: []model.ReactionType{}}
		for _, r := range v.Reactions {
			if t := ParseType(ctx, r); t != nil {
				result.Reactions = append(result.Reactions, t)
			}
		}
		return result

	default:
		reportUnknown(ctx, chatReactionsParser, cr.Op())
		return nil
	}
}

func chosenOrder(v *int32) *int {
	if v == nil {
		return nil
	}

	order := int(*v)
	return &order
}

func reportUnknown(ctx context.Context, parser, tag string) {
	common.PromCounters[common.ReactionUnknownWireTagTotal].WithLabelValues(parser, tag).Inc()

	if xcontext.Configs(ctx).Reaction.QuietUnknownTags {
		xcontext.Logger(ctx).Debugf("Dropped unknown %s constructor %s", parser, tag)
	} else {
		xcontext.Logger(ctx).Warnf("Dropped unknown %s constructor %s", parser, tag)
	}
}

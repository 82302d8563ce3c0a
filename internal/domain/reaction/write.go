package reaction

import (
	"context"
	"fmt"

	"github.com/questx-lab/reactionmap/internal/common"
	"github.com/questx-lab/reactionmap/internal/model"
	"github.com/questx-lab/reactionmap/pkg/errorx"
	"github.com/questx-lab/reactionmap/pkg/tl"
	"github.com/questx-lab/reactionmap/pkg/xcontext"
)

// Write encodes t to its wire constructor. Only the concrete variants have a
// wire form; anything else, nil included, is a caller bug and fails with
// errorx.NotImplemented.
func Write(ctx context.Context, t model.ReactionType) (tl.Reaction, error) {
	switch v := t.(type) {
	case model.ReactionTypeEmoji, model.ReactionTypeCustomEmoji, model.ReactionTypePaid:
		return v.Write(ctx)

	default:
		kind := fmt.Sprintf("%T", t)
		common.PromCounters[common.ReactionWriteFailureTotal].WithLabelValues(kind).Inc()
		xcontext.Logger(ctx).Errorf("Cannot write reaction type %s", kind)
		return nil, errorx.New(errorx.NotImplemented, "reaction type %s has no wire form", kind)
	}
}

// WriteChatReactions is the inverse of ParseChatReactions.
func WriteChatReactions(ctx context.Context, c *model.ChatReactions) (tl.ChatReactions, error) {
	if c == nil {
		return tl.ChatReactionsNone{}, nil
	}

	if c.AllAreEnabled {
		return tl.ChatReactionsAll{AllowCustom: c.AllowCustomEmoji}, nil
	}

	some := tl.ChatReactionsSome{Reactions: make([]tl.Reaction, 0, len(c.Reactions))}
	for _, t := range c.Reactions {
		r, err := Write(ctx, t)
		if err != nil {
			return nil, err
		}

		some.Reactions = append(some.Reactions, r)
	}

	return some, nil
}

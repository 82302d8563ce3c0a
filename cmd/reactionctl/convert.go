package main

import (
	"github.com/questx-lab/reactionmap/internal/domain/reaction"
	"github.com/questx-lab/reactionmap/internal/model"
	"github.com/questx-lab/reactionmap/pkg/errorx"
	"github.com/questx-lab/reactionmap/pkg/tl"
	"github.com/urfave/cli/v2"
)

func (s *reactionctl) decode(c *cli.Context) error {
	b, err := s.readInput(c)
	if err != nil {
		return err
	}

	data, err := tl.Unmarshal(b)
	if err != nil {
		return err
	}

	obj, err := tl.Decode(data)
	if err != nil {
		return err
	}

	switch v := obj.(type) {
	case tl.Reaction:
		return s.writeJSON(c, reaction.Parse(s.ctx, v))

	case tl.ReactionCount:
		return s.writeJSON(c, reaction.ParseReactionCount(s.ctx, v))

	case tl.MessageReactions:
		return s.writeJSON(c, reaction.ParseMessageReactions(s.ctx, v))

	case tl.ChatReactions:
		return s.writeJSON(c, reaction.ParseChatReactions(s.ctx, v))

	default:
		return errorx.New(errorx.UnknownConstructor, "cannot decode %s", obj.Op())
	}
}

func (s *reactionctl) encode(c *cli.Context) error {
	b, err := s.readInput(c)
	if err != nil {
		return err
	}

	var obj tl.Object
	if c.Bool("chat") {
		chat, err := model.UnmarshalChatReactions(b)
		if err != nil {
			return err
		}

		obj, err = reaction.WriteChatReactions(s.ctx, chat)
		if err != nil {
			return err
		}
	} else {
		t, err := model.UnmarshalReactionType(b)
		if err != nil {
			return err
		}

		obj, err = reaction.Write(s.ctx, t)
		if err != nil {
			return err
		}
	}

	data, err := tl.Encode(obj)
	if err != nil {
		return err
	}

	return s.writeJSON(c, data)
}

package tl

import (
	"bytes"
	"encoding/json"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/reactionmap/pkg/errorx"
)

// Unmarshal parses a JSON wire object. Numbers are kept as json.Number so that
// 64-bit identifiers survive the trip.
func Unmarshal(b []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, errorx.Wrap(err, errorx.BadRequest, "invalid wire object: %v", err)
	}

	if data == nil {
		return nil, errorx.New(errorx.BadRequest, "wire object is null")
	}

	return data, nil
}

// Marshal encodes obj and serializes it as JSON.
func Marshal(obj Object) ([]byte, error) {
	data, err := Encode(obj)
	if err != nil {
		return nil, err
	}

	return json.Marshal(data)
}

// Decode dispatches on the constructor tag of any known wire object.
// Unrecognized tags come back as Unknown.
func Decode(data map[string]any) (Object, error) {
	tag, err := tagOf(data)
	if err != nil {
		return nil, err
	}

	switch tag {
	case OpReactionEmpty, OpReactionEmoji, OpReactionCustomEmoji, OpReactionPaid:
		return DecodeReaction(data)

	case OpReactionCount:
		return DecodeReactionCount(data)

	case OpMessageReactions:
		return DecodeMessageReactions(data)

	case OpChatReactionsNone, OpChatReactionsAll, OpChatReactionsSome:
		return DecodeChatReactions(data)

	default:
		return Unknown{Tag: tag, Data: data}, nil
	}
}

// Encode is the inverse of Decode.
func Encode(obj Object) (map[string]any, error) {
	switch v := obj.(type) {
	case Reaction:
		return EncodeReaction(v)

	case ReactionCount:
		return EncodeReactionCount(v)

	case MessageReactions:
		return EncodeMessageReactions(v)

	case ChatReactions:
		return EncodeChatReactions(v)

	case nil:
		return nil, errorx.New(errorx.BadRequest, "cannot encode a nil wire object")

	default:
		return nil, errorx.New(errorx.NotImplemented, "no encoder for wire object %T", obj)
	}
}

func DecodeReaction(data map[string]any) (Reaction, error) {
	tag, err := tagOf(data)
	if err != nil {
		return nil, err
	}

	switch tag {
	case OpReactionEmpty:
		return ReactionEmpty{}, nil

	case OpReactionEmoji:
		r := ReactionEmoji{}
		if err := decodePayload(tag, data, &r); err != nil {
			return nil, err
		}
		return r, nil

	case OpReactionCustomEmoji:
		r := ReactionCustomEmoji{}
		if err := decodePayload(tag, data, &r); err != nil {
			return nil, err
		}
		return r, nil

	case OpReactionPaid:
		return ReactionPaid{}, nil

	default:
		return Unknown{Tag: tag, Data: data}, nil
	}
}

func EncodeReaction(r Reaction) (map[string]any, error) {
	switch v := r.(type) {
	case ReactionEmpty, ReactionPaid:
		return map[string]any{TagKey: v.Op()}, nil

	case ReactionEmoji, ReactionCustomEmoji:
		return withTag(v.Op(), structs.Map(v)), nil

	case Unknown:
		return withTag(v.Tag, v.Data), nil

	case nil:
		return nil, errorx.New(errorx.BadRequest, "cannot encode a nil reaction")

	default:
		return nil, errorx.New(errorx.NotImplemented, "no encoder for reaction %T", r)
	}
}

type reactionCountPayload struct {
	ChosenOrder *int32         `mapstructure:"chosen_order"`
	Reaction    map[string]any `mapstructure:"reaction"`
	Count       int32          `mapstructure:"count"`
}

func DecodeReactionCount(data map[string]any) (ReactionCount, error) {
	if err := expectTag(data, OpReactionCount); err != nil {
		return ReactionCount{}, err
	}

	payload := reactionCountPayload{}
	if err := decodePayload(OpReactionCount, data, &payload); err != nil {
		return ReactionCount{}, err
	}

	if payload.Reaction == nil {
		return ReactionCount{}, errorx.New(errorx.MalformedPayload, "%s: missing reaction", OpReactionCount)
	}

	reaction, err := DecodeReaction(payload.Reaction)
	if err != nil {
		return ReactionCount{}, err
	}

	return ReactionCount{
		ChosenOrder: payload.ChosenOrder,
		Reaction:    reaction,
		Count:       payload.Count,
	}, nil
}

func EncodeReactionCount(rc ReactionCount) (map[string]any, error) {
	reaction, err := EncodeReaction(rc.Reaction)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		TagKey:     OpReactionCount,
		"reaction": reaction,
		"count":    rc.Count,
	}
	if rc.ChosenOrder != nil {
		data["chosen_order"] = *rc.ChosenOrder
	}

	return data, nil
}

type messageReactionsPayload struct {
	Min             bool             `mapstructure:"min"`
	CanSeeList      bool             `mapstructure:"can_see_list"`
	ReactionsAsTags bool             `mapstructure:"reactions_as_tags"`
	Results         []map[string]any `mapstructure:"results"`
}

func DecodeMessageReactions(data map[string]any) (MessageReactions, error) {
	if err := expectTag(data, OpMessageReactions); err != nil {
		return MessageReactions{}, err
	}

	payload := messageReactionsPayload{}
	if err := decodePayload(OpMessageReactions, data, &payload); err != nil {
		return MessageReactions{}, err
	}

	mr := MessageReactions{
		Min:             payload.Min,
		CanSeeList:      payload.CanSeeList,
		ReactionsAsTags: payload.ReactionsAsTags,
	}
	for _, result := range payload.Results {
		rc, err := DecodeReactionCount(result)
		if err != nil {
			return MessageReactions{}, err
		}

		mr.Results = append(mr.Results, rc)
	}

	return mr, nil
}

func EncodeMessageReactions(mr MessageReactions) (map[string]any, error) {
	results := make([]any, 0, len(mr.Results))
	for _, rc := range mr.Results {
		data, err := EncodeReactionCount(rc)
		if err != nil {
			return nil, err
		}

		results = append(results, data)
	}

	return map[string]any{
		TagKey:              OpMessageReactions,
		"min":               mr.Min,
		"can_see_list":      mr.CanSeeList,
		"reactions_as_tags": mr.ReactionsAsTags,
		"results":           results,
	}, nil
}

type chatReactionsSomePayload struct {
	Reactions []map[string]any `mapstructure:"reactions"`
}

func DecodeChatReactions(data map[string]any) (ChatReactions, error) {
	tag, err := tagOf(data)
	if err != nil {
		return nil, err
	}

	switch tag {
	case OpChatReactionsNone:
		return ChatReactionsNone{}, nil

	case OpChatReactionsAll:
		cr := ChatReactionsAll{}
		if err := decodePayload(tag, data, &cr); err != nil {
			return nil, err
		}
		return cr, nil

	case OpChatReactionsSome:
		payload := chatReactionsSomePayload{}
		if err := decodePayload(tag, data, &payload); err != nil {
			return nil, err
		}

		cr := ChatReactionsSome{}
		for _, r := range payload.Reactions {
			reaction, err := DecodeReaction(r)
			if err != nil {
				return nil, err
			}

			cr.Reactions = append(cr.Reactions, reaction)
		}
		return cr, nil

	default:
		return Unknown{Tag: tag, Data: data}, nil
	}
}

func EncodeChatReactions(cr ChatReactions) (map[string]any, error) {
	switch v := cr.(type) {
	case ChatReactionsNone:
		return map[string]any{TagKey: v.Op()}, nil

	case ChatReactionsAll:
		return withTag(v.Op(), structs.Map(v)), nil

	case ChatReactionsSome:
		reactions := make([]any, 0, len(v.Reactions))
		for _, r := range v.Reactions {
			data, err := EncodeReaction(r)
			if err != nil {
				return nil, err
			}

			reactions = append(reactions, data)
		}
		return map[string]any{TagKey: v.Op(), "reactions": reactions}, nil

	case Unknown:
		return withTag(v.Tag, v.Data), nil

	case nil:
		return nil, errorx.New(errorx.BadRequest, "cannot encode nil chat reactions")

	default:
		return nil, errorx.New(errorx.NotImplemented, "no encoder for chat reactions %T", cr)
	}
}

func tagOf(data map[string]any) (string, error) {
	if data == nil {
		return "", errorx.New(errorx.BadRequest, "wire object is empty")
	}

	raw, ok := data[TagKey]
	if !ok {
		return "", errorx.New(errorx.BadRequest, "wire object has no %q key", TagKey)
	}

	tag, ok := raw.(string)
	if !ok || tag == "" {
		return "", errorx.New(errorx.BadRequest, "wire object has an invalid constructor %v", raw)
	}

	return tag, nil
}

func expectTag(data map[string]any, want string) error {
	tag, err := tagOf(data)
	if err != nil {
		return err
	}

	if tag != want {
		return errorx.New(errorx.UnknownConstructor, "expected %s, got %s", want, tag)
	}

	return nil
}

func decodePayload(tag string, data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errorx.Wrap(err, errorx.Internal, "cannot create decoder for %s", tag)
	}

	if err := decoder.Decode(data); err != nil {
		return errorx.Wrap(err, errorx.MalformedPayload, "%s: %v", tag, err)
	}

	return nil
}

func withTag(tag string, data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out[TagKey] = tag

	return out
}

package tl

import (
	"testing"

	"github.com/questx-lab/reactionmap/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 {
	return &v
}

func TestDecodeReaction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Reaction
		wantErr errorx.Code
	}{
		{
			name:  "empty",
			input: `{"_": "reactionEmpty"}`,
			want:  ReactionEmpty{},
		},
		{
			name:  "emoji",
			input: `{"_": "reactionEmoji", "emoticon": "👍"}`,
			want:  ReactionEmoji{Emoticon: "👍"},
		},
		{
			name:  "custom emoji keeps 64-bit id",
			input: `{"_": "reactionCustomEmoji", "document_id": 9223372036854775807}`,
			want:  ReactionCustomEmoji{DocumentID: 9223372036854775807},
		},
		{
			name:  "custom emoji id as string",
			input: `{"_": "reactionCustomEmoji", "document_id": "123456789012345"}`,
			want:  ReactionCustomEmoji{DocumentID: 123456789012345},
		},
		{
			name:  "paid ignores extra fields",
			input: `{"_": "reactionPaid", "foo": 1}`,
			want:  ReactionPaid{},
		},
		{
			name:  "unknown constructor",
			input: `{"_": "reactionStar", "stars": 5}`,
			want:  Unknown{Tag: "reactionStar"},
		},
		{
			name:    "missing tag",
			input:   `{"emoticon": "👍"}`,
			wantErr: errorx.BadRequest,
		},
		{
			name:    "tag is not a string",
			input:   `{"_": 1}`,
			wantErr: errorx.BadRequest,
		},
		{
			name:    "id is not a number",
			input:   `{"_": "reactionCustomEmoji", "document_id": "abc"}`,
			wantErr: errorx.MalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Unmarshal([]byte(tt.input))
			require.NoError(t, err)

			got, err := DecodeReaction(data)
			if tt.wantErr != 0 {
				require.Error(t, err)
				require.True(t, errorx.Is(err, tt.wantErr), err.Error())
				return
			}

			require.NoError(t, err)
			if u, ok := got.(Unknown); ok {
				require.Equal(t, tt.want.Op(), u.Tag)
				require.Contains(t, u.Data, "stars")
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeReaction(t *testing.T) {
	tests := []struct {
		name  string
		input Reaction
		want  map[string]any
	}{
		{
			name:  "empty",
			input: ReactionEmpty{},
			want:  map[string]any{"_": "reactionEmpty"},
		},
		{
			name:  "emoji",
			input: ReactionEmoji{Emoticon: "🔥"},
			want:  map[string]any{"_": "reactionEmoji", "emoticon": "🔥"},
		},
		{
			name:  "custom emoji",
			input: ReactionCustomEmoji{DocumentID: 42},
			want:  map[string]any{"_": "reactionCustomEmoji", "document_id": int64(42)},
		},
		{
			name:  "paid",
			input: ReactionPaid{},
			want:  map[string]any{"_": "reactionPaid"},
		},
		{
			name:  "unknown is passed through",
			input: Unknown{Tag: "reactionStar", Data: map[string]any{"stars": 5}},
			want:  map[string]any{"_": "reactionStar", "stars": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeReaction(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			back, err := DecodeReaction(got)
			require.NoError(t, err)
			if _, ok := tt.input.(Unknown); !ok {
				require.Equal(t, tt.input, back)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		_, err := EncodeReaction(nil)
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})
}

func TestReactionCount(t *testing.T) {
	t.Run("decode with chosen order", func(t *testing.T) {
		data, err := Unmarshal([]byte(`{
			"_": "reactionCount",
			"chosen_order": 3,
			"reaction": {"_": "reactionEmoji", "emoticon": "👍"},
			"count": 42
		}`))
		require.NoError(t, err)

		got, err := DecodeReactionCount(data)
		require.NoError(t, err)
		require.Equal(t, ReactionCount{
			ChosenOrder: int32Ptr(3),
			Reaction:    ReactionEmoji{Emoticon: "👍"},
			Count:       42,
		}, got)
	})

	t.Run("decode without chosen order", func(t *testing.T) {
		data, err := Unmarshal([]byte(`{"_": "reactionCount", "reaction": {"_": "reactionPaid"}, "count": 7}`))
		require.NoError(t, err)

		got, err := DecodeReactionCount(data)
		require.NoError(t, err)
		require.Nil(t, got.ChosenOrder)
		require.Equal(t, ReactionPaid{}, got.Reaction)
		require.Equal(t, int32(7), got.Count)
	})

	t.Run("missing reaction", func(t *testing.T) {
		_, err := DecodeReactionCount(map[string]any{"_": "reactionCount", "count": 1})
		require.True(t, errorx.Is(err, errorx.MalformedPayload))
	})

	t.Run("wrong constructor", func(t *testing.T) {
		_, err := DecodeReactionCount(map[string]any{"_": "reactionEmoji"})
		require.True(t, errorx.Is(err, errorx.UnknownConstructor))
	})

	t.Run("encode and decode", func(t *testing.T) {
		rc := ReactionCount{
			ChosenOrder: int32Ptr(1),
			Reaction:    ReactionCustomEmoji{DocumentID: 123456789012345},
			Count:       2,
		}

		data, err := EncodeReactionCount(rc)
		require.NoError(t, err)
		require.Equal(t, int32(1), data["chosen_order"])

		back, err := DecodeReactionCount(data)
		require.NoError(t, err)
		require.Equal(t, rc, back)
	})
}

func TestMessageReactions(t *testing.T) {
	raw := []byte(`{
		"_": "messageReactions",
		"can_see_list": true,
		"results": [
			{"_": "reactionCount", "reaction": {"_": "reactionEmoji", "emoticon": "❤"}, "count": 5, "chosen_order": 0},
			{"_": "reactionCount", "reaction": {"_": "reactionCustomEmoji", "document_id": 5368324170671202286}, "count": 1}
		]
	}`)

	data, err := Unmarshal(raw)
	require.NoError(t, err)

	obj, err := Decode(data)
	require.NoError(t, err)

	mr, ok := obj.(MessageReactions)
	require.True(t, ok)
	require.True(t, mr.CanSeeList)
	require.False(t, mr.Min)
	require.Len(t, mr.Results, 2)
	require.Equal(t, int32Ptr(0), mr.Results[0].ChosenOrder)
	require.Equal(t, ReactionCustomEmoji{DocumentID: 5368324170671202286}, mr.Results[1].Reaction)

	b, err := Marshal(mr)
	require.NoError(t, err)

	data, err = Unmarshal(b)
	require.NoError(t, err)

	back, err := DecodeMessageReactions(data)
	require.NoError(t, err)
	require.Equal(t, mr, back)
}

func TestChatReactions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ChatReactions
	}{
		{
			name:  "none",
			input: `{"_": "chatReactionsNone"}`,
			want:  ChatReactionsNone{},
		},
		{
			name:  "all",
			input: `{"_": "chatReactionsAll", "allow_custom": true}`,
			want:  ChatReactionsAll{AllowCustom: true},
		},
		{
			name:  "some",
			input: `{"_": "chatReactionsSome", "reactions": [{"_": "reactionEmoji", "emoticon": "👍"}, {"_": "reactionPaid"}]}`,
			want:  ChatReactionsSome{Reactions: []Reaction{ReactionEmoji{Emoticon: "👍"}, ReactionPaid{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Unmarshal([]byte(tt.input))
			require.NoError(t, err)

			got, err := DecodeChatReactions(data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			encoded, err := EncodeChatReactions(got)
			require.NoError(t, err)

			back, err := DecodeChatReactions(encoded)
			require.NoError(t, err)
			require.Equal(t, got, back)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("unknown top level constructor", func(t *testing.T) {
		obj, err := Decode(map[string]any{"_": "updateNewMessage"})
		require.NoError(t, err)
		require.Equal(t, "updateNewMessage", obj.Op())
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{"_":`))
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})

	t.Run("null json", func(t *testing.T) {
		_, err := Unmarshal([]byte(`null`))
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})

	t.Run("encode nil", func(t *testing.T) {
		_, err := Encode(nil)
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})
}

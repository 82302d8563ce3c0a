package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/questx-lab/reactionmap/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var ctl reactionctl
	ctl.loadApp()

	var out bytes.Buffer
	ctl.app.Reader = strings.NewReader(stdin)
	ctl.app.Writer = &out
	ctl.app.ErrWriter = &out

	err := ctl.app.Run(append([]string{"reactionctl", "--log-level", "silence"}, args...))
	return out.String(), err
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "emoji",
			input: `{"_": "reactionEmoji", "emoticon": "👍"}`,
			want:  `{"type": {"type": "emoji", "emoji": "👍"}}`,
		},
		{
			name:  "empty",
			input: `{"_": "reactionEmpty"}`,
			want:  `null`,
		},
		{
			name:  "unknown reaction",
			input: `{"_": "reactionStar"}`,
			want:  `null`,
		},
		{
			name:  "reaction count",
			input: `{"_": "reactionCount", "reaction": {"_": "reactionCustomEmoji", "document_id": 5368324170671202286}, "count": 4, "chosen_order": 2}`,
			want:  `{"type": {"type": "custom_emoji", "custom_emoji_id": "5368324170671202286"}, "total_count": 4, "chosen_order": 2}`,
		},
		{
			name:  "chat reactions",
			input: `{"_": "chatReactionsAll", "allow_custom": true}`,
			want:  `{"all_are_enabled": true, "allow_custom_emoji": true}`,
		},
		{
			name:  "message reactions",
			input: `{"_": "messageReactions", "results": [{"_": "reactionCount", "reaction": {"_": "reactionPaid"}, "count": 1}]}`,
			want:  `{"reactions": [{"type": {"type": "paid"}, "total_count": 1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.input, "decode")
			require.NoError(t, err)
			require.JSONEq(t, tt.want, out)
		})
	}

	t.Run("bad input", func(t *testing.T) {
		_, err := run(t, `{"emoticon": "👍"}`, "decode")
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})
}

func TestEncode(t *testing.T) {
	t.Run("custom emoji", func(t *testing.T) {
		out, err := run(t, `{"type": "custom_emoji", "custom_emoji_id": "9223372036854775807"}`, "encode")
		require.NoError(t, err)

		decoder := json.NewDecoder(strings.NewReader(out))
		decoder.UseNumber()
		var got map[string]any
		require.NoError(t, decoder.Decode(&got))
		require.Equal(t, "reactionCustomEmoji", got["_"])
		require.Equal(t, json.Number("9223372036854775807"), got["document_id"])
	})

	t.Run("chat reactions", func(t *testing.T) {
		out, err := run(t, `{"reactions": [{"type": "emoji", "emoji": "🔥"}]}`, "encode", "--chat")
		require.NoError(t, err)
		require.JSONEq(t, `{"_": "chatReactionsSome", "reactions": [{"_": "reactionEmoji", "emoticon": "🔥"}]}`, out)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := run(t, `{"type": "star"}`, "encode")
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})
}

func TestConfigAndMetrics(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "reactionctl.prom")
	cfg := filepath.Join(dir, "reactionctl.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
[reaction]
quiet_unknown_tags = true

[metrics]
textfile_path = "`+metrics+`"
`), 0o600))

	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"_": "reactionCount", "reaction": {"_": "reactionStarCLI"}, "count": 1}`), 0o600))

	out, err := run(t, "", "--config", cfg, "decode", input)
	require.NoError(t, err)
	require.JSONEq(t, `{"type": null, "total_count": 1}`, out)

	b, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(b), `reaction_unknown_wire_tag_total{parser="reaction_type",tag="reactionStarCLI"} 1`)
}

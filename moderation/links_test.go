package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain text", input: "lfg deadmines", valid: true},
		{name: "escaped pipe", input: "a || b", valid: true},
		{name: "item link", input: "wts |cffa335ee|Hitem:18832:0:0:0|h[Brutality Blade]|h|r cheap", valid: true},
		{name: "two links", input: "|cff1eff00|Hquest:176:60|h[Wanted: Gath'Ilzogg]|h|r and |cff71d5ff|Hspell:133|h[Fireball]|h|r", valid: true},
		{name: "negative random property", input: "|cff1eff00|Hitem:15215:0:0:-19|h[Blade]|h|r", valid: true},
		{name: "unknown type", input: "|cffffffff|Hplayer:Bob|h[Bob]|h|r"},
		{name: "bad color", input: "|cffzz35ee|Hitem:1|h[x]|h|r"},
		{name: "missing id", input: "|cffa335ee|Hitem|h[x]|h|r"},
		{name: "non numeric id", input: "|cffa335ee|Hitem:abc|h[x]|h|r"},
		{name: "empty name", input: "|cffa335ee|Hitem:1|h[]|h|r"},
		{name: "missing reset", input: "|cffa335ee|Hitem:1|h[x]|h"},
		{name: "stray escape", input: "hello |Tinterface|t"},
		{name: "dangling pipe", input: "hello |"},
		{name: "truncated color", input: "|cffa3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateLinks(tt.input)
			if tt.valid {
				req.NoError(err)
			} else {
				req.Error(err)
			}
		})
	}
}

func TestStripInvisible(t *testing.T) {
	req := require.New(t)

	req.Equal("hello", StripInvisible("he\u200bll\x00o"))
	req.Equal("a b", StripInvisible("a\u200d \ufeffb\r\n"))
	req.Equal("", StripInvisible("\u200b\u200c"))
	req.Equal("été", StripInvisible("été"))
}

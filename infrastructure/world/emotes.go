package world

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data/text_emotes.yaml
var emoteData embed.FS

var _ contract.EmoteStore = (*EmoteTable)(nil)

type emoteRow struct {
	ID    uint32 `yaml:"id"`
	Name  string `yaml:"name"`
	Emote uint32 `yaml:"emote"`
}

// EmoteTable is the read-only text emote table.
type EmoteTable struct {
	entries map[chat.TextEmoteID]chat.TextEmoteEntry
}

// LoadEmotes reads the table shipped with the binary.
func LoadEmotes() (*EmoteTable, error) {
	return LoadEmotesFromFS(emoteData, "data/text_emotes.yaml")
}

func LoadEmotesFromFS(fsys fs.FS, path string) (*EmoteTable, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var rows []emoteRow
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	t := &EmoteTable{entries: make(map[chat.TextEmoteID]chat.TextEmoteEntry, len(rows))}
	for _, r := range rows {
		id := chat.TextEmoteID(r.ID)
		if _, dup := t.entries[id]; dup {
			return nil, fmt.Errorf("duplicate text emote %d in %s", r.ID, path)
		}
		t.entries[id] = chat.TextEmoteEntry{ID: id, Name: r.Name, Emote: chat.EmoteID(r.Emote)}
	}
	return t, nil
}

func (t *EmoteTable) TextEmote(id chat.TextEmoteID) (chat.TextEmoteEntry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

func (t *EmoteTable) Len() int { return len(t.entries) }

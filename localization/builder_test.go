package localization

import (
	"chat-dispatch/domain/chat"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type unit struct {
	guid  chat.GUID
	names map[chat.Locale]string
}

func (u unit) GUID() chat.GUID { return u.guid }

func (u unit) NameForLocale(locale chat.Locale) string {
	if name, ok := u.names[locale]; ok {
		return name
	}
	return u.names[chat.LocaleEnUS]
}

var hogger = unit{guid: 448, names: map[chat.Locale]string{
	chat.LocaleEnUS: "Hogger",
	chat.LocaleFrFR: "Lardeur",
}}

func TestChat_Layout(t *testing.T) {
	req := require.New(t)

	b := Chat(ChatMessage{
		Category: chat.Say,
		Language: chat.LangCommon,
		Sender:   0x0102030405060708,
		Text:     "hi",
		Tag:      chat.TagAway,
	})

	req.Equal(uint16(OpMessageChat), binary.LittleEndian.Uint16(b[0:2]))
	req.Equal(byte(chat.Say), b[2])
	req.Equal(uint32(chat.LangCommon), binary.LittleEndian.Uint32(b[3:7]))
	req.Equal(uint64(0x0102030405060708), binary.LittleEndian.Uint64(b[7:15]))
	req.Equal(uint32(3), binary.LittleEndian.Uint32(b[15:19]))
	req.Equal([]byte("hi\x00"), b[19:22])
	req.Equal(byte(chat.TagAway), b[22])
	req.Len(b, 23)
}

func TestChat_ChannelNameIsWritten(t *testing.T) {
	req := require.New(t)

	b := Chat(ChatMessage{Category: chat.Channel, Channel: "Trade", Sender: 1, Text: "wts"})

	req.Equal([]byte("Trade\x00"), b[7:13])
}

func TestTextEmote_DeterministicPerLocale(t *testing.T) {
	req := require.New(t)

	first := TextEmote(1, 101, 0, hogger)
	second := TextEmote(1, 101, 0, hogger)

	req.Equal(first.For(chat.LocaleFrFR), second.For(chat.LocaleFrFR))
	req.Equal(first.For(chat.LocaleEnUS), second.Render(chat.LocaleEnUS))
	req.NotEqual(first.For(chat.LocaleEnUS), first.For(chat.LocaleFrFR))
}

func TestTextEmote_CachedEqualsUncached(t *testing.T) {
	req := require.New(t)
	payload := TextEmote(7, 34, 2, hogger)

	for _, locale := range []chat.Locale{chat.LocaleEnUS, chat.LocaleFrFR, chat.LocaleDeDE, chat.LocaleEnUS} {
		req.Equal(payload.Render(locale), payload.For(locale))
	}
	req.Equal(3, payload.Locales())
}

func TestTextEmote_NameLayout(t *testing.T) {
	req := require.New(t)

	b := TextEmote(7, 34, 2, hogger).For(chat.LocaleEnUS)

	req.Equal(uint16(OpTextEmote), binary.LittleEndian.Uint16(b[0:2]))
	req.Equal(uint64(7), binary.LittleEndian.Uint64(b[2:10]))
	req.Equal(uint32(34), binary.LittleEndian.Uint32(b[10:14]))
	req.Equal(uint32(2), binary.LittleEndian.Uint32(b[14:18]))
	req.Equal(uint32(len("Hogger")+1), binary.LittleEndian.Uint32(b[18:22]))
	req.Equal([]byte("Hogger\x00"), b[22:])
}

func TestTextEmote_WithoutTarget(t *testing.T) {
	req := require.New(t)

	b := TextEmote(7, 34, 2, nil).For(chat.LocaleEnUS)

	req.Equal(uint32(1), binary.LittleEndian.Uint32(b[18:22]))
	req.Equal([]byte{0}, b[22:])
}

func TestPayload_ConcurrentReadsRenderOncePerLocale(t *testing.T) {
	req := require.New(t)
	var mu sync.Mutex
	renders := map[chat.Locale]int{}
	payload := NewPayload(func(locale chat.Locale) []byte {
		mu.Lock()
		renders[locale]++
		mu.Unlock()
		return []byte(locale)
	})

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			locale := chat.LocaleEnUS
			if i%2 == 0 {
				locale = chat.LocaleKoKR
			}
			req.Equal([]byte(locale), payload.For(locale))
		}(i)
	}
	wg.Wait()

	req.Equal(map[chat.Locale]int{chat.LocaleEnUS: 1, chat.LocaleKoKR: 1}, renders)
}

func TestNotices(t *testing.T) {
	req := require.New(t)

	req.Equal([]byte{0xA9, 0x02, 'B', 'o', 'b', 0}, PlayerNotFound("Bob"))
	req.Equal([]byte{0x19, 0x02}, WrongFaction())
	req.Equal([]byte{0xFD, 0x02}, ChatRestricted())
	req.Equal([]byte{0xCB, 0x01, 'h', 'i', 0}, Notification("hi"))
	req.Equal([]byte{0x99, 0x00, 0x05, 'L', 'F', 'G', 0}, ChannelNotMember("LFG"))
}

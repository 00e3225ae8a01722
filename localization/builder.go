// Package localization renders outbound chat payloads and notices.
package localization

import (
	"chat-dispatch/domain/chat"
)

// ChatMessage is the canonical content of a chat payload.
type ChatMessage struct {
	Category chat.Category
	Language chat.Language
	// Channel is only written for channel chat.
	Channel string
	Sender  chat.GUID
	Text    string
	Tag     chat.ChatTag
}

// Chat renders a chat message. The layout does not depend on the recipient,
// so one buffer is shared by every recipient.
//
//	u16 opcode | u8 category | u32 language | [cstring channel] | u64 sender | u32 len | cstring text | u8 tag
func Chat(msg ChatMessage) []byte {
	p := newPacket(OpMessageChat, 1+4+len(msg.Channel)+1+8+4+len(msg.Text)+1+1).
		u8(uint8(msg.Category)).
		u32(uint32(msg.Language))
	if msg.Category == chat.Channel {
		p.cstring(msg.Channel)
	}
	return p.u64(uint64(msg.Sender)).
		u32(uint32(len(msg.Text) + 1)).
		cstring(msg.Text).
		u8(uint8(msg.Tag)).
		bytes()
}

// TextEmote returns the payload of a text emote. The target name is rendered
// per recipient locale. A nil target renders an empty name.
//
//	u16 opcode | u64 sender | u32 text emote | u32 emote num | u32 name len | name | NUL
func TextEmote(sender chat.GUID, textEmote chat.TextEmoteID, emoteNum uint32, target chat.Unit) *Payload {
	return NewPayload(func(locale chat.Locale) []byte {
		var name string
		if target != nil {
			name = target.NameForLocale(locale)
		}
		return newPacket(OpTextEmote, 8+4+4+4+len(name)+1).
			u64(uint64(sender)).
			u32(uint32(textEmote)).
			u32(emoteNum).
			u32(uint32(len(name) + 1)).
			cstring(name).
			bytes()
	})
}

// PlayerNotFound tells the sender a whisper target is unreachable.
func PlayerNotFound(name string) []byte {
	return newPacket(OpPlayerNotFound, len(name)+1).cstring(name).bytes()
}

// notMemberNotice is the channel notice for a sender outside the channel.
const notMemberNotice uint8 = 0x05

// ChannelNotMember tells the sender they did not join the channel.
func ChannelNotMember(channel string) []byte {
	return newPacket(OpChannelNotify, 1+len(channel)+1).u8(notMemberNotice).cstring(channel).bytes()
}

func WrongFaction() []byte {
	return newPacket(OpWrongFaction, 0).bytes()
}

func ChatRestricted() []byte {
	return newPacket(OpChatRestricted, 0).bytes()
}

// Notification is an on-screen system message.
func Notification(text string) []byte {
	return newPacket(OpNotification, len(text)+1).cstring(text).bytes()
}

package chat

// WorldEntity is one entity reported by the spatial index. Only entities
// with a session receive chat.
type WorldEntity struct {
	GUID     GUID
	IsPlayer bool
	Locale   Locale
}

// Unit is a world object that can be the target of a text emote.
type Unit interface {
	GUID() GUID
	NameForLocale(locale Locale) string
}

// EmoteReactor is implemented by units with a scripted reaction to emotes.
type EmoteReactor interface {
	ReceiveEmote(sender GUID, emote TextEmoteID)
}

// RecipientKind tells how a RecipientSet must be delivered.
type RecipientKind uint8

const (
	RecipientsNone RecipientKind = iota
	RecipientsSingle
	RecipientsMembers
	RecipientsProximity
	RecipientsChannel
)

// RecipientSet is the resolved target population of one request.
type RecipientSet struct {
	Kind    RecipientKind
	Targets []GUID
	Radius  float32
}

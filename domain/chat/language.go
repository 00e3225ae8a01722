package chat

// Language is the spoken language attached to a chat message.
type Language uint32

const (
	LangUniversal   Language = 0
	LangOrcish      Language = 1
	LangDarnassian  Language = 2
	LangTaurahe     Language = 3
	LangDwarvish    Language = 6
	LangCommon      Language = 7
	LangDemonic     Language = 8
	LangTitan       Language = 9
	LangThalassian  Language = 10
	LangDraconic    Language = 11
	LangKalimag     Language = 12
	LangGnomish     Language = 13
	LangTroll       Language = 14
	LangGutterspeak Language = 33
	// LangAddon carries addon traffic. It is never rewritten and skips flood and mute checks.
	LangAddon Language = 0xFFFFFFFF
)

// LanguageDesc describes what a participant needs to speak a language.
// A zero SkillID means everybody can speak it.
type LanguageDesc struct {
	Language Language
	SpellID  uint32
	SkillID  uint32
}

var languages = map[Language]LanguageDesc{
	LangAddon:       {LangAddon, 0, 0},
	LangUniversal:   {LangUniversal, 0, 0},
	LangOrcish:      {LangOrcish, 669, 109},
	LangDarnassian:  {LangDarnassian, 671, 113},
	LangTaurahe:     {LangTaurahe, 670, 115},
	LangDwarvish:    {LangDwarvish, 672, 111},
	LangCommon:      {LangCommon, 668, 98},
	LangDemonic:     {LangDemonic, 815, 139},
	LangTitan:       {LangTitan, 816, 140},
	LangThalassian:  {LangThalassian, 813, 137},
	LangDraconic:    {LangDraconic, 814, 138},
	LangKalimag:     {LangKalimag, 817, 0},
	LangGnomish:     {LangGnomish, 7340, 313},
	LangTroll:       {LangTroll, 7341, 315},
	LangGutterspeak: {LangGutterspeak, 17737, 673},
}

// LookupLanguage returns the descriptor of a recognized language.
func LookupLanguage(l Language) (LanguageDesc, bool) {
	desc, ok := languages[l]
	return desc, ok
}

// RequiresSkill reports whether speaking the language needs a learned skill.
func (d LanguageDesc) RequiresSkill() bool {
	return d.SkillID != 0
}

package world

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"sync"

	"github.com/samber/lo"
)

var _ contract.SkillSystem = (*Skills)(nil)

// Skills tracks the languages each player knows and the language override
// effects applied to them, in registration order.
type Skills struct {
	mu        sync.RWMutex
	known     map[chat.GUID]map[chat.Language]struct{}
	overrides map[chat.GUID][]chat.Language
}

func NewSkills() *Skills {
	return &Skills{
		known:     make(map[chat.GUID]map[chat.Language]struct{}),
		overrides: make(map[chat.GUID][]chat.Language),
	}
}

func (s *Skills) Teach(guid chat.GUID, langs ...chat.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.known[guid] == nil {
		s.known[guid] = make(map[chat.Language]struct{})
	}
	for _, l := range langs {
		s.known[guid][l] = struct{}{}
	}
}

// TeachFaction grants the common tongue of the player's team.
func (s *Skills) TeachFaction(guid chat.GUID, team chat.Team) {
	switch team {
	case chat.TeamAlliance:
		s.Teach(guid, chat.LangCommon)
	case chat.TeamHorde:
		s.Teach(guid, chat.LangOrcish)
	}
}

func (s *Skills) Forget(guid chat.GUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.known, guid)
	delete(s.overrides, guid)
}

func (s *Skills) KnowsLanguage(guid chat.GUID, lang chat.Language) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.known[guid][lang]
	return ok
}

// AddOverride registers a language override effect (a disguise, a curse...).
func (s *Skills) AddOverride(guid chat.GUID, lang chat.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[guid] = append(s.overrides[guid], lang)
}

// RemoveOverride removes the first effect forcing lang.
func (s *Skills) RemoveOverride(guid chat.GUID, lang chat.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, i, ok := lo.FindIndexOf(s.overrides[guid], func(l chat.Language) bool { return l == lang }); ok {
		s.overrides[guid] = append(s.overrides[guid][:i], s.overrides[guid][i+1:]...)
	}
}

func (s *Skills) ActiveLanguageOverride(guid chat.GUID) (chat.Language, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o := s.overrides[guid]; len(o) > 0 {
		return o[0], true
	}
	return 0, false
}

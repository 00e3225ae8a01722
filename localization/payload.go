package localization

import (
	"chat-dispatch/domain/chat"
	"sync"
)

// Payload renders a message lazily for each locale and keeps the result for
// the lifetime of one dispatch. For is safe for concurrent use.
type Payload struct {
	mu     sync.RWMutex
	render func(chat.Locale) []byte
	cache  map[chat.Locale][]byte
}

func NewPayload(render func(chat.Locale) []byte) *Payload {
	return &Payload{render: render, cache: make(map[chat.Locale][]byte)}
}

// For returns the bytes for a locale, rendering them on first use.
// Callers must not modify the returned slice.
func (p *Payload) For(locale chat.Locale) []byte {
	p.mu.RLock()
	b, ok := p.cache[locale]
	p.mu.RUnlock()
	if ok {
		return b
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.cache[locale]; ok {
		return b
	}
	b = p.render(locale)
	p.cache[locale] = b
	return b
}

// Render bypasses the cache.
func (p *Payload) Render(locale chat.Locale) []byte {
	return p.render(locale)
}

// Locales returns how many locales have been rendered so far.
func (p *Payload) Locales() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}

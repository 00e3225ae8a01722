package moderation

import (
	"fmt"
	"strconv"
	"strings"
)

// Link markup sent by clients:
//
//	|cffa335ee|Hitem:18832:0:0:0|h[Brutality Blade]|h|r
//
// A literal pipe is escaped as "||".
var linkTypes = map[string]struct{}{
	"item":    {},
	"quest":   {},
	"spell":   {},
	"enchant": {},
	"talent":  {},
	"skill":   {},
}

// ValidateLinks checks every escape sequence of text.
func ValidateLinks(text string) error {
	s := linkScanner{text: text}
	for s.pos < len(s.text) {
		if s.text[s.pos] != '|' {
			s.pos++
			continue
		}
		if s.pos+1 >= len(s.text) {
			return s.fail("dangling escape")
		}
		switch s.text[s.pos+1] {
		case '|':
			s.pos += 2
		case 'c':
			if err := s.link(); err != nil {
				return err
			}
		default:
			return s.fail(fmt.Sprintf("unexpected escape |%c", s.text[s.pos+1]))
		}
	}
	return nil
}

type linkScanner struct {
	text string
	pos  int
}

func (s *linkScanner) fail(reason string) error {
	return fmt.Errorf("%s at %d", reason, s.pos)
}

func (s *linkScanner) expect(token string) error {
	if !strings.HasPrefix(s.text[s.pos:], token) {
		return s.fail(fmt.Sprintf("expected %q", token))
	}
	s.pos += len(token)
	return nil
}

// until returns the text up to sep and moves past it.
func (s *linkScanner) until(sep string) (string, error) {
	i := strings.Index(s.text[s.pos:], sep)
	if i < 0 {
		return "", s.fail(fmt.Sprintf("missing %q", sep))
	}
	part := s.text[s.pos : s.pos+i]
	s.pos += i + len(sep)
	return part, nil
}

func (s *linkScanner) link() error {
	if err := s.expect("|c"); err != nil {
		return err
	}
	if len(s.text)-s.pos < 8 {
		return s.fail("short color")
	}
	if _, err := strconv.ParseUint(s.text[s.pos:s.pos+8], 16, 32); err != nil {
		return s.fail("bad color")
	}
	s.pos += 8
	if err := s.expect("|H"); err != nil {
		return err
	}

	ref, err := s.until("|h")
	if err != nil {
		return err
	}
	fields := strings.Split(ref, ":")
	if _, ok := linkTypes[fields[0]]; !ok {
		return s.fail(fmt.Sprintf("unknown link type %q", fields[0]))
	}
	if len(fields) < 2 {
		return s.fail("link without id")
	}
	for _, f := range fields[1:] {
		if _, err := strconv.ParseInt(f, 10, 64); err != nil {
			return s.fail(fmt.Sprintf("bad link id %q", f))
		}
	}

	if err := s.expect("["); err != nil {
		return err
	}
	name, err := s.until("]")
	if err != nil {
		return err
	}
	if name == "" || strings.ContainsRune(name, '|') {
		return s.fail("bad link name")
	}
	return s.expect("|h|r")
}

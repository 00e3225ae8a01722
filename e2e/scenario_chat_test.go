package e2e

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"chat-dispatch/domain/chat"
	"chat-dispatch/infrastructure/gateway"
	"chat-dispatch/localization"

	"github.com/stretchr/testify/suite"
)

// Runs against a dispatcher started with the shipped roster.
type testChatSuite struct {
	BaseWsSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, &testChatSuite{})
}

func opcode(payload []byte) localization.Opcode {
	return localization.Opcode(binary.LittleEndian.Uint16(payload))
}

func (s *testChatSuite) TestPartyAndWhisperFlow() {
	thrall := s.Connect("Thrall", 1)
	garrosh := s.Connect("Garrosh", 2)
	// Let both sessions register before chatting.
	time.Sleep(200 * time.Millisecond)

	s.Run("Step 1: party chat reaches the other member", func() {
		thrall.Send(gateway.Frame{Op: gateway.OpChat, Category: "party", Language: uint32(chat.LangOrcish), Body: "lok'tar"})

		payload := garrosh.Receive(2 * time.Second)
		s.Require().Equal(localization.OpMessageChat, opcode(payload))
		s.Require().True(bytes.Contains(payload, []byte("lok'tar")))

		// The sender is a member too.
		echo := thrall.Receive(2 * time.Second)
		s.Require().Equal(payload, echo)
	})

	s.Run("Step 2: whispering the other faction is refused", func() {
		thrall.Send(gateway.Frame{Op: gateway.OpChat, Category: "whisper", Language: uint32(chat.LangOrcish), Body: "hello", Target: "jaina"})

		payload := thrall.Receive(2 * time.Second)
		s.Require().Equal(localization.OpWrongFaction, opcode(payload))
	})

	s.Run("Step 3: a whisper gets an inform echo", func() {
		garrosh.Send(gateway.Frame{Op: gateway.OpChat, Category: "whisper", Language: uint32(chat.LangOrcish), Body: "for the horde", Target: "thrall"})

		inform := garrosh.Receive(2 * time.Second)
		s.Require().Equal(localization.OpMessageChat, opcode(inform))
		s.Require().Equal(uint8(chat.WhisperInform), inform[2])

		whisper := thrall.Receive(2 * time.Second)
		s.Require().Equal(uint8(chat.Whisper), whisper[2])
		s.Require().True(bytes.Contains(whisper, []byte("for the horde")))
	})
}

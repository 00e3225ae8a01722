package e2e

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"chat-dispatch/infrastructure/gateway"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.DispatcherAddr == "" {
		s.T().Skip("DISPATCHER_ADDR not set")
	}
}

// Player is one websocket session logged in as a roster player.
type Player struct {
	s    *BaseWsSuite
	name string
	conn *websocket.Conn
}

// Connect logs a roster player in and prints a colorized header for the step.
func (s *BaseWsSuite) Connect(name string, guid uint64) *Player {
	header := fmt.Sprintf("  ====== %s (%d) ======", name, guid)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	u := url.URL{
		Scheme:   "ws",
		Host:     s.Config.DispatcherAddr,
		Path:     "/ws",
		RawQuery: "guid=" + strconv.FormatUint(guid, 10),
	}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	s.Require().NoError(err, "Failed to connect to dispatcher at "+u.String())
	s.T().Cleanup(func() { _ = conn.Close() })
	return &Player{s: s, name: name, conn: conn}
}

func (p *Player) Send(frame gateway.Frame) {
	raw, err := json.Marshal(frame)
	p.s.Require().NoError(err)
	if p.s.Config.DebugFrames {
		p.s.T().Logf("%s >> %s", p.name, raw)
	}
	p.s.Require().NoError(p.conn.WriteMessage(websocket.TextMessage, raw))
}

// Receive waits for the next binary payload.
func (p *Player) Receive(timeout time.Duration) []byte {
	_ = p.conn.SetReadDeadline(time.Now().Add(timeout))
	kind, data, err := p.conn.ReadMessage()
	p.s.Require().NoError(err, p.name+" did not receive a payload")
	p.s.Require().Equal(websocket.BinaryMessage, kind)
	if p.s.Config.DebugFrames {
		p.s.T().Logf("%s << %s", p.name, hex.EncodeToString(data))
	}
	return data
}

package main

import (
	"bufio"
	"chat-dispatch/domain/chat"
	"chat-dispatch/infrastructure/gateway"
	"chat-dispatch/localization"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:8085"`
	GUID          uint64 `env:"CHAT_GUID,default=1"`
	Language      uint32 `env:"CHAT_LANGUAGE,default=0"`
	Token         string `env:"CHAT_TOKEN"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects as a roster player, sends every stdin line as a chat frame and
// prints what the dispatcher sends back.
//
//	hello            say
//	/y hello         yell
//	/p hello         party
//	/g hello         guild
//	/w jaina hello   whisper
//	/c general hello channel
//	/afk brb         away
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	query := url.Values{"guid": {strconv.FormatUint(config.GUID, 10)}}
	if config.Token != "" {
		query = url.Values{"token": {config.Token}}
	}
	u := url.URL{Scheme: "ws", Host: config.ServerAddress, Path: "/ws", RawQuery: query.Encode()}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to %s: %w", u.String(), err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()
	log.Info("Connected, type a line to speak (Ctrl+C to quit)", "server", config.ServerAddress, "guid", config.GUID)

	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			fmt.Println(render(data))
		}
	}()

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case err := <-readErr:
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("connection lost: %w", err)
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			frame, ok := parseLine(line, config.Language)
			if !ok {
				continue
			}
			raw, err := json.Marshal(frame)
			if err != nil {
				return exitRuntime, err
			}
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return exitRuntime, fmt.Errorf("send failed: %w", err)
			}
		}
	}
}

func parseLine(line string, lang uint32) (gateway.Frame, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return gateway.Frame{}, false
	}
	frame := gateway.Frame{Op: gateway.OpChat, Category: "say", Language: lang, Body: line}
	if !strings.HasPrefix(line, "/") {
		return frame, true
	}

	verb, rest, _ := strings.Cut(line[1:], " ")
	switch verb {
	case "y":
		frame.Category = "yell"
	case "p":
		frame.Category = "party"
	case "g":
		frame.Category = "guild"
	case "o":
		frame.Category = "officer"
	case "raid":
		frame.Category = "raid"
	case "afk":
		frame.Category = "afk"
	case "dnd":
		frame.Category = "dnd"
	case "w":
		frame.Category = "whisper"
		frame.Target, rest, _ = strings.Cut(rest, " ")
	case "c":
		frame.Category = "channel"
		frame.Channel, rest, _ = strings.Cut(rest, " ")
	default:
		// unknown slash commands go out as said, the server may know them
		return frame, true
	}
	frame.Body = rest
	return frame, true
}

// render prints chat payloads and shows other notices by opcode.
func render(data []byte) string {
	if len(data) < 2 {
		return color.Red.Sprintf("malformed payload %x", data)
	}
	op := localization.Opcode(binary.LittleEndian.Uint16(data))
	if op != localization.OpMessageChat {
		return color.Yellow.Sprintf("[notice 0x%03X] %q", uint16(op), strings.Trim(string(data[2:]), "\x00"))
	}

	body := data[2:]
	if len(body) < 5 {
		return color.Red.Sprintf("truncated chat payload %x", data)
	}
	category := chat.Category(body[0])
	body = body[5:]
	var channel string
	if category == chat.Channel {
		end := strings.IndexByte(string(body), 0)
		if end < 0 {
			return color.Red.Sprintf("truncated chat payload %x", data)
		}
		channel, body = string(body[:end]), body[end+1:]
	}
	if len(body) < 12 {
		return color.Red.Sprintf("truncated chat payload %x", data)
	}
	sender := binary.LittleEndian.Uint64(body)
	size := int(binary.LittleEndian.Uint32(body[8:]))
	body = body[12:]
	if size < 1 || len(body) < size {
		return color.Red.Sprintf("truncated chat payload %x", data)
	}
	text := string(body[:size-1])

	prefix := fmt.Sprintf("[%s] %d", category, sender)
	if channel != "" {
		prefix = fmt.Sprintf("[%s] %d", channel, sender)
	}
	return color.Cyan.Sprint(prefix) + ": " + text
}

package storage

import (
	"chat-dispatch/internal"
	"strings"
	"time"
)

// InspectRow renders a mute, blacklist or account entry for the debug server.
func InspectRow(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, mutePrefix):
		row.Type = "MUTE"
		row.Detail = "guid " + strings.TrimPrefix(key, mutePrefix)
	case strings.HasPrefix(key, blacklistPrefix):
		row.Type = "BLACKLIST"
		row.Detail = strings.TrimPrefix(key, blacklistPrefix)
	case strings.HasPrefix(key, accountPrefix):
		row.Type = "ACCOUNT"
		row.Detail = "guid " + strings.TrimPrefix(key, accountPrefix)
		return row
	default:
		return row
	}
	if at, err := decodeExpiry(val); err == nil {
		row.Timestamp = at.Local().Format(time.DateTime)
	}
	return row
}

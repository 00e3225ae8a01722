package main

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/infrastructure/storage"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	add := flag.String("add", "", "Word to add to the blacklist")
	remove := flag.String("remove", "", "Word to remove from the blacklist")
	unmute := flag.Uint64("unmute", 0, "Guid of a player to unmute")
	flag.Parse()

	readOnly := *add == "" && *remove == "" && *unmute == 0
	db, err := openDB(*dbPath, readOnly)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	mutes := storage.NewMuteRepository(db, logger)
	blacklist := storage.NewBlacklistRepository(db, logger)

	switch {
	case *add != "":
		if err := blacklist.Add(*add, time.Now()); err != nil {
			log.Fatal(err)
		}
		color.Green.Printf("Added %q, restart the dispatcher to apply it\n", *add)
	case *remove != "":
		if err := blacklist.Remove(*remove); err != nil {
			log.Fatal(err)
		}
		color.Green.Printf("Removed %q, restart the dispatcher to apply it\n", *remove)
	case *unmute != 0:
		if err := mutes.Delete(chat.GUID(*unmute)); err != nil {
			log.Fatal(err)
		}
		color.Green.Printf("Removed the stored mute of %d\n", *unmute)
	}

	records, err := mutes.List()
	if err != nil {
		log.Fatal(err)
	}
	color.Cyan.Printf("\n%d active mutes\n", len(records))
	table := newTable([]string{"Guid", "Muted until", "Remaining"})
	now := time.Now()
	for _, r := range records {
		table.Append([]string{
			strconv.FormatUint(uint64(r.GUID), 10),
			r.Until.Local().Format(time.DateTime),
			r.Until.Sub(now).Round(time.Second).String(),
		})
	}
	table.Render()

	entries, err := blacklist.List()
	if err != nil {
		log.Fatal(err)
	}
	color.Cyan.Printf("\n%d blacklisted words\n", len(entries))
	table = newTable([]string{"Word", "Added at"})
	for _, e := range entries {
		table.Append([]string{e.Word, e.AddedAt.Local().Format(time.DateTime)})
	}
	table.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func openDB(path string, readOnly bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(readOnly).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && readOnly && strings.Contains(err.Error(), "Log truncate required") {
		fmt.Println("⚠️  Database was not closed cleanly, reopening in write mode to truncate")
		return badger.Open(opts.WithReadOnly(false))
	}
	return db, err
}

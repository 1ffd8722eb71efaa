package main

import (
	"boozbaal-chat/domain"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/boozbaal"`
	AppPrefix      string `envconfig:"APP_PREFIX" default:"boozbaal-chat"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	prefix := flag.String("prefix", config.AppPrefix+"-", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Size", "Detail"})
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

	app := strings.TrimSuffix(*prefix, "-")
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.KeyCopy(nil))
			err := item.Value(func(v []byte) error {
				kind, detail := describe(app, key, v)
				table.Append([]string{key, kind, strconv.Itoa(len(v)), detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// describe summarizes a record; unparsable values are reported, not fatal.
func describe(app, key string, raw []byte) (string, string) {
	switch {
	case key == domain.UserKey(app):
		var user *domain.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return "USER", "unparsable: " + err.Error()
		}
		if user == nil {
			return "USER", "logged out"
		}
		return "USER", fmt.Sprintf("%s <%s>", user.Name, user.Email)
	case strings.HasPrefix(key, app+"-tabs-"):
		var tabs []domain.ChatTab
		if err := json.Unmarshal(raw, &tabs); err != nil {
			return "TABS", "unparsable: " + err.Error()
		}
		names := make([]string, 0, len(tabs))
		for _, tab := range tabs {
			names = append(names, tab.Participant.Name)
		}
		return "TABS", fmt.Sprintf("%d open: %s", len(tabs), strings.Join(names, ", "))
	case strings.HasPrefix(key, domain.SessionPrefix(app)):
		var session *domain.ChatSession
		if err := json.Unmarshal(raw, &session); err != nil {
			return "SESSION", "unparsable: " + err.Error()
		}
		if session == nil {
			return "SESSION", "empty"
		}
		names := make([]string, 0, len(session.Participants))
		for _, p := range session.Participants {
			names = append(names, p.Name)
		}
		return "SESSION", fmt.Sprintf("%s, %d messages", strings.Join(names, " & "), len(session.Messages))
	default:
		return "RAW", ""
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}

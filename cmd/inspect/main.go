package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"notification-hub/domain"
	"notification-hub/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/notifications", "Path to badger DB")
	user := flag.String("user", "", "Only show this user's notifications")
	unreadOnly := flag.Bool("unread", false, "Only show unread notifications")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Created", "Kind", "Priority", "Category", "Title", "Read", "ID"})
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

	repository := repositories.NewNotificationRepository(db, logs.GetLoggerFromLevel(slog.LevelError))
	count := 0
	err = repository.Walk(func(_ string, rec domain.NotificationRecord) error {
		n := rec.Notification
		if *user != "" && n.TargetUserID != domain.UserID(*user) {
			return nil
		}
		if *unreadOnly && rec.IsRead() {
			return nil
		}
		table.Append([]string{
			string(n.TargetUserID),
			n.CreatedAt.Local().Format(time.DateTime),
			string(n.Kind),
			string(n.Priority),
			string(n.Category),
			n.Title,
			readState(rec),
			n.ID.String(),
		})
		count++
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning notifications: ", err)
	}

	table.Render()
	fmt.Printf("\n%d notification(s)\n", count)
}

func readState(rec domain.NotificationRecord) string {
	if rec.ReadAt == nil {
		return "-"
	}
	return rec.ReadAt.Local().Format(time.DateTime)
}

package cli

import (
	"context"
	"fmt"
	"os"
)

// Notices prints the active notification feed.
func (a *App) Notices(ctx context.Context) error {
	active, err := a.notifications.Active(ctx)
	if err != nil {
		fmt.Println("Could not load notifications:", err.Error())
		return err
	}

	if len(active) == 0 {
		fmt.Println("No new notifications.")
		return nil
	}
	for _, n := range active {
		fmt.Printf("%s  %s  %s\n", n.ID, n.Time.Format("2006-01-02 15:04"), n.Message)
	}
	return nil
}

// Dismiss moves one notification, or all of them, to the history.
func (a *App) Dismiss(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Notification id ('all' to clear the feed)", os.Stdout)
	if err != nil {
		return err
	}

	if id == "all" {
		if err := a.notifications.DismissAll(ctx); err != nil {
			fmt.Println("Could not dismiss notifications:", err.Error())
			return err
		}
		fmt.Println("Feed cleared.")
		return nil
	}

	if err := a.notifications.Dismiss(ctx, id); err != nil {
		fmt.Println("Could not dismiss notification:", err.Error())
		return err
	}
	fmt.Println("Dismissed.")
	return nil
}

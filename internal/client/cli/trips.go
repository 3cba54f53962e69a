package cli

import (
	"context"
	"fmt"
	"os"
)

// Trips lists all trips known to the server.
func (a *App) Trips(ctx context.Context) error {
	trips, err := a.tripService.List(ctx)
	if err != nil {
		fmt.Println("Could not list trips:", err.Error())
		return err
	}

	if len(trips) == 0 {
		fmt.Println("No trips yet.")
		return nil
	}
	for _, t := range trips {
		fmt.Printf("%s  %s (%s - %s), %d entries\n", t.ID, t.Location, t.StartDate, t.EndDate, len(t.Entries))
	}
	return nil
}

// ShowTrip prints one trip with its diary entries.
func (a *App) ShowTrip(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Trip id", os.Stdout)
	if err != nil {
		return err
	}

	trip, err := a.tripService.Get(ctx, id)
	if err != nil {
		fmt.Println("Could not load trip:", err.Error())
		return err
	}

	fmt.Printf("%s (%s - %s)\n", trip.Location, trip.StartDate, trip.EndDate)
	if trip.Image != "" {
		fmt.Println("Image:", trip.Image)
	}
	if len(trip.Entries) == 0 {
		fmt.Println("No diary entries yet.")
		return nil
	}
	for _, e := range trip.Entries {
		fmt.Printf("  [%s] %s: %s\n", e.EntryID, e.Date, e.Text)
	}
	return nil
}

// AddTrip prompts for trip details and creates the trip on the server.
func (a *App) AddTrip(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Trip id", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	image, err := getSimpleText(a.reader, "Image file name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	startDate, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	endDate, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	trip, err := a.tripService.Create(ctx, id, location, image, startDate, endDate)
	if err != nil {
		fmt.Println("Could not create trip:", err.Error())
		return err
	}

	fmt.Printf("Created trip %s to %s.\n", trip.ID, trip.Location)
	return nil
}

// AddEntry appends a diary entry to an existing trip.
func (a *App) AddEntry(ctx context.Context) error {
	tripID, err := getSimpleText(a.reader, "Trip id", os.Stdout)
	if err != nil {
		return err
	}
	entryID, err := getSimpleText(a.reader, "Entry id", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Text", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.tripService.AddEntry(ctx, tripID, entryID, date, text)
	if err != nil {
		fmt.Println("Could not add entry:", err.Error())
		return err
	}

	fmt.Printf("Added entry %s to trip %s.\n", entry.EntryID, tripID)
	return nil
}

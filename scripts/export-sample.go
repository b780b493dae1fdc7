package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/pfrederiksen/parkrun-stats/internal/export"
)

func main() {
	// Create a couple of sample records
	date1, _ := time.Parse("2006-01-02", "2024-01-06")
	date2, _ := time.Parse("2006-01-02", "2024-01-13")
	id := 1001
	secs := 1022
	records := []*event.Record{
		{
			Number: 1, Date: date1, Finishers: 210, Volunteers: 18,
			MaleFirst: &event.Winner{Name: "John Smith", AthleteID: &id, Seconds: &secs},
		},
		{Number: 2, Date: date2, Finishers: 230, Volunteers: 19},
	}

	// Write both export formats
	csvFile, err := os.Create("sample-history.csv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer csvFile.Close()
	if err := export.WriteCSV(csvFile, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(1)
	}

	xlsxFile, err := os.Create("sample-history.xlsx")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer xlsxFile.Close()
	if err := export.WriteXLSX(xlsxFile, records, "Sample"); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing XLSX: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Wrote sample-history.csv and sample-history.xlsx")
	fmt.Println("Open them to check the column layout and header styling.")
}

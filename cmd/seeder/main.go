package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/rolodex"
	"github.com/poiesic/rolodex/core"
)

type seedPerson struct {
	person core.Person
	notes  []string
}

var seedData = []seedPerson{
	{
		person: core.Person{FirstName: "Sarah", LastName: "Chen", Company: "Stripe", Title: "Engineering Manager"},
		notes: []string{
			"Met Sarah at the fintech conference. She leads the payments platform team at Stripe. Meeting her again on Friday to talk through the partnership. Need to send her the fintech deck beforehand.",
			"Sarah mentioned David Park is hiring platform engineers at Chime. She used to work with him at Square, former colleague of hers.",
		},
	},
	{
		person: core.Person{FirstName: "Marcus", LastName: "Webb", Company: "Sequoia", Title: "Partner"},
		notes: []string{
			"Marcus is looking at early-stage infrastructure companies. Coffee next Tuesday. Action item: intro him to the Datadog folks.",
		},
	},
	{
		person: core.Person{FirstName: "Priya", LastName: "Patel", Company: "Figma", Title: "Product Designer"},
		notes: []string{
			"Priya redesigned the onboarding flow at Figma. She knows Elena Rodriguez from the design guild, they meet monthly.",
		},
	},
	{
		person: core.Person{FirstName: "David", LastName: "Park", Company: "Chime", Title: "VP Engineering"},
		notes: []string{
			"David is building out the platform org at Chime. He asked about our hiring pipeline and mentioned a mutual contact at Plaid.",
		},
	},
	{
		person: core.Person{FirstName: "Elena", LastName: "Rodriguez"},
		notes:  nil,
	},
}

var dbPath = flag.String("db", "./rolodex_db", "path to BadgerDB database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	db, err := rolodex.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ingester, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer ingester.Release()

	ctx := context.Background()

	for _, seed := range seedData {
		person := seed.person
		// Content-derived IDs keep person records stable across reseeding
		person.Id = core.IDFromContent(person.FirstName + " " + person.LastName)
		stored, err := db.PersonRepository().AddPersons(ctx, &person)
		if err != nil {
			panic(err)
		}
		for _, text := range seed.notes {
			if _, err := ingester.IngestNote(ctx, stored[0].Id, text); err != nil {
				panic(err)
			}
		}
	}

	// Let background fact extraction finish before closing
	ingester.Wait()

	total, err := db.PersonRepository().Count(ctx)
	if err != nil {
		panic(err)
	}
	slog.Info("seed complete", "persons", total)
}

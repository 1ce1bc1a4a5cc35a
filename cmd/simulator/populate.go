package main

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	sampleTriggers = []string{"", "Lack of sleep", "Stress", "Missed medication", "Flashing lights", "Alcohol", "Illness"}
	sampleNames    = []struct{ first, last string }{
		{"Ada", "Lovelace"},
		{"Alan", "Turing"},
		{"Grace", "Hopper"},
		{"Edsger", "Dijkstra"},
		{"Barbara", "Liskov"},
		{"Ken", "Thompson"},
	}
)

type populateOptions struct {
	Seizures int
	Contacts int
	Days     int
	Now      time.Time
	Rand     *rand.Rand
}

type populateResult struct {
	Seizures int
	Contacts int
}

// populate records sample seizures and contacts using the server's own
// vocabulary, so every record passes validation.
func populate(client *APIClient, session *Session, opts populateOptions) (populateResult, error) {
	var result populateResult

	seizureTypes, err := client.SeizureTypes()
	if err != nil {
		return result, err
	}
	if opts.Seizures > 0 && len(seizureTypes) == 0 {
		return result, fmt.Errorf("server has no seizure types")
	}

	for i := 0; i < opts.Seizures; i++ {
		offset := time.Duration(opts.Rand.Int63n(int64(opts.Days) * int64(24*time.Hour)))
		seizure := Seizure{
			Date:   opts.Now.Add(-offset).UTC().Truncate(time.Second),
			Length: SeizureLength{
				Minutes: opts.Rand.Intn(5),
				Seconds: opts.Rand.Intn(60),
			},
			SeizureType: seizureTypes[opts.Rand.Intn(len(seizureTypes))].Name,
			Trigger:     sampleTriggers[opts.Rand.Intn(len(sampleTriggers))],
		}

		created, err := client.CreateSeizure(session, seizure)
		if err != nil {
			return result, fmt.Errorf("seizure %d: %w", i+1, err)
		}
		result.Seizures++
		fmt.Printf("  [%d/%d] %s %s\n", i+1, opts.Seizures, created.Date.Format("2006-01-02 15:04"), created.SeizureType)
	}

	if opts.Contacts == 0 {
		return result, nil
	}

	contactTypes, err := client.ContactTypes()
	if err != nil {
		return result, err
	}
	if len(contactTypes) == 0 {
		return result, fmt.Errorf("server has no contact types")
	}

	for i := 0; i < opts.Contacts; i++ {
		name := sampleNames[i%len(sampleNames)]
		contact := Contact{
			ContactType:      contactTypes[i%len(contactTypes)].Name,
			ContactFirstName: name.first,
			ContactSurname:   name.last,
			PhoneNumber:      fmt.Sprintf("+4670%07d", opts.Rand.Intn(10000000)),
		}

		created, err := client.CreateContact(session, contact)
		if err != nil {
			return result, fmt.Errorf("contact %d: %w", i+1, err)
		}
		result.Contacts++
		fmt.Printf("  [%d/%d] %s %s (%s)\n", i+1, opts.Contacts, created.ContactFirstName, created.ContactSurname, created.Category)
	}

	return result, nil
}

package pipedrive

// Demo fixtures returned when the integration is unconfigured. They are
// shape-identical to live payloads so downstream consumers never branch
// on mode; the demo_mode flag on the envelope is the only difference.

// DemoOrganization returns a representative organization for the
// requested id.
func DemoOrganization(id int) *Organization {
	return &Organization{
		ID:          id,
		Name:        "Acme Corp (demo)",
		Address:     "1 Demo Plaza, Sampletown",
		OwnerName:   "Dana Demo",
		PeopleCount: 2,
	}
}

// DemoPersons returns representative persons linked to the requested org.
func DemoPersons(id int) []Person {
	return []Person{
		{
			ID:    9001,
			Name:  "Taylor Example",
			Email: "taylor@example.com",
			Phone: "+1 555 0100",
			OrgID: &OrgRef{Value: id, Name: "Acme Corp (demo)"},
		},
		{
			ID:    9002,
			Name:  "Morgan Sample",
			Email: "morgan@example.com",
			OrgID: &OrgRef{Value: id, Name: "Acme Corp (demo)"},
		},
	}
}

// DemoDeals returns representative deals linked to the requested org.
func DemoDeals(id int) []Deal {
	return []Deal{
		{
			ID:       7001,
			Title:    "Annual license renewal",
			Value:    12000,
			Currency: "USD",
			Status:   "open",
			OrgID:    &OrgRef{Value: id, Name: "Acme Corp (demo)"},
			PersonID: &PersonRef{Value: 9001, Name: "Taylor Example"},
		},
		{
			ID:       7002,
			Title:    "Onboarding package",
			Value:    3500,
			Currency: "USD",
			Status:   "won",
			OrgID:    &OrgRef{Value: id, Name: "Acme Corp (demo)"},
		},
	}
}

// DemoActivities returns representative activities linked to the
// requested org.
func DemoActivities(id int) []Activity {
	return []Activity{
		{
			ID:      5001,
			Subject: "Kickoff call",
			Type:    "call",
			Done:    true,
			DueDate: "2026-08-12",
			OrgID:   id,
		},
		{
			ID:      5002,
			Subject: "Send renewal proposal",
			Type:    "email",
			Done:    false,
			DueDate: "2026-09-15",
			OrgID:   id,
		},
	}
}

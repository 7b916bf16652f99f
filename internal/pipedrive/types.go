package pipedrive

// OrgRef is how Pipedrive embeds an organization foreign key on list
// items: an object whose value field carries the numeric id.
type OrgRef struct {
	Value int    `json:"value"`
	Name  string `json:"name,omitempty"`
}

// PersonRef is the person foreign key on deals. It is a different
// relationship from the org linkage and the two must never be conflated
// when narrowing a collection.
type PersonRef struct {
	Value int    `json:"value"`
	Name  string `json:"name,omitempty"`
}

type Organization struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	OwnerName   string `json:"owner_name,omitempty"`
	PeopleCount int    `json:"people_count,omitempty"`
}

type Person struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email,omitempty"`
	Phone string  `json:"phone,omitempty"`
	OrgID *OrgRef `json:"org_id"`
}

type Deal struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Value    float64    `json:"value,omitempty"`
	Currency string     `json:"currency,omitempty"`
	Status   string     `json:"status,omitempty"`
	OrgID    *OrgRef    `json:"org_id"`
	PersonID *PersonRef `json:"person_id"`
}

type Activity struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	Type    string `json:"type,omitempty"`
	Done    bool   `json:"done"`
	DueDate string `json:"due_date,omitempty"`
	OrgID   int    `json:"org_id"`
}

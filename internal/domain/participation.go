package domain

// Participation links one user to one event by name. Pairs are not
// unique, duplicate rows are possible and filtered by consumers.
type Participation struct {
	EventName       string
	ParticipantName string
}

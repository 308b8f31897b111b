package domain

// Record pairs a case's original source with the line fragments the
// notebook serializer stores for it
type Record struct {
	Source   string   `json:"source"`
	Expected []string `json:"expected"`
}

// ResultSet is the complete name-to-record mapping emitted as JSON
type ResultSet map[string]Record

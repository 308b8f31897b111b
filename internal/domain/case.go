package domain

// Case represents a single named fixture input
type Case struct {
	Name   string // Unique case identifier (JSON key in the output)
	Source string // Raw cell source, may be empty or contain newlines
}

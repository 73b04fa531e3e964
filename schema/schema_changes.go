package schema

// FileChange is one detected change in the repository.
type FileChange struct {
	File string     `json:"file"`
	Type ChangeType `json:"type"`
}

// ChangeSummary is the output of the change-detection collaborator.
// A zero value defaults all counts to 0 and is legal input to risk assessment.
type ChangeSummary struct {
	Total   int                `json:"total"`
	Recent  []FileChange       `json:"recent,omitempty"`
	ByType  map[ChangeType]int `json:"by_type,omitempty"`
	Commits int                `json:"commits"`
	Note    string             `json:"note,omitempty"` // Set when git was unavailable
}

// ChangesForFile returns how many detected changes touch the given path.
func (c ChangeSummary) ChangesForFile(path string) int {
	count := 0
	for _, ch := range c.Recent {
		if ch.File == path {
			count++
		}
	}
	return count
}

package mcptools

// SearchInput is the input schema for the search_entries MCP tool.
type SearchInput struct {
	Query string `json:"query" jsonschema-description:"Text to fuzzy match against entry titles and content"`
	Limit int    `json:"limit" jsonschema-description:"Maximum number of results to return"`
}

// SearchOutput is the output schema for the search_entries MCP tool.
type SearchOutput struct {
	Entries []EntryResult `json:"entries"`
}

// ListInput is the input schema for the list_entries MCP tool.
type ListInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema-description:"ISO date lower bound on last update (inclusive)"`
	EndDate   string `json:"end_date,omitempty" jsonschema-description:"ISO date upper bound on last update (inclusive)"`
	Locked    *bool  `json:"locked,omitempty" jsonschema-description:"Only locked (true) or only unlocked (false) entries"`
	Limit     int    `json:"limit" jsonschema-description:"Maximum number of results"`
}

// ListOutput is the output schema for the list_entries MCP tool.
type ListOutput struct {
	Entries []EntryResult `json:"entries"`
}

// EntryResult is the common output format for entry-related MCP tools.
type EntryResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Preview   string `json:"preview"`
	WordCount int    `json:"word_count"`
	Locked    bool   `json:"is_locked"`
	Updated   string `json:"updated"`
}

// GetEntryInput is the input schema for the get_entry MCP tool.
type GetEntryInput struct {
	ID string `json:"id" jsonschema-description:"Entry ID"`
}

// GetEntryOutput is the output schema for the get_entry MCP tool.
type GetEntryOutput struct {
	Entry   EntryResult `json:"entry"`
	Content string      `json:"content"`
	Created string      `json:"created"`
}

// RollInput is the input schema for the roll_prompt MCP tool.
type RollInput struct{}

// RollOutput is the output schema for the roll_prompt MCP tool.
type RollOutput struct {
	Noun    string `json:"noun"`
	Verb    string `json:"verb"`
	Emotion string `json:"emotion"`
	Prompt  string `json:"prompt"`
}

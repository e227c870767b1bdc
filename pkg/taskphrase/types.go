package taskphrase

// Priority is the urgency inferred from keywords. The zero value means no priority was detected.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsedTask is the structured guess for one transcript. Optional fields are empty when absent.
type ParsedTask struct {
	Title             string   `json:"title"`
	Priority          Priority `json:"priority,omitempty"`
	Category          string   `json:"category,omitempty"`
	DueDate           string   `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime           string   `json:"due_time,omitempty"` // HH:MM, 24h
	Description       string   `json:"description,omitempty"`
	IsValid           bool     `json:"is_valid"`
	OriginalText      string   `json:"original_text"`
	Confidence        int      `json:"confidence"` // 0-100
	ConfidenceReasons []string `json:"confidence_reasons"`
}

// extraction carries what each pipeline stage found, plus the spans title cleanup has to remove.
type extraction struct {
	isTaskCommand bool

	priority       Priority
	priorityHits   []string
	category       string
	categoryLabels []string

	dueDate   string
	dateMatch string
	dueTime   string
	timeMatch string

	description    string
	descriptionIdx int // index into descriptionPatterns, -1 when none matched
}

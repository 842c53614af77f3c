package models

// Snapshot payload types. JSON field names preserve the dashboard contract
// consumed by the frontend (camelCase), unlike the stored entities above.

// ProjectMeta is the project header of the snapshot, with progress toward
// the target word count.
type ProjectMeta struct {
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	TargetWordCount  int     `json:"targetWordCount"`
	CurrentWordCount int     `json:"currentWordCount"`
	GoalProgress     float64 `json:"goalProgress"` // percent, 0 when no target is set
}

// ProjectOverview holds flat per-entity counts and sums for a project.
type ProjectOverview struct {
	TotalDocuments     int `json:"totalDocuments"`
	TotalWords         int `json:"totalWords"`
	TotalCharacters    int `json:"totalCharacters"`
	WorldbuildingCount int `json:"worldbuildingCount"`
	TimelineEventCount int `json:"timelineEventCount"`
	TotalAIGenerations int `json:"totalAiGenerations"`
}

// StreakInfo carries consecutive-day streak results derived from document
// activity dates.
type StreakInfo struct {
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	LastActiveDate string `json:"lastActiveDate"` // YYYY-MM-DD, "" when no activity
}

// ProgressBucket is one fixed-granularity time bucket of session totals.
type ProgressBucket struct {
	BucketKey    string `json:"date"` // YYYY-MM-DD of the day/week/month start
	WordsWritten int    `json:"wordsWritten"`
	SessionCount int    `json:"sessionCount"`
}

// PeriodStats summarizes a trailing window of writing activity. AverageDaily
// divides by the fixed window length, so zero-activity days pull it down.
type PeriodStats struct {
	TotalWords        int     `json:"totalWords"`
	AverageDaily      float64 `json:"averageDaily"`
	MostProductiveDay string  `json:"mostProductiveDay,omitempty"` // weekday name
}

// WritingProgress is the time-bucketed productivity section of the snapshot.
type WritingProgress struct {
	Daily        []ProgressBucket `json:"daily"`
	Weekly       []ProgressBucket `json:"weekly"`
	Monthly      []ProgressBucket `json:"monthly"`
	WeeklyStats  PeriodStats      `json:"weeklyStats"`
	MonthlyStats PeriodStats      `json:"monthlyStats"`
	Streak       StreakInfo       `json:"streak"`
}

// RecentGeneration is one row of the recent AI-generation feed; the prompt is
// truncated for display.
type RecentGeneration struct {
	ID        string `json:"id"`
	Persona   string `json:"persona"`
	Prompt    string `json:"prompt"`
	CreatedAt string `json:"createdAt"`
}

// TokenUsagePoint is one day of the AI token/cost series, ascending by date.
type TokenUsagePoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Tokens int64   `json:"tokens"`
	Cost   float64 `json:"cost"`
}

// AIUsage is the AI-assistance section of the snapshot.
type AIUsage struct {
	TotalGenerations int                `json:"totalGenerations"`
	ByPersona        map[string]int     `json:"byPersona"`
	Recent           []RecentGeneration `json:"recent"`
	TokenUsage       []TokenUsagePoint  `json:"tokenUsage"`
	TotalTokensUsed  int64              `json:"totalTokensUsed"`
	EstimatedCost    float64            `json:"estimatedCost"`
}

// RecentActivityEntry is one activity-log row resolved to a display name.
type RecentActivityEntry struct {
	ID         string `json:"id"`
	UserName   string `json:"userName"`
	Action     string `json:"action"`
	EntityType string `json:"entityType"`
	CreatedAt  string `json:"createdAt"`
}

// Collaboration is the collaborator-activity section of the snapshot.
type Collaboration struct {
	TotalCollaborators  int                   `json:"totalCollaborators"`
	ActiveCollaborators int                   `json:"activeCollaborators"`
	RecentActivity      []RecentActivityEntry `json:"recentActivity"`
}

// Productivity holds session-duration stats and the consistency score.
type Productivity struct {
	AverageSessionDuration float64 `json:"averageSessionDuration"` // minutes
	TotalWritingTime       int     `json:"totalWritingTime"`       // minutes
	MostProductiveHour     int     `json:"mostProductiveHour"`     // 0-23
	ConsistencyScore       int     `json:"consistencyScore"`       // 0-100
}

// PublishingPromotion bundles the two externally-scored sections. The
// assembler merges whatever the scorers return verbatim.
type PublishingPromotion struct {
	Readiness   *ReadinessResult   `json:"readiness,omitempty"`
	Attribution *AttributionResult `json:"attribution,omitempty"`
}

// AnalyticsSnapshot is the single merged result of one analytics computation.
// It is assembled once and never mutated afterwards.
type AnalyticsSnapshot struct {
	ProjectID           string               `json:"projectId"`
	GeneratedAt         string               `json:"generatedAt"`
	Project             ProjectMeta          `json:"project"`
	Overview            ProjectOverview      `json:"overview"`
	Progress            WritingProgress      `json:"progress"`
	AIUsage             AIUsage              `json:"aiUsage"`
	Collaboration       Collaboration        `json:"collaboration"`
	Productivity        Productivity         `json:"productivity"`
	PublishingPromotion *PublishingPromotion `json:"publishingPromotion,omitempty"`
}

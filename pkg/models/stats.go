package models

// Stats holds the aggregate counts shown on the progress dashboard.
// Mastered, Learning and New partition the full card set.
type Stats struct {
	Total          int `json:"total"`
	Due            int `json:"due"`
	Mastered       int `json:"mastered"` // repetitions >= 5
	Learning       int `json:"learning"` // 0 < repetitions < 5
	New            int `json:"new"`      // repetitions == 0
	CompletedToday int `json:"completedToday"`
	Streak         int `json:"streak"`
}

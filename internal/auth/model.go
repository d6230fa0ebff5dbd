package auth

import "time"

// Profile is a registered Dishly user.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Points       int       `json:"points"`
	TotalReviews int       `json:"total_reviews"`
	TotalUploads int       `json:"total_uploads"`
	CreatedAt    time.Time `json:"created_at"`
}

type AchievementLevel struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
}

var AchievementLevels = []AchievementLevel{
	{Name: "Newcomer", Min: 0},
	{Name: "Bronze Critic", Min: 100},
	{Name: "Silver Critic", Min: 500},
	{Name: "Platinum Critic", Min: 1000},
}

// Progress is where a profile stands on the achievement ladder.
type Progress struct {
	Level   AchievementLevel  `json:"level"`
	Next    *AchievementLevel `json:"next,omitempty"`
	Percent float64           `json:"percent"`
}

func ProgressFor(points int) Progress {
	idx := 0
	for i, l := range AchievementLevels {
		if points >= l.Min {
			idx = i
		}
	}

	p := Progress{Level: AchievementLevels[idx], Percent: 100}
	if idx+1 < len(AchievementLevels) {
		next := AchievementLevels[idx+1]
		p.Next = &next
		p.Percent = min(100, float64(points)/float64(next.Min)*100)
	}
	return p
}

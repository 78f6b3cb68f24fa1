package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/goaltrack-lambda/internal/utils"
)

// GoalRow mirrors a row of the goals table. Timestamps and the id are
// assigned by the database, so gorm must never fill them in itself.
type GoalRow struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"column:title;not null"`
	Description *string   `gorm:"column:description"`
	Category    Category  `gorm:"column:category;not null"`
	Priority    Priority  `gorm:"column:priority;not null"`
	TargetDate  util.Date `gorm:"column:target_date;type:date;not null"`
	Progress    int       `gorm:"column:progress;not null"`
	Status      Status    `gorm:"column:status;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime:false;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime:false;default:now()"`
}

func (GoalRow) TableName() string {
	return "goals"
}

// Goal is the application-side record returned to callers.
type Goal struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	TargetDate  util.Date `json:"targetDate"`
	Progress    int       `json:"progress"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToGoal maps a storage row to a Goal. A NULL description becomes "".
func ToGoal(row GoalRow) Goal {
	description := ""
	if row.Description != nil {
		description = *row.Description
	}

	return Goal{
		ID:          row.ID,
		Title:       row.Title,
		Description: description,
		Category:    row.Category,
		Priority:    row.Priority,
		TargetDate:  row.TargetDate,
		Progress:    row.Progress,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

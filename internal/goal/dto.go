package goal

import (
	"strings"

	util "github.com/saulo-duarte/goaltrack-lambda/internal/utils"
)

// GoalInput describes a new goal. Nil optionals are left to storage defaults.
type GoalInput struct {
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Priority    *Priority `json:"priority,omitempty"`
	TargetDate  util.Date `json:"targetDate"`
	Progress    *int      `json:"progress,omitempty"`
	Status      *Status   `json:"status,omitempty"`
}

func (in GoalInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !in.Category.IsValid() {
		return invalidEnum("category", string(in.Category), AllCategories)
	}
	if in.TargetDate.IsZero() {
		return &ValidationError{Field: "targetDate", Reason: "must be a YYYY-MM-DD date"}
	}
	if in.Priority != nil && !in.Priority.IsValid() {
		return invalidEnum("priority", string(*in.Priority), AllPriorities)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return invalidEnum("status", string(*in.Status), AllStatuses)
	}
	return nil
}

// toRow builds the row to insert and the columns that were explicitly given.
func (in GoalInput) toRow() (GoalRow, []string) {
	row := GoalRow{
		Title:      in.Title,
		Category:   in.Category,
		TargetDate: in.TargetDate,
	}
	columns := []string{"title", "category", "target_date"}

	if in.Description != nil {
		row.Description = in.Description
		columns = append(columns, "description")
	}
	if in.Priority != nil {
		row.Priority = *in.Priority
		columns = append(columns, "priority")
	}
	if in.Progress != nil {
		row.Progress = clampProgress(*in.Progress)
		columns = append(columns, "progress")
	}
	if in.Status != nil {
		row.Status = *in.Status
		columns = append(columns, "status")
	}
	return row, columns
}

// UpdateGoalRequest is the PATCH body; absent keys are not changed.
type UpdateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *Category  `json:"category"`
	Priority    *Priority  `json:"priority"`
	TargetDate  *util.Date `json:"targetDate"`
	Progress    *int       `json:"progress"`
	Status      *Status    `json:"status"`
}

func (r UpdateGoalRequest) ToUpdate() *GoalUpdate {
	u := NewGoalUpdate()
	if r.Title != nil {
		u.SetTitle(*r.Title)
	}
	if r.Description != nil {
		u.SetDescription(*r.Description)
	}
	if r.Category != nil {
		u.SetCategory(*r.Category)
	}
	if r.Priority != nil {
		u.SetPriority(*r.Priority)
	}
	if r.TargetDate != nil {
		u.SetTargetDate(*r.TargetDate)
	}
	if r.Progress != nil {
		u.SetProgress(*r.Progress)
	}
	if r.Status != nil {
		u.SetStatus(*r.Status)
	}
	return u
}

package goal

import (
	"strings"

	util "github.com/saulo-duarte/goaltrack-lambda/internal/utils"
)

// Field names a goal attribute that a GoalUpdate can change.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldPriority    Field = "priority"
	FieldTargetDate  Field = "targetDate"
	FieldProgress    Field = "progress"
	FieldStatus      Field = "status"
)

// GoalUpdate is an explicit set of field changes. Fields never set are left
// untouched in storage; setting a field to its zero value writes that value.
type GoalUpdate struct {
	title       *string
	description *string
	category    *Category
	priority    *Priority
	targetDate  *util.Date
	progress    *int
	status      *Status
}

func NewGoalUpdate() *GoalUpdate {
	return &GoalUpdate{}
}

func (u *GoalUpdate) SetTitle(title string) *GoalUpdate {
	u.title = &title
	return u
}

func (u *GoalUpdate) SetDescription(description string) *GoalUpdate {
	u.description = &description
	return u
}

func (u *GoalUpdate) SetCategory(category Category) *GoalUpdate {
	u.category = &category
	return u
}

func (u *GoalUpdate) SetPriority(priority Priority) *GoalUpdate {
	u.priority = &priority
	return u
}

func (u *GoalUpdate) SetTargetDate(date util.Date) *GoalUpdate {
	u.targetDate = &date
	return u
}

// SetProgress clamps progress to [0,100].
func (u *GoalUpdate) SetProgress(progress int) *GoalUpdate {
	p := clampProgress(progress)
	u.progress = &p
	return u
}

func (u *GoalUpdate) SetStatus(status Status) *GoalUpdate {
	u.status = &status
	return u
}

func (u *GoalUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields lists the fields that are set, in declaration order.
func (u *GoalUpdate) Fields() []Field {
	if u == nil {
		return nil
	}
	var fields []Field
	if u.title != nil {
		fields = append(fields, FieldTitle)
	}
	if u.description != nil {
		fields = append(fields, FieldDescription)
	}
	if u.category != nil {
		fields = append(fields, FieldCategory)
	}
	if u.priority != nil {
		fields = append(fields, FieldPriority)
	}
	if u.targetDate != nil {
		fields = append(fields, FieldTargetDate)
	}
	if u.progress != nil {
		fields = append(fields, FieldProgress)
	}
	if u.status != nil {
		fields = append(fields, FieldStatus)
	}
	return fields
}

func (u *GoalUpdate) Validate() error {
	if u.title != nil && strings.TrimSpace(*u.title) == "" {
		return &ValidationError{Field: string(FieldTitle), Reason: "must not be empty"}
	}
	if u.category != nil && !u.category.IsValid() {
		return invalidEnum(string(FieldCategory), string(*u.category), AllCategories)
	}
	if u.priority != nil && !u.priority.IsValid() {
		return invalidEnum(string(FieldPriority), string(*u.priority), AllPriorities)
	}
	if u.status != nil && !u.status.IsValid() {
		return invalidEnum(string(FieldStatus), string(*u.status), AllStatuses)
	}
	if u.targetDate != nil && u.targetDate.IsZero() {
		return &ValidationError{Field: string(FieldTargetDate), Reason: "must be a YYYY-MM-DD date"}
	}
	return nil
}

// Columns returns the storage column assignments for the set fields.
func (u *GoalUpdate) Columns() map[string]interface{} {
	columns := make(map[string]interface{})
	for _, f := range u.Fields() {
		switch f {
		case FieldTitle:
			columns["title"] = *u.title
		case FieldDescription:
			columns["description"] = *u.description
		case FieldCategory:
			columns["category"] = *u.category
		case FieldPriority:
			columns["priority"] = *u.priority
		case FieldTargetDate:
			columns["target_date"] = *u.targetDate
		case FieldProgress:
			columns["progress"] = *u.progress
		case FieldStatus:
			columns["status"] = *u.status
		}
	}
	return columns
}

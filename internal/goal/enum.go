package goal

type Category string

const (
	CategoryFitness   Category = "fitness"
	CategoryCareer    Category = "career"
	CategoryPersonal  Category = "personal"
	CategoryFinancial Category = "financial"
	CategoryEducation Category = "education"
)

var AllCategories = []Category{
	CategoryFitness,
	CategoryCareer,
	CategoryPersonal,
	CategoryFinancial,
	CategoryEducation,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFitness, CategoryCareer, CategoryPersonal, CategoryFinancial, CategoryEducation:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var AllPriorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

var AllStatuses = []Status{
	StatusActive,
	StatusCompleted,
	StatusPaused,
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", invalidEnum("category", s, AllCategories)
	}
	return c, nil
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", invalidEnum("priority", s, AllPriorities)
	}
	return p, nil
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", invalidEnum("status", s, AllStatuses)
	}
	return st, nil
}

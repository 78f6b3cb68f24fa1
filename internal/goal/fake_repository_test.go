package goal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/goaltrack-lambda/internal/utils"
)

// memoryRepository behaves like the goals table: it owns ids, timestamps and
// column defaults, and serialises writes per call.
type memoryRepository struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]GoalRow
	clock   time.Time
	err     error
	created [][]string
	updated []map[string]interface{}
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		rows:  make(map[uuid.UUID]GoalRow),
		clock: time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memoryRepository) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memoryRepository) List(ctx context.Context) ([]GoalRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	rows := make([]GoalRow, 0, len(m.rows))
	for _, row := range m.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (m *memoryRepository) Create(ctx context.Context, row *GoalRow, columns []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, append([]string(nil), columns...))

	stored := GoalRow{
		ID:       uuid.New(),
		Priority: PriorityMedium,
		Status:   StatusActive,
	}
	empty := ""
	stored.Description = &empty
	for _, c := range columns {
		switch c {
		case "title":
			stored.Title = row.Title
		case "description":
			stored.Description = row.Description
		case "category":
			stored.Category = row.Category
		case "priority":
			stored.Priority = row.Priority
		case "target_date":
			stored.TargetDate = row.TargetDate
		case "progress":
			stored.Progress = row.Progress
		case "status":
			stored.Status = row.Status
		}
	}
	now := m.tick()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	m.rows[stored.ID] = stored
	*row = stored
	return nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*GoalRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (m *memoryRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) (*GoalRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.updated = append(m.updated, columns)

	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range columns {
		switch k {
		case "title":
			row.Title = v.(string)
		case "description":
			d := v.(string)
			row.Description = &d
		case "category":
			row.Category = v.(Category)
		case "priority":
			row.Priority = v.(Priority)
		case "target_date":
			row.TargetDate = v.(util.Date)
		case "progress":
			row.Progress = v.(int)
		case "status":
			row.Status = v.(Status)
		}
	}
	row.UpdatedAt = m.tick()
	m.rows[id] = row
	return &row, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

package entity

import "time"

type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewTodo struct {
	Title       string
	Description *string
}

// TodoPatch describes a partial update. Fields that are not Set are left untouched.
type TodoPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
}

func (p TodoPatch) Empty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Completed.Set
}

// Apply copies the patch onto t. Null fields are treated as absent.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title.Present() {
		t.Title = p.Title.Value
	}
	if p.Description.Present() {
		d := p.Description.Value
		t.Description = &d
	}
	if p.Completed.Present() {
		t.Completed = p.Completed.Value
	}
}

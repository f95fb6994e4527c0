package domain

// seedTasks is the fixed board contents used on first load and on reset.
var seedTasks = []Task{
	{
		ID:          "1",
		Title:       "Design UI Components",
		Description: "Create beautiful and reusable UI components",
		Status:      StatusDoing,
		Priority:    PriorityHigh,
		DueDate:     "2026-02-20",
		Tags:        []string{"design", "ui"},
		CreatedAt:   "2026-02-10",
	},
	{
		ID:          "2",
		Title:       "Setup Database",
		Description: "Configure PostgreSQL database and migrations",
		Status:      StatusDone,
		Priority:    PriorityHigh,
		DueDate:     "2026-02-15",
		Tags:        []string{"backend", "database"},
		CreatedAt:   "2026-02-08",
	},
	{
		ID:          "3",
		Title:       "API Integration",
		Description: "Integrate REST API endpoints",
		Status:      StatusTodo,
		Priority:    PriorityMedium,
		DueDate:     "2026-02-22",
		Tags:        []string{"api", "backend"},
		CreatedAt:   "2026-02-10",
	},
	{
		ID:          "4",
		Title:       "Testing",
		Description: "Write unit and integration tests",
		Status:      StatusTodo,
		Priority:    PriorityMedium,
		DueDate:     "2026-02-25",
		Tags:        []string{"testing", "qa"},
		CreatedAt:   "2026-02-11",
	},
	{
		ID:          "5",
		Title:       "Documentation",
		Description: "Complete project documentation",
		Status:      StatusTodo,
		Priority:    PriorityLow,
		DueDate:     "2026-03-10",
		Tags:        []string{"documentation"},
		CreatedAt:   "2026-02-11",
	},
}

// SeedTasks returns a fresh copy of the initial task set
func SeedTasks() []Task {
	tasks := make([]Task, len(seedTasks))
	copy(tasks, seedTasks)
	return tasks
}

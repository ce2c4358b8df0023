package codec

import "github.com/dtroode/taskboard-server/internal/model"

// Storage keys of the task collection.
const (
	TaskFieldTitle       = "title"
	TaskFieldDescription = "description"
	TaskFieldUserID      = "user_id"
	TaskFieldTodo        = "todo"
)

// Task is the field table of model.Task.
var Task = NewSchema(
	Field[model.Task]{
		Get: func(t *model.Task) string { return t.ID },
		Set: func(t *model.Task, v string) { t.ID = v },
	},
	Field[model.Task]{
		Key: TaskFieldTitle,
		Get: func(t *model.Task) string { return t.Title },
		Set: func(t *model.Task, v string) { t.Title = v },
	},
	Field[model.Task]{
		Key: TaskFieldDescription,
		Get: func(t *model.Task) string { return t.Description },
		Set: func(t *model.Task, v string) { t.Description = v },
	},
	Field[model.Task]{
		Key: TaskFieldUserID,
		Get: func(t *model.Task) string { return t.UserID },
		Set: func(t *model.Task, v string) { t.UserID = v },
	},
	Field[model.Task]{
		Key: TaskFieldTodo,
		Get: func(t *model.Task) string { return t.Todo },
		Set: func(t *model.Task, v string) { t.Todo = v },
	},
)

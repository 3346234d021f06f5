package planka

import "context"

// CreateTaskList creates a checklist on a card. fields may carry "position".
func (c *Client) CreateTaskList(ctx context.Context, cardID, name string, fields Fields) (TaskList, error) {
	var out itemEnvelope[TaskList]
	if err := c.post(ctx, "/api/cards/"+cardID+"/task-lists", withName(name, fields), &out); err != nil {
		return TaskList{}, err
	}
	return out.Item, nil
}

// UpdateTaskList patches the supplied fields on a checklist.
func (c *Client) UpdateTaskList(ctx context.Context, taskListID string, fields Fields) (TaskList, error) {
	var out itemEnvelope[TaskList]
	if err := c.patch(ctx, "/api/task-lists/"+taskListID, fields, &out); err != nil {
		return TaskList{}, err
	}
	return out.Item, nil
}

// DeleteTaskList deletes a checklist and its tasks.
func (c *Client) DeleteTaskList(ctx context.Context, taskListID string) error {
	return c.delete(ctx, "/api/task-lists/"+taskListID)
}

// CreateTask creates a task in a checklist. fields may carry "position".
func (c *Client) CreateTask(ctx context.Context, taskListID, name string, fields Fields) (Task, error) {
	var out itemEnvelope[Task]
	if err := c.post(ctx, "/api/task-lists/"+taskListID+"/tasks", withName(name, fields), &out); err != nil {
		return Task{}, err
	}
	return out.Item, nil
}

// UpdateTask patches the supplied fields on a task. Completion state is
// toggled by sending only {"isCompleted": bool}.
func (c *Client) UpdateTask(ctx context.Context, taskID string, fields Fields) (Task, error) {
	var out itemEnvelope[Task]
	if err := c.patch(ctx, "/api/tasks/"+taskID, fields, &out); err != nil {
		return Task{}, err
	}
	return out.Item, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.delete(ctx, "/api/tasks/"+taskID)
}

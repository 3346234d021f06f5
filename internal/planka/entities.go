package planka

import "encoding/json"

// Entities mirror the resource types returned by the Planka API. IDs are
// server-assigned opaque strings and are never generated client-side.

// Project is a top-level container of boards.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Board is a kanban board belonging to a project.
type Board struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ProjectID string  `json:"projectId"`
	Position  float64 `json:"position"`
}

// List is an ordered column on a board.
type List struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position float64 `json:"position"`
	BoardID  string  `json:"boardId"`
}

// Card is a task item within a list.
type Card struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DueDate     string  `json:"dueDate"`
	Position    float64 `json:"position"`
	ListID      string  `json:"listId"`
	BoardID     string  `json:"boardId"`
}

// Comment is a text comment attached to a card.
type Comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CardID    string `json:"cardId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// Label is a colored tag defined on a board and attachable to cards.
type Label struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	BoardID  string  `json:"boardId"`
	Position float64 `json:"position"`
}

// CardLabel is the association between a card and a label.
type CardLabel struct {
	ID      string `json:"id"`
	CardID  string `json:"cardId"`
	LabelID string `json:"labelId"`
}

// TaskList is a checklist attached to a card.
type TaskList struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	CardID   string  `json:"cardId"`
	Position float64 `json:"position"`
}

// Task is a single checklist item.
type Task struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IsCompleted bool    `json:"isCompleted"`
	TaskListID  string  `json:"taskListId"`
	Position    float64 `json:"position"`
}

// User is a Planka account.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Notification is an unread/read event addressed to the current user.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	IsRead    bool   `json:"isRead"`
	UserID    string `json:"userId"`
	CardID    string `json:"cardId"`
	CreatedAt string `json:"createdAt"`
}

// Action is one entry in a board or card activity feed. Data carries
// type-specific detail the server does not document uniformly, so it is
// kept raw.
type Action struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	UserID    string          `json:"userId"`
	CreatedAt string          `json:"createdAt"`
	Data      json.RawMessage `json:"data"`
}

// BoardDetail is a board together with the lists and cards the server
// sideloads under "included".
type BoardDetail struct {
	Board Board  `json:"board"`
	Lists []List `json:"lists"`
	Cards []Card `json:"cards"`
}

package planka

import (
	"context"
	"net/http"
	"testing"
)

// TestOperationRoutes pins every client operation to its method and
// route, so a refactor cannot silently point an operation at the wrong
// endpoint.
func TestOperationRoutes(t *testing.T) {
	tests := []struct {
		name   string
		call   func(ctx context.Context, c *Client) error
		method string
		path   string
	}{
		{
			name:   "Logout",
			call:   func(ctx context.Context, c *Client) error { return c.Logout(ctx) },
			method: http.MethodDelete, path: "/api/access-tokens/me",
		},
		{
			name: "Project",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Project(ctx, "1")
				return err
			},
			method: http.MethodGet, path: "/api/projects/1",
		},
		{
			name: "CreateProject",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateProject(ctx, "Work")
				return err
			},
			method: http.MethodPost, path: "/api/projects",
		},
		{
			name: "UpdateProject",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateProject(ctx, "1", Fields{"name": "Home"})
				return err
			},
			method: http.MethodPatch, path: "/api/projects/1",
		},
		{
			name:   "DeleteProject",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteProject(ctx, "1") },
			method: http.MethodDelete, path: "/api/projects/1",
		},
		{
			name: "CreateBoard",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateBoard(ctx, "1", "Sprint", nil)
				return err
			},
			method: http.MethodPost, path: "/api/projects/1/boards",
		},
		{
			name: "UpdateBoard",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateBoard(ctx, "2", Fields{"name": "Sprint 2"})
				return err
			},
			method: http.MethodPatch, path: "/api/boards/2",
		},
		{
			name:   "DeleteBoard",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteBoard(ctx, "2") },
			method: http.MethodDelete, path: "/api/boards/2",
		},
		{
			name: "CreateList",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateList(ctx, "2", "Todo", nil)
				return err
			},
			method: http.MethodPost, path: "/api/boards/2/lists",
		},
		{
			name: "UpdateList",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateList(ctx, "3", Fields{"name": "Doing"})
				return err
			},
			method: http.MethodPatch, path: "/api/lists/3",
		},
		{
			name:   "DeleteList",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteList(ctx, "3") },
			method: http.MethodDelete, path: "/api/lists/3",
		},
		{
			name:   "SortList",
			call:   func(ctx context.Context, c *Client) error { return c.SortList(ctx, "3") },
			method: http.MethodPost, path: "/api/lists/3/sort",
		},
		{
			name: "Cards",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Cards(ctx, "3")
				return err
			},
			method: http.MethodGet, path: "/api/lists/3/cards",
		},
		{
			name: "DuplicateCard",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DuplicateCard(ctx, "4", nil)
				return err
			},
			method: http.MethodPost, path: "/api/cards/4/duplicate",
		},
		{
			name:   "DeleteCard",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteCard(ctx, "4") },
			method: http.MethodDelete, path: "/api/cards/4",
		},
		{
			name: "Comments",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Comments(ctx, "4")
				return err
			},
			method: http.MethodGet, path: "/api/cards/4/comments",
		},
		{
			name: "CreateComment",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateComment(ctx, "4", "Looks good")
				return err
			},
			method: http.MethodPost, path: "/api/cards/4/comments",
		},
		{
			name: "UpdateComment",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateComment(ctx, "5", "Edited")
				return err
			},
			method: http.MethodPatch, path: "/api/comments/5",
		},
		{
			name:   "DeleteComment",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteComment(ctx, "5") },
			method: http.MethodDelete, path: "/api/comments/5",
		},
		{
			name: "CreateLabel",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateLabel(ctx, "2", "Bug", "berry-red", nil)
				return err
			},
			method: http.MethodPost, path: "/api/boards/2/labels",
		},
		{
			name: "UpdateLabel",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateLabel(ctx, "6", Fields{"name": "Defect"})
				return err
			},
			method: http.MethodPatch, path: "/api/labels/6",
		},
		{
			name:   "DeleteLabel",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteLabel(ctx, "6") },
			method: http.MethodDelete, path: "/api/labels/6",
		},
		{
			name: "AddLabelToCard",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AddLabelToCard(ctx, "4", "6")
				return err
			},
			method: http.MethodPost, path: "/api/cards/4/card-labels",
		},
		{
			name: "CreateTaskList",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateTaskList(ctx, "4", "Checklist", nil)
				return err
			},
			method: http.MethodPost, path: "/api/cards/4/task-lists",
		},
		{
			name: "UpdateTaskList",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateTaskList(ctx, "7", Fields{"name": "Steps"})
				return err
			},
			method: http.MethodPatch, path: "/api/task-lists/7",
		},
		{
			name:   "DeleteTaskList",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteTaskList(ctx, "7") },
			method: http.MethodDelete, path: "/api/task-lists/7",
		},
		{
			name: "CreateTask",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateTask(ctx, "7", "Review", nil)
				return err
			},
			method: http.MethodPost, path: "/api/task-lists/7/tasks",
		},
		{
			name:   "DeleteTask",
			call:   func(ctx context.Context, c *Client) error { return c.DeleteTask(ctx, "8") },
			method: http.MethodDelete, path: "/api/tasks/8",
		},
		{
			name: "Users",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Users(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/users",
		},
		{
			name: "User",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.User(ctx, "9")
				return err
			},
			method: http.MethodGet, path: "/api/users/9",
		},
		{
			name: "Notifications",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Notifications(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/notifications",
		},
		{
			name:   "MarkAllNotificationsRead",
			call:   func(ctx context.Context, c *Client) error { return c.MarkAllNotificationsRead(ctx) },
			method: http.MethodPost, path: "/api/notifications/read-all",
		},
		{
			name: "BoardActions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.BoardActions(ctx, "2")
				return err
			},
			method: http.MethodGet, path: "/api/boards/2/actions",
		},
		{
			name: "CardActions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CardActions(ctx, "4")
				return err
			},
			method: http.MethodGet, path: "/api/cards/4/actions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, requests := newTestServer(t, http.StatusOK, map[string]any{
				"item":  map[string]any{},
				"items": []any{},
			})

			client := New(server.URL, "tok")
			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}

			req := (*requests)[0]
			if req.Method != tt.method || req.Path != tt.path {
				t.Errorf("request = %s %s, want %s %s", req.Method, req.Path, tt.method, tt.path)
			}
		})
	}
}

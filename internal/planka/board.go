package planka

import (
	"context"
	"encoding/json"
	"fmt"
)

// CreateBoard creates a board in a project. fields may carry "position".
func (c *Client) CreateBoard(ctx context.Context, projectID, name string, fields Fields) (Board, error) {
	var out itemEnvelope[Board]
	if err := c.post(ctx, "/api/projects/"+projectID+"/boards", withName(name, fields), &out); err != nil {
		return Board{}, err
	}
	return out.Item, nil
}

// Board fetches a board together with its sideloaded lists and cards.
func (c *Client) Board(ctx context.Context, boardID string) (BoardDetail, error) {
	var out itemEnvelope[Board]
	if err := c.get(ctx, "/api/boards/"+boardID, &out); err != nil {
		return BoardDetail{}, err
	}

	detail := BoardDetail{Board: out.Item}
	if len(out.Included) > 0 {
		var included struct {
			Lists []List `json:"lists"`
			Cards []Card `json:"cards"`
		}
		if err := json.Unmarshal(out.Included, &included); err != nil {
			return BoardDetail{}, fmt.Errorf("decode included entities: %w", err)
		}
		detail.Lists = included.Lists
		detail.Cards = included.Cards
	}
	return detail, nil
}

// UpdateBoard patches the supplied fields on a board.
func (c *Client) UpdateBoard(ctx context.Context, boardID string, fields Fields) (Board, error) {
	var out itemEnvelope[Board]
	if err := c.patch(ctx, "/api/boards/"+boardID, fields, &out); err != nil {
		return Board{}, err
	}
	return out.Item, nil
}

// DeleteBoard deletes a board.
func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	return c.delete(ctx, "/api/boards/"+boardID)
}

// withName merges the required name into the optional fields without
// mutating the caller's map.
func withName(name string, fields Fields) Fields {
	merged := Fields{"name": name}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

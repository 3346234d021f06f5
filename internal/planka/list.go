package planka

import "context"

// CreateList creates a list on a board. fields may carry "position".
func (c *Client) CreateList(ctx context.Context, boardID, name string, fields Fields) (List, error) {
	var out itemEnvelope[List]
	if err := c.post(ctx, "/api/boards/"+boardID+"/lists", withName(name, fields), &out); err != nil {
		return List{}, err
	}
	return out.Item, nil
}

// UpdateList patches the supplied fields on a list.
func (c *Client) UpdateList(ctx context.Context, listID string, fields Fields) (List, error) {
	var out itemEnvelope[List]
	if err := c.patch(ctx, "/api/lists/"+listID, fields, &out); err != nil {
		return List{}, err
	}
	return out.Item, nil
}

// DeleteList deletes a list and its cards.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.delete(ctx, "/api/lists/"+listID)
}

// SortList asks the server to sort the cards of a list.
func (c *Client) SortList(ctx context.Context, listID string) error {
	return c.post(ctx, "/api/lists/"+listID+"/sort", nil, nil)
}

// Cards lists the cards of a list.
func (c *Client) Cards(ctx context.Context, listID string) ([]Card, error) {
	var out itemsEnvelope[Card]
	if err := c.get(ctx, "/api/lists/"+listID+"/cards", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

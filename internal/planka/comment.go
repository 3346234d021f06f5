package planka

import "context"

// Comments lists the comments on a card.
func (c *Client) Comments(ctx context.Context, cardID string) ([]Comment, error) {
	var out itemsEnvelope[Comment]
	if err := c.get(ctx, "/api/cards/"+cardID+"/comments", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateComment adds a comment to a card.
func (c *Client) CreateComment(ctx context.Context, cardID, text string) (Comment, error) {
	var out itemEnvelope[Comment]
	if err := c.post(ctx, "/api/cards/"+cardID+"/comments", Fields{"text": text}, &out); err != nil {
		return Comment{}, err
	}
	return out.Item, nil
}

// UpdateComment replaces the text of a comment.
func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (Comment, error) {
	var out itemEnvelope[Comment]
	if err := c.patch(ctx, "/api/comments/"+commentID, Fields{"text": text}, &out); err != nil {
		return Comment{}, err
	}
	return out.Item, nil
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.delete(ctx, "/api/comments/"+commentID)
}

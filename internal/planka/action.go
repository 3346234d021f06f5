package planka

import "context"

// BoardActions returns the activity feed of a board, newest first as
// returned by the server. No pagination beyond the server's default page.
func (c *Client) BoardActions(ctx context.Context, boardID string) ([]Action, error) {
	var out itemsEnvelope[Action]
	if err := c.get(ctx, "/api/boards/"+boardID+"/actions", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CardActions returns the activity feed of a card.
func (c *Client) CardActions(ctx context.Context, cardID string) ([]Action, error) {
	var out itemsEnvelope[Action]
	if err := c.get(ctx, "/api/cards/"+cardID+"/actions", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

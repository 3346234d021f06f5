package planka

import "context"

// CreateCard creates a card in a list. fields may carry "description",
// "position" or "dueDate".
func (c *Client) CreateCard(ctx context.Context, listID, name string, fields Fields) (Card, error) {
	var out itemEnvelope[Card]
	if err := c.post(ctx, "/api/lists/"+listID+"/cards", withName(name, fields), &out); err != nil {
		return Card{}, err
	}
	return out.Item, nil
}

// Card fetches a single card.
func (c *Client) Card(ctx context.Context, cardID string) (Card, error) {
	var out itemEnvelope[Card]
	if err := c.get(ctx, "/api/cards/"+cardID, &out); err != nil {
		return Card{}, err
	}
	return out.Item, nil
}

// UpdateCard patches the supplied fields on a card.
func (c *Client) UpdateCard(ctx context.Context, cardID string, fields Fields) (Card, error) {
	var out itemEnvelope[Card]
	if err := c.patch(ctx, "/api/cards/"+cardID, fields, &out); err != nil {
		return Card{}, err
	}
	return out.Item, nil
}

// MoveCard moves a card to another list. fields may carry "position".
func (c *Client) MoveCard(ctx context.Context, cardID, listID string, fields Fields) (Card, error) {
	merged := Fields{"listId": listID}
	for k, v := range fields {
		merged[k] = v
	}
	return c.UpdateCard(ctx, cardID, merged)
}

// DuplicateCard copies a card within its list. fields may carry "position".
func (c *Client) DuplicateCard(ctx context.Context, cardID string, fields Fields) (Card, error) {
	var out itemEnvelope[Card]
	if err := c.post(ctx, "/api/cards/"+cardID+"/duplicate", fields, &out); err != nil {
		return Card{}, err
	}
	return out.Item, nil
}

// DeleteCard deletes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.delete(ctx, "/api/cards/"+cardID)
}

package planka

import "context"

// CreateLabel creates a label on a board. fields may carry "position".
func (c *Client) CreateLabel(ctx context.Context, boardID, name, color string, fields Fields) (Label, error) {
	merged := withName(name, fields)
	merged["color"] = color
	var out itemEnvelope[Label]
	if err := c.post(ctx, "/api/boards/"+boardID+"/labels", merged, &out); err != nil {
		return Label{}, err
	}
	return out.Item, nil
}

// UpdateLabel patches the supplied fields on a label.
func (c *Client) UpdateLabel(ctx context.Context, labelID string, fields Fields) (Label, error) {
	var out itemEnvelope[Label]
	if err := c.patch(ctx, "/api/labels/"+labelID, fields, &out); err != nil {
		return Label{}, err
	}
	return out.Item, nil
}

// DeleteLabel deletes a label from its board.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	return c.delete(ctx, "/api/labels/"+labelID)
}

// AddLabelToCard attaches an existing label to a card.
func (c *Client) AddLabelToCard(ctx context.Context, cardID, labelID string) (CardLabel, error) {
	var out itemEnvelope[CardLabel]
	if err := c.post(ctx, "/api/cards/"+cardID+"/card-labels", Fields{"labelId": labelID}, &out); err != nil {
		return CardLabel{}, err
	}
	return out.Item, nil
}

// RemoveLabelFromCard detaches a label from a card. The route addresses
// the association by label id, not by association id.
func (c *Client) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error {
	return c.delete(ctx, "/api/cards/"+cardID+"/card-labels/labelId:"+labelID)
}

package planka

import "context"

// Notifications lists the current user's notifications.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var out itemsEnvelope[Notification]
	if err := c.get(ctx, "/api/notifications", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/api/notifications/read-all", nil, nil)
}

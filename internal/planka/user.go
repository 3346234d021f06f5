package planka

import "context"

// Users lists all users on the server.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out itemsEnvelope[User]
	if err := c.get(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// User fetches a single user.
func (c *Client) User(ctx context.Context, userID string) (User, error) {
	var out itemEnvelope[User]
	if err := c.get(ctx, "/api/users/"+userID, &out); err != nil {
		return User{}, err
	}
	return out.Item, nil
}

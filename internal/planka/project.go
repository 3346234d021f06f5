package planka

import "context"

// Projects lists all projects visible to the authenticated user.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out itemsEnvelope[Project]
	if err := c.get(ctx, "/api/projects", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Project fetches a single project.
func (c *Client) Project(ctx context.Context, projectID string) (Project, error) {
	var out itemEnvelope[Project]
	if err := c.get(ctx, "/api/projects/"+projectID, &out); err != nil {
		return Project{}, err
	}
	return out.Item, nil
}

// CreateProject creates a project with the given name.
func (c *Client) CreateProject(ctx context.Context, name string) (Project, error) {
	var out itemEnvelope[Project]
	if err := c.post(ctx, "/api/projects", Fields{"name": name}, &out); err != nil {
		return Project{}, err
	}
	return out.Item, nil
}

// UpdateProject patches the supplied fields on a project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, fields Fields) (Project, error) {
	var out itemEnvelope[Project]
	if err := c.patch(ctx, "/api/projects/"+projectID, fields, &out); err != nil {
		return Project{}, err
	}
	return out.Item, nil
}

// DeleteProject deletes a project and everything in it.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.delete(ctx, "/api/projects/"+projectID)
}

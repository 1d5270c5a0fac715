package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// DefaultIssueQuery is the search used by ListIssues when none is given.
const DefaultIssueQuery = "is:unresolved"

// GetIssue returns the details of an issue.
func (c *Client) GetIssue(ctx context.Context, issueID string) (json.RawMessage, error) {
	return c.Get(ctx, fmt.Sprintf("/organizations/%s/issues/%s/",
		url.PathEscape(c.organization), url.PathEscape(issueID)))
}

// GetIssueLatestEvent returns the most recent event of an issue.
func (c *Client) GetIssueLatestEvent(ctx context.Context, issueID string) (json.RawMessage, error) {
	return c.Get(ctx, fmt.Sprintf("/issues/%s/events/latest/", url.PathEscape(issueID)))
}

// GetIssueEvents returns the first page of events of an issue.
func (c *Client) GetIssueEvents(ctx context.Context, issueID string) (json.RawMessage, error) {
	return c.Get(ctx, fmt.Sprintf("/issues/%s/events/", url.PathEscape(issueID)))
}

// GetIssueHashes returns the fingerprint hashes grouped into an issue.
func (c *Client) GetIssueHashes(ctx context.Context, issueID string) (json.RawMessage, error) {
	return c.Get(ctx, fmt.Sprintf("/issues/%s/hashes/", url.PathEscape(issueID)))
}

// ListProjects returns the first page of projects in the organization.
func (c *Client) ListProjects(ctx context.Context) (json.RawMessage, error) {
	return c.Get(ctx, fmt.Sprintf("/organizations/%s/projects/", url.PathEscape(c.organization)))
}

// ListIssues returns the first page of issues in a project matching query.
// An empty query means DefaultIssueQuery.
func (c *Client) ListIssues(ctx context.Context, projectSlug, query string) (json.RawMessage, error) {
	if query == "" {
		query = DefaultIssueQuery
	}
	params := url.Values{}
	params.Set("query", query)
	return c.Get(ctx, fmt.Sprintf("/projects/%s/%s/issues/?%s",
		url.PathEscape(c.organization), url.PathEscape(projectSlug), params.Encode()))
}

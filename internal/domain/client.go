package domain

import "time"

// Client is the hiring company a role belongs to.
type Client struct {
	ID              string
	Name            string
	Company         string
	Status          ClientStatus
	OnboardingDate  *time.Time
	LastContactDate *time.Time
}

// DisplayName prefers the company name.
func (c *Client) DisplayName() string {
	return CoalesceStr(c.Company, c.Name, c.ID)
}

package models

import (
	"context"
	"encoding/json"
)

// User is the record served by the users endpoint. The schema belongs to the
// remote API; Company is kept raw so it can be reported as received.
type User struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Company  json.RawMessage `json:"company"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// CompanyInfo decodes the raw company object. A missing company yields a zero Company.
func (u User) CompanyInfo() (Company, error) {
	var c Company
	if len(u.Company) == 0 {
		return c, nil
	}
	err := json.Unmarshal(u.Company, &c)
	return c, err
}

type Job struct {
	ID   string
	Name string
	Run  func(ctx context.Context) error
}

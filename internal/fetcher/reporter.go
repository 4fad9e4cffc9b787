package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Reporter prints a user's name and company, or a single error line.
type Reporter struct {
	users  UserService
	out    io.Writer
	errOut io.Writer
}

func NewReporter(users UserService, out, errOut io.Writer) *Reporter {
	return &Reporter{
		users:  users,
		out:    out,
		errOut: errOut,
	}
}

// Report fetches user id once. On success it writes the Name and Company lines
// to out; on any failure it writes one "Fetch error:" line to errOut and
// returns the error. Nothing reaches out unless the whole fetch succeeded.
func (r *Reporter) Report(ctx context.Context, id int) error {
	user, err := r.users.GetUser(ctx, id)
	if err != nil {
		fmt.Fprintf(r.errOut, "Fetch error: %v\n", err)
		return err
	}

	if c, err := user.CompanyInfo(); err == nil {
		slog.Debug("Fetched user", "userID", id, "name", user.Name, "company", c.Name)
	}
	fmt.Fprintf(r.out, "Name: %s\n", user.Name)
	fmt.Fprintf(r.out, "Company: %s\n", renderRaw(user.Company))
	return nil
}

// renderRaw prints a JSON value compactly, as received. Absent values print as null.
func renderRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

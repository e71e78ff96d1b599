// Package sqlgen renders synthetic comment rows as a single SQL INSERT
// statement and writes it to disk.
package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/eleven-am/commentseed/internal/seed"
)

// DefaultTable is the target table of the emitted statement
const DefaultTable = "comments"

// Columns in the order every tuple is rendered
var Columns = []string{"id", "user_id", "tweet_id", "body", "likes", "replies"}

// Header returns the INSERT prefix, including the trailing newline
func Header(table string) string {
	if table == "" {
		table = DefaultTable
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES\n", table, strings.Join(Columns, ", "))
}

// FormatTuple renders one row as a parenthesized value list
func FormatTuple(r seed.Row) string {
	return fmt.Sprintf("(%d, %d, %d, %s, %d, %d)",
		r.ID, r.UserID, r.TweetID, QuoteLiteral(r.Body), r.Likes, r.Replies)
}

// BuildInsert concatenates all rows into one statement terminated by ";\n"
func BuildInsert(table string, rows []seed.Row) string {
	tuples := make([]string, len(rows))
	for i, row := range rows {
		tuples[i] = FormatTuple(row)
	}

	var b strings.Builder
	b.WriteString(Header(table))
	b.WriteString(strings.Join(tuples, ",\n"))
	b.WriteString(";\n")
	return b.String()
}

// InsertBuilder returns the rows as a parameterized insert. Anything sent
// to a live database goes through here rather than BuildInsert.
func InsertBuilder(table string, rows []seed.Row) squirrel.InsertBuilder {
	if table == "" {
		table = DefaultTable
	}

	query := squirrel.Insert(table).Columns(Columns...)
	for _, r := range rows {
		query = query.Values(r.ID, r.UserID, r.TweetID, r.Body, r.Likes, r.Replies)
	}
	return query
}

// ParseInsert reads back a statement produced by BuildInsert
func ParseInsert(table, payload string) ([]seed.Row, error) {
	header := Header(table)
	if !strings.HasPrefix(payload, header) {
		return nil, fmt.Errorf("%w: missing header %q", ErrMalformedInsert, strings.TrimSpace(header))
	}

	rest := payload[len(header):]
	rows := []seed.Row{}
	if rest == ";\n" {
		return rows, nil
	}
	for {
		row, remaining, err := readTuple(rest)
		if err != nil {
			return nil, fmt.Errorf("tuple %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)

		switch {
		case strings.HasPrefix(remaining, ",\n"):
			rest = remaining[2:]
		case remaining == ";\n":
			return rows, nil
		default:
			return nil, fmt.Errorf("%w: unexpected input after tuple %d", ErrMalformedInsert, len(rows))
		}
	}
}

func readTuple(s string) (seed.Row, string, error) {
	var row seed.Row

	if !strings.HasPrefix(s, "(") {
		return row, s, fmt.Errorf("%w: expected '('", ErrMalformedInsert)
	}
	s = s[1:]

	ints := []*int{&row.ID, &row.UserID, &row.TweetID}
	for _, dst := range ints {
		var err error
		if *dst, s, err = readInt(s, ", "); err != nil {
			return row, s, err
		}
	}

	body, s, err := readLiteral(s)
	if err != nil {
		return row, s, err
	}
	row.Body = body
	if !strings.HasPrefix(s, ", ") {
		return row, s, fmt.Errorf("%w: expected separator after body", ErrMalformedInsert)
	}
	s = s[2:]

	if row.Likes, s, err = readInt(s, ", "); err != nil {
		return row, s, err
	}
	if row.Replies, s, err = readInt(s, ")"); err != nil {
		return row, s, err
	}

	return row, s, nil
}

func readInt(s, sep string) (int, string, error) {
	end := strings.Index(s, sep)
	if end < 0 {
		return 0, s, fmt.Errorf("%w: expected %q", ErrMalformedInsert, sep)
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, fmt.Errorf("%w: %v", ErrMalformedInsert, err)
	}
	return n, s[end+len(sep):], nil
}

// Verify checks that payload is exactly the statement for want
func Verify(table, payload string, want []seed.Row) error {
	got, err := ParseInsert(table, payload)
	if err != nil {
		return &Error{Op: "verify", Err: err}
	}

	if len(got) != len(want) {
		return &Error{
			Op:  "verify",
			Err: fmt.Errorf("%w: got %d rows, want %d", ErrVerifyMismatch, len(got), len(want)),
		}
	}

	for i := range want {
		if got[i] != want[i] {
			return &Error{
				Op:  "verify",
				Row: want[i].ID,
				Err: fmt.Errorf("%w: got %s, want %s", ErrVerifyMismatch, FormatTuple(got[i]), FormatTuple(want[i])),
			}
		}
	}

	if payload != BuildInsert(table, want) {
		return &Error{Op: "verify", Err: fmt.Errorf("%w: output is not byte-identical", ErrVerifyMismatch)}
	}

	return nil
}

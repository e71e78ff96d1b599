// Package seed synthesizes the deterministic placeholder rows for the
// comments table.
package seed

import (
	"errors"
	"fmt"
)

// Default generation constants
const (
	DefaultTweets   = 100
	DefaultPerTweet = 2
	DefaultUsers    = 10
)

// Generation limits. Variant tags run A..Z, so a tweet holds at most 26
// comments.
const (
	MaxPerTweet = 26
	MaxRows     = 1_000_000
)

var ErrInvalidParams = errors.New("invalid generation parameters")

// Row is one synthetic comment record
type Row struct {
	ID      int    `db:"id"`
	UserID  int    `db:"user_id"`
	TweetID int    `db:"tweet_id"`
	Body    string `db:"body"`
	Likes   int    `db:"likes"`
	Replies int    `db:"replies"`
}

// Params controls how many rows are produced
type Params struct {
	Tweets   int `yaml:"tweets"`
	PerTweet int `yaml:"per_tweet"`
	Users    int `yaml:"users"`
}

// DefaultParams returns the fixed constants: 100 tweets, 2 comments each,
// user ids cycling through 1..10.
func DefaultParams() Params {
	return Params{
		Tweets:   DefaultTweets,
		PerTweet: DefaultPerTweet,
		Users:    DefaultUsers,
	}
}

// Validate rejects parameters that cannot be generated: negative values,
// more comments per tweet than there are variant tags, or more than MaxRows
// rows in total. Zero tweets or zero comments per tweet are valid and yield
// no rows.
func (p Params) Validate() error {
	if p.Tweets < 0 || p.PerTweet < 0 || p.Users < 0 {
		return fmt.Errorf("%w: tweets=%d per_tweet=%d users=%d must not be negative",
			ErrInvalidParams, p.Tweets, p.PerTweet, p.Users)
	}
	if p.PerTweet > MaxPerTweet {
		return fmt.Errorf("%w: per_tweet=%d exceeds %d", ErrInvalidParams, p.PerTweet, MaxPerTweet)
	}
	if p.PerTweet > 0 && p.Tweets > MaxRows/p.PerTweet {
		return fmt.Errorf("%w: tweets=%d per_tweet=%d exceeds %d rows",
			ErrInvalidParams, p.Tweets, p.PerTweet, MaxRows)
	}
	if p.Users == 0 && p.Tweets > 0 && p.PerTweet > 0 {
		return fmt.Errorf("%w: users must be positive", ErrInvalidParams)
	}
	return nil
}

// Count returns the number of rows Generate produces for p, which is zero
// whenever Validate fails.
func (p Params) Count() int {
	if p.Validate() != nil || p.Users == 0 {
		return 0
	}
	return p.Tweets * p.PerTweet
}

// Generate builds the rows in id order. Every field is a pure function of the
// tweet id and the position of the comment under that tweet. Params that fail
// Validate yield no rows.
func Generate(p Params) []Row {
	n := p.Count()
	rows := make([]Row, 0, n)
	if n == 0 {
		return rows
	}

	for tweetID := 1; tweetID <= p.Tweets; tweetID++ {
		for position := 0; position < p.PerTweet; position++ {
			id := (tweetID-1)*p.PerTweet + position + 1
			rows = append(rows, Row{
				ID:      id,
				UserID:  UserFor(id, p.Users),
				TweetID: tweetID,
				Body:    Body(tweetID, position),
				Likes:   LikesFor(id),
				Replies: RepliesFor(id),
			})
		}
	}

	return rows
}

// UserFor cycles ids through 1..users. It returns 0 when users is not
// positive.
func UserFor(id, users int) int {
	if users <= 0 {
		return 0
	}
	return ((id - 1) % users) + 1
}

// LikesFor returns a like count in [0,99]
func LikesFor(id int) int {
	return (id * 7) % 100
}

// RepliesFor returns a reply count in [0,9]
func RepliesFor(id int) int {
	return (id * 3) % 10
}

// Variant returns the tag distinguishing comments on the same tweet:
// "A" for the first, "B" for the second, up to "Z" at position 25.
// Positions outside 0..MaxPerTweet-1 return "".
func Variant(position int) string {
	if position < 0 || position >= MaxPerTweet {
		return ""
	}
	return string(rune('A' + position))
}

// Body formats the text of the comment at position under tweetID
func Body(tweetID, position int) string {
	return fmt.Sprintf("Comment %s on tweet %d: thoughts related to tweet #%d", Variant(position), tweetID, tweetID)
}

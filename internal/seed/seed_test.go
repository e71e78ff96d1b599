package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaults(t *testing.T) {
	rows := Generate(DefaultParams())
	require.Len(t, rows, 200)

	t.Run("ids are contiguous and ascending", func(t *testing.T) {
		for i, row := range rows {
			assert.Equal(t, i+1, row.ID)
		}
	})

	t.Run("derived columns", func(t *testing.T) {
		for _, row := range rows {
			assert.Equal(t, ((row.ID-1)%10)+1, row.UserID)
			assert.Equal(t, (row.ID*7)%100, row.Likes)
			assert.Equal(t, (row.ID*3)%10, row.Replies)

			assert.GreaterOrEqual(t, row.UserID, 1)
			assert.LessOrEqual(t, row.UserID, 10)
			assert.GreaterOrEqual(t, row.Likes, 0)
			assert.LessOrEqual(t, row.Likes, 99)
			assert.GreaterOrEqual(t, row.Replies, 0)
			assert.LessOrEqual(t, row.Replies, 9)
		}
	})

	t.Run("two comments per tweet", func(t *testing.T) {
		byTweet := make(map[int][]Row)
		for _, row := range rows {
			byTweet[row.TweetID] = append(byTweet[row.TweetID], row)
		}

		require.Len(t, byTweet, 100)
		for tweetID := 1; tweetID <= 100; tweetID++ {
			comments := byTweet[tweetID]
			require.Len(t, comments, 2, "tweet %d", tweetID)
			assert.True(t, strings.HasPrefix(comments[0].Body, "Comment A "))
			assert.True(t, strings.HasPrefix(comments[1].Body, "Comment B "))
		}
	})

	t.Run("first and last rows", func(t *testing.T) {
		assert.Equal(t, Row{
			ID:      1,
			UserID:  1,
			TweetID: 1,
			Body:    "Comment A on tweet 1: thoughts related to tweet #1",
			Likes:   7,
			Replies: 3,
		}, rows[0])

		assert.Equal(t, Row{
			ID:      200,
			UserID:  10,
			TweetID: 100,
			Body:    "Comment B on tweet 100: thoughts related to tweet #100",
			Likes:   0,
			Replies: 0,
		}, rows[199])
	})
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, Generate(DefaultParams()), Generate(DefaultParams()))
}

func TestGenerateCustomParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{name: "single tweet", params: Params{Tweets: 1, PerTweet: 2, Users: 10}, want: 2},
		{name: "three per tweet", params: Params{Tweets: 4, PerTweet: 3, Users: 5}, want: 12},
		{name: "zero tweets", params: Params{Tweets: 0, PerTweet: 2, Users: 10}, want: 0},
		{name: "negative per tweet", params: Params{Tweets: 10, PerTweet: -1, Users: 10}, want: 0},
		{name: "zero users", params: Params{Tweets: 10, PerTweet: 2, Users: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Generate(tt.params)
			assert.Len(t, rows, tt.want)
			assert.Equal(t, tt.want, tt.params.Count())
			for i, row := range rows {
				assert.Equal(t, i+1, row.ID)
				assert.LessOrEqual(t, row.UserID, tt.params.Users)
			}
		})
	}
}

func TestVariant(t *testing.T) {
	assert.Equal(t, "A", Variant(0))
	assert.Equal(t, "B", Variant(1))
	assert.Equal(t, "C", Variant(2))
	assert.Equal(t, "Z", Variant(MaxPerTweet-1))
	assert.Empty(t, Variant(MaxPerTweet))
	assert.Empty(t, Variant(40))
	assert.Empty(t, Variant(-1))

	for _, row := range Generate(Params{Tweets: 1, PerTweet: MaxPerTweet, Users: 10}) {
		tag := row.Body[len("Comment ") : len("Comment ")+1]
		assert.GreaterOrEqual(t, tag, "A")
		assert.LessOrEqual(t, tag, "Z")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{name: "defaults", params: DefaultParams()},
		{name: "zero tweets", params: Params{Tweets: 0, PerTweet: 2, Users: 10}},
		{name: "max per tweet", params: Params{Tweets: 10, PerTweet: MaxPerTweet, Users: 10}},
		{name: "exactly max rows", params: Params{Tweets: MaxRows / 2, PerTweet: 2, Users: 10}},
		{name: "negative tweets", params: Params{Tweets: -1, PerTweet: 2, Users: 10}, wantErr: true},
		{name: "too many per tweet", params: Params{Tweets: 1, PerTweet: MaxPerTweet + 1, Users: 10}, wantErr: true},
		{name: "over max rows", params: Params{Tweets: MaxRows/2 + 1, PerTweet: 2, Users: 10}, wantErr: true},
		{name: "product overflows to negative", params: Params{Tweets: 1 << 62, PerTweet: 2, Users: 10}, wantErr: true},
		{name: "product wraps to zero", params: Params{Tweets: 1 << 40, PerTweet: 1 << 30, Users: 10}, wantErr: true},
		{name: "zero users", params: Params{Tweets: 1, PerTweet: 2, Users: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParams)
			assert.Zero(t, tt.params.Count())
			assert.NotPanics(t, func() {
				assert.Empty(t, Generate(tt.params))
			})
		})
	}
}

func TestUserForWithoutUsers(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Zero(t, UserFor(5, 0))
	})
	assert.Equal(t, 5, UserFor(15, 10))
}

func TestBody(t *testing.T) {
	assert.Equal(t, "Comment B on tweet 42: thoughts related to tweet #42", Body(42, 1))
	assert.NotContains(t, Body(7, 0), "'")
}

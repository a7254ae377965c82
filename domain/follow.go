package domain

import (
	"context"
	"time"
)

// Follow is one follower→followee edge. Unfollowing deletes the row;
// re-following creates a fresh one.
type Follow struct {
	ID         int64
	FollowerID int64
	FolloweeID int64
	CreatedAt  time.Time
}

// FollowRepository owns the user↔user follow relation.
type FollowRepository interface {
	// GetFollowees returns all edges where the given user is the follower.
	GetFollowees(ctx context.Context, followerID int64) ([]Follow, error)

	// Follow inserts a new edge. It does not dedupe; callers check for an
	// existing edge first, the unique constraint on the pair is the
	// backstop against concurrent duplicates.
	Follow(ctx context.Context, followerID, followeeID int64) (Follow, error)

	// Unfollow deletes the matching edge, returning its snapshot.
	// Returns ErrNotFound if no edge exists.
	Unfollow(ctx context.Context, followerID, followeeID int64) (Follow, error)
}

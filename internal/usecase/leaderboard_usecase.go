package usecase

import (
	"context"
	"sort"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
)

// LeaderboardEntry ranks one user by learned-word volume.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Learned  int    `json:"learned"`
	Mastered int    `json:"mastered"`
}

// LeaderboardUsecase aggregates read-only progress counts across every user
// with a stored snapshot. It never writes.
type LeaderboardUsecase interface {
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// NewLeaderboardUsecase wires the progress repository.
func NewLeaderboardUsecase(progress repository.ProgressRepository) LeaderboardUsecase {
	return &leaderboardUsecase{progress: progress}
}

type leaderboardUsecase struct {
	progress repository.ProgressRepository
}

func (u *leaderboardUsecase) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := u.progress.Users(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, userID := range users {
		progress, err := u.progress.Load(ctx, userID)
		if err != nil {
			return nil, err
		}
		entry := LeaderboardEntry{UserID: userID}
		for _, p := range progress {
			if p.Untouched() || p.Status == entity.StatusNew {
				continue
			}
			entry.Learned++
			if p.Status == entity.StatusMastered {
				entry.Mastered++
			}
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Learned != entries[j].Learned {
			return entries[i].Learned > entries[j].Learned
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries, nil
}

// Package repository contains the blob-store-backed implementations of the
// persistence interfaces in internal/repository. Every save writes the full
// snapshot for its key, and each repository keeps the latest state in memory
// so a failed write-through never loses the mutation: the caller sees
// entity.ErrPersistence, the state stands, and the next successful save
// repairs the stored copy.
package repository

import (
	"fmt"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
)

const (
	catalogKey    = "catalog/books"
	timeOffsetKey = "system/time_offset"
	userPrefix    = "users/"
)

func progressKey(userID string) string { return userPrefix + userID + "/progress" }
func planKey(userID string) string     { return userPrefix + userID + "/plan" }
func dayStateKey(userID string) string { return userPrefix + userID + "/day" }
func historyKey(userID string) string  { return userPrefix + userID + "/history" }

func persistErr(err error) error {
	return fmt.Errorf("%w: %v", entity.ErrPersistence, err)
}

package models

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

// Known reports whether d is one of the fixed difficulty values. Unknown
// values are still stored and displayed as-is.
func (d Difficulty) Known() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Short returns the one-letter label used in compact tables.
func (d Difficulty) Short() string {
	switch d {
	case Easy:
		return "E"
	case Medium:
		return "M"
	case Hard:
		return "H"
	}
	if d == "" {
		return "?"
	}
	return string([]rune(string(d))[:1])
}

type Topic string

const (
	ArraysHashing      Topic = "Arrays & Hashing"
	TwoPointers        Topic = "Two Pointers"
	LinkedList         Topic = "Linked List"
	SlidingWindow      Topic = "Sliding Window"
	Stack              Topic = "Stack"
	BinarySearch       Topic = "Binary Search"
	Trees              Topic = "Trees"
	HeapPriorityQueue  Topic = "Heap / Priority Queue"
	Backtracking       Topic = "Backtracking"
	Graphs             Topic = "Graphs"
	DynamicProgramming Topic = "Dynamic Programming"

	// UnknownTopic is used for legacy records that carry no topic at all.
	UnknownTopic Topic = "Unknown"
)

var Topics = []Topic{
	ArraysHashing, TwoPointers, LinkedList, SlidingWindow, Stack, BinarySearch,
	Trees, HeapPriorityQueue, Backtracking, Graphs, DynamicProgramming,
}

var shortTopics = map[Topic]string{
	ArraysHashing:      "Arr & Hash",
	TwoPointers:        "2 Ptr",
	LinkedList:         "Linked List",
	SlidingWindow:      "Sliding Win",
	Stack:              "Stack",
	BinarySearch:       "Bin Search",
	Trees:              "Trees",
	HeapPriorityQueue:  "Heap",
	Backtracking:       "Backtrack",
	Graphs:             "Graphs",
	DynamicProgramming: "DP",
}

func (t Topic) Known() bool {
	_, ok := shortTopics[t]
	return ok
}

// Short returns the abbreviated label, or the raw value for unknown topics.
func (t Topic) Short() string {
	if s, ok := shortTopics[t]; ok {
		return s
	}
	return string(t)
}

type Status string

const (
	Active   Status = "Active"
	Mastered Status = "Mastered"
)

// Problem is one practice record. Title is the unique key; it is compared
// case-sensitively and cannot be renamed.
type Problem struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Difficulty      Difficulty `json:"difficulty"`
	Topic           Topic      `json:"topic"`
	DateSolved      Date       `json:"date_solved"`
	LastReviewed    Date       `json:"last_reviewed"`
	ReviewStage     int        `json:"review_stage"`
	NextReview      Date       `json:"next_review"`
	Status          Status     `json:"status"`
	URL             string     `json:"url"`
	BestTimeSeconds *int       `json:"best_time_seconds"`
}

// IsDue reports whether p should appear in the due-today list.
func (p Problem) IsDue(today Date) bool {
	return p.Status == Active && !p.NextReview.After(today)
}

// ProgressBar renders the review stage as filled and empty boxes out of maxStage.
func (p Problem) ProgressBar(maxStage int) string {
	filled := min(max(p.ReviewStage, 0), maxStage)
	return "[" + strings.Repeat("■", filled) + strings.Repeat("□", maxStage-filled) + "]"
}

// BestTime formats the best solve time as mm:ss.
func (p Problem) BestTime() string {
	if p.BestTimeSeconds == nil {
		return "--:--"
	}
	return FormatDuration(*p.BestTimeSeconds)
}

func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

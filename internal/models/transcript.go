package models

import "time"

type Transcript struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

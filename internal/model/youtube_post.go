package model

import "time"

type YoutubePost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	YoutubeID   string    `json:"youtube_id"`
	YoutubeURL  string    `json:"youtube_url"`
	CreatedAt   time.Time `json:"created_at"`
}

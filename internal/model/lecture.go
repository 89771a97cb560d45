package model

import "time"

type Lecture struct {
	ID        int64     `json:"id"`
	Course    string    `json:"course"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Attended  bool      `json:"attended"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

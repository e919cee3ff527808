package domain

import "eventboard/internal/core/board"

// ViewInput is the query of the events endpoint
type ViewInput struct {
	Category string `query:"category" validate:"omitempty,max=64,printascii"`
}

// ViewResp is the JSON form of a View
type ViewResp struct {
	Category  string       `json:"category"`
	Events    []Event      `json:"events"`
	Counts    board.Counts `json:"counts"`
	LoadError string       `json:"load_error,omitempty"`
	Meta      LoadMeta     `json:"meta"`
}

// Category is one catalog entry with its count on the loaded board
type Category struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	ReferenceURL string `json:"reference_url,omitempty"`
	Count        int    `json:"count"`
}

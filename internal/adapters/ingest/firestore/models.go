package firestore

import (
	"time"

	pstrings "eventboard/internal/platform/strings"
)

// Value is a Firestore typed value. Only the variants the board reads are decoded
type Value struct {
	StringValue    *string `json:"stringValue,omitempty"`
	IntegerValue   *string `json:"integerValue,omitempty"` // int64 travels as a string
	BooleanValue   *bool   `json:"booleanValue,omitempty"`
	TimestampValue *string `json:"timestampValue,omitempty"`
	NullValue      *string `json:"nullValue,omitempty"`
}

// Document is one entry of a list documents page
type Document struct {
	Name       string           `json:"name"`
	CreateTime string           `json:"createTime"`
	UpdateTime string           `json:"updateTime"`
	Fields     map[string]Value `json:"fields"`
}

// ID returns the final segment of the document resource name
func (d Document) ID() string { return pstrings.LastSegment(d.Name) }

// String returns the string value of field, or "" when absent or not a string
func (d Document) String(field string) string {
	if v, ok := d.Fields[field]; ok && v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

// Created parses CreateTime
func (d Document) Created() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, d.CreateTime)
}

// ListResponse is one page of a list documents call
type ListResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken"`
}

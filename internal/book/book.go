package book

import (
	"strings"
	"time"
)

// Book is a single shelf entry.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the list projection of a Book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Summarize projects b to its list view.
func (b Book) Summarize() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Payload is the request body for create and update. A nil field was absent
// from the request.
type Payload struct {
	Name      *string `json:"name" validate:"required,min=1"`
	Year      *int    `json:"year"`
	Author    *string `json:"author"`
	Summary   *string `json:"summary"`
	Publisher *string `json:"publisher"`
	PageCount *int    `json:"pageCount"`
	ReadPage  *int    `json:"readPage"`
	Reading   *bool   `json:"reading"`
}

// newBook builds a record from p; absent fields take their zero value.
func newBook(id string, p Payload, now time.Time) Book {
	b := Book{
		ID:         id,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	p.applyTo(&b)
	b.Finished = b.ReadPage == b.PageCount
	return b
}

// applyTo overwrites the fields of b that are present in p. Finished is
// left alone.
func (p Payload) applyTo(b *Book) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Summary != nil {
		b.Summary = *p.Summary
	}
	if p.Publisher != nil {
		b.Publisher = *p.Publisher
	}
	if p.PageCount != nil {
		b.PageCount = *p.PageCount
	}
	if p.ReadPage != nil {
		b.ReadPage = *p.ReadPage
	}
	if p.Reading != nil {
		b.Reading = *p.Reading
	}
}

// Filter narrows List. Nil tri-state fields are not applied.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

// Match reports whether b passes every set filter.
func (f Filter) Match(b Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

// ParseFlag maps the query literals "1" and "0" to true and false. Any other
// value, including empty, yields nil so the filter is skipped.
func ParseFlag(v string) *bool {
	switch v {
	case "1":
		t := true
		return &t
	case "0":
		f := false
		return &f
	default:
		return nil
	}
}

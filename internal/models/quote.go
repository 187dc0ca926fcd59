package models

import "fmt"

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Message formats the quote the way it is shown in the celebration banner.
func (q Quote) Message() string {
	if q.Author == "" {
		return fmt.Sprintf("\"%s\"", q.Content)
	}
	return fmt.Sprintf("\"%s\" - %s", q.Content, q.Author)
}

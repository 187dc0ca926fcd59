package models

type Verse struct {
	Number int    `json:"verse"`
	Text   string `json:"text"`
}

type Chapter struct {
	Book      string  `json:"book"`
	Number    int     `json:"chapter"`
	Reference string  `json:"reference"`
	Verses    []Verse `json:"verses"`
}

package models

type Stats struct {
	Total    int `json:"total"`
	Due      int `json:"due"`
	Mastered int `json:"mastered"`
}

// Settings is the user configuration document. Keys other than the ones
// this program reads are kept untouched.
type Settings map[string]string

const ThemeKey = "theme"

package models

type Config struct {
	Placeholder string `json:"placeholder"`
	ItemsFile   string `json:"items_file"`
}

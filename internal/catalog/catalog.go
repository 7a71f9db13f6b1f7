package catalog

// Author is a row of the authors relation.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Genre is a row of the genres relation.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

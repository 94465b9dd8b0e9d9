package models

// OMDb wire types. JSON keys are passed through to clients unchanged, so the
// capitalized field names are part of this API's contract too.

type OmdbSearchResponse struct {
	Search       []OmdbSearchItem `json:"Search"`
	TotalResults string           `json:"totalResults,omitempty"`
	Response     string           `json:"Response"`
	Error        string           `json:"Error,omitempty"`
}

type OmdbSearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type OmdbDetailResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`

	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	BoxOffice  string `json:"BoxOffice,omitempty"`
}

package models

// DistanceMatrixResponse is the wire shape of a travel-matrix call:
// one row per origin, one element per destination.
type DistanceMatrixResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Rows         []DistanceMatrixRow `json:"rows"`
}

type DistanceMatrixRow struct {
	Elements []DistanceMatrixElement `json:"elements"`
}

type DistanceMatrixElement struct {
	Status   string      `json:"status"`
	Distance MatrixValue `json:"distance"`
	Duration MatrixValue `json:"duration"`
}

// MatrixValue carries the raw provider unit: meters for distances,
// seconds for durations.
type MatrixValue struct {
	Value int64  `json:"value"`
	Text  string `json:"text,omitempty"`
}

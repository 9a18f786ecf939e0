package api

type PayloadError struct {
	Errors interface{} `json:"error"`
}

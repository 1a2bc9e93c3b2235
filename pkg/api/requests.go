package api

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

// UpdateAlertStatusRequest is the body of POST /alerts/:id/status.
type UpdateAlertStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

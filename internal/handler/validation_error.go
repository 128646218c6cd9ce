package handler

import "net/http"

// validationDetail mirrors one entry of a FastAPI 422 "detail" list, which
// existing frontends already parse.
type validationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type validationErrorResponse struct {
	Detail []validationDetail `json:"detail"`
}

func writeUnprocessable(w http.ResponseWriter, details []validationDetail) {
	writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Detail: details})
}

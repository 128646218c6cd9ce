package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mmi-portfolio/backend/internal/model"
	"github.com/mmi-portfolio/backend/internal/service"
)

const maxContactBodyBytes = 64 << 10

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact. Pointers
// tell a missing field apart from an empty one.
type submitRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
	Source  *string `json:"source"`
}

type submitResponse struct {
	OK   bool   `json:"ok"`
	Note string `json:"note,omitempty"`
}

// Submit handles POST /api/contact.
// A well-formed body always gets 200 {"ok": true}; when the message could
// not be stored a note says why. Only malformed bodies get 422.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var req submitRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeUnprocessable(w, decodeDetails(err))
		return
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		writeUnprocessable(w, []validationDetail{{
			Loc:  []string{"body"},
			Msg:  "Extra data after JSON object",
			Type: "value_error.jsondecode",
		}})
		return
	}
	if details := req.missingFields(); len(details) > 0 {
		writeUnprocessable(w, details)
		return
	}

	msg := &model.Message{
		Name:    *req.Name,
		Email:   *req.Email,
		Message: *req.Message,
		Source:  req.Source,
	}

	resp := submitResponse{OK: true}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.WarnContext(r.Context(), "contact message not stored",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
			"invalid", model.IsValidationError(err),
		)
		resp.Note = service.StorageNote(err)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (req *submitRequest) missingFields() []validationDetail {
	var details []validationDetail
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"message", req.Message},
	} {
		if f.value == nil {
			details = append(details, validationDetail{
				Loc:  []string{"body", f.name},
				Msg:  "field required",
				Type: "value_error.missing",
			})
		}
	}
	return details
}

func decodeDetails(err error) []validationDetail {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return []validationDetail{{
			Loc:  []string{"body"},
			Msg:  "value is not a valid dict",
			Type: "type_error.dict",
		}}
	case errors.As(err, &typeErr):
		return []validationDetail{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "str type expected",
			Type: "type_error.str",
		}}
	case errors.As(err, &maxErr):
		return []validationDetail{{
			Loc:  []string{"body"},
			Msg:  "request body too large",
			Type: "value_error.toolarge",
		}}
	default:
		return []validationDetail{{
			Loc:  []string{"body"},
			Msg:  "Expecting value: " + err.Error(),
			Type: "value_error.jsondecode",
		}}
	}
}

package handler

import (
	"net/http"
)

// createLinkRequest is the body of POST /trips/{tripID}/links.
type createLinkRequest struct {
	Title string `json:"title" validate:"required,min=4"`
	URL   string `json:"url" validate:"required,url"`
}

// CreateLink handles POST /trips/{tripID}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body createLinkRequest
	if err := decodeJSON(r, &body); err != nil {
		respondValidation(w, err.Error())
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, validationMessage(err))
		return
	}

	link, err := s.links.Create(r.Context(), tripID, body.Title, body.URL)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"linkId": link.ID})
}

// GetLinks handles GET /trips/{tripID}/links.
func (s *Server) GetLinks(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

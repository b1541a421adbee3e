// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/recommend"
)

// multipartMemory is the in-memory budget for multipart form parsing.
const multipartMemory = 1 << 20

var (
	errNoInput   = errors.New("no input data")
	errMalformed = errors.New("malformed request body")
)

// recommendPayload is the JSON request body. Duration is raw so it can be a
// string or a number.
type recommendPayload struct {
	Subcategory string          `json:"subcategory"`
	Interest    string          `json:"interest"`
	CourseType  string          `json:"course_type"`
	Duration    json.RawMessage `json:"duration"`
}

// RecommendRequestDoc documents the request body for Swagger.
type RecommendRequestDoc struct {
	Subcategory string `json:"subcategory" example:"Machine Learning"`
	Interest    string `json:"interest,omitempty" example:"Machine Learning"`
	CourseType  string `json:"course_type" example:"Course"`
	Duration    string `json:"duration" example:"8"`
}

// Recommend predicts a category for the request and returns matching courses.
//
// @Summary Recommend courses
// @Description Predicts the course category for an interest, course type and maximum duration, then returns up to ten matching courses ordered by duration. Accepts JSON or form input; "interest" is an alias of "subcategory".
// @Tags Recommend
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param request body RecommendRequestDoc true "Recommendation request"
// @Success 200 {object} recommend.Result "Predicted category and courses"
// @Failure 400 {object} errorResponse "Missing or unrecognized input"
// @Failure 429 {object} errorResponse "Rate limited"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /recommend [post]
// @Router /v1/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRecommendRequest(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			respondError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		case errors.Is(err, errNoInput):
			respondError(w, http.StatusBadRequest, MsgNoInput)
		default:
			logging.Ctx(r.Context()).Debug().Str("error", sanitizeLogValue(err.Error())).Msg("Unparseable recommend request")
			respondError(w, http.StatusBadRequest, MsgMalformedBody)
		}
		return
	}

	ctx := r.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	result, err := h.engine.Recommend(ctx, req)
	if err != nil {
		status, message := statusForError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// decodeRecommendRequest reads a JSON or form request. Anything that is not a
// form is decoded as JSON.
func decodeRecommendRequest(r *http.Request) (recommend.Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r)
	default:
		return decodeJSON(r.Body)
	}
}

func decodeJSON(body io.Reader) (recommend.Request, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return recommend.Request{}, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return recommend.Request{}, errNoInput
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return recommend.Request{}, errors.Join(errMalformed, err)
	}
	if len(raw) == 0 {
		return recommend.Request{}, errNoInput
	}

	var payload recommendPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return recommend.Request{}, errors.Join(errMalformed, err)
	}

	return recommend.Request{
		Subcategory: firstNonBlank(payload.Subcategory, payload.Interest),
		CourseType:  payload.CourseType,
		Duration:    durationText(payload.Duration),
	}, nil
}

func decodeForm(r *http.Request) (recommend.Request, error) {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return recommend.Request{}, err
		}
		return recommend.Request{}, errors.Join(errMalformed, err)
	}
	if len(r.PostForm) == 0 {
		return recommend.Request{}, errNoInput
	}

	return recommend.Request{
		Subcategory: firstNonBlank(r.PostForm.Get("subcategory"), r.PostForm.Get("interest")),
		CourseType:  r.PostForm.Get("course_type"),
		Duration:    r.PostForm.Get("duration"),
	}, nil
}

// durationText renders a JSON duration as text for the engine. Strings are
// unquoted, numbers keep their literal form, null and absent are empty.
// Other JSON types are passed through and fail duration parsing.
func durationText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

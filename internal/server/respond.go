package server

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	bioerrors "github.com/FocuswithJustin/bible-io/core/errors"
	"github.com/FocuswithJustin/bible-io/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope map[string]any

// errTranslationNotFound is returned for an unknown translation ID.
var errTranslationNotFound = errors.New("translation not found")

// errorBody is the "error" member of a failure response.
type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// classify maps a lookup failure to an HTTP status and a stable kind string.
// Reference errors are checked first because they may wrap a book error.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, bioerrors.ErrInvalidReference):
		return http.StatusBadRequest, "invalid_reference"
	case errors.Is(err, errTranslationNotFound):
		return http.StatusNotFound, "translation_not_found"
	case errors.Is(err, bioerrors.ErrUnknownBook):
		return http.StatusNotFound, "unknown_book"
	case errors.Is(err, bioerrors.ErrBookNotPresent):
		return http.StatusNotFound, "book_not_present"
	case errors.Is(err, bioerrors.ErrChapterOutOfRange):
		return http.StatusNotFound, "chapter_out_of_range"
	case errors.Is(err, bioerrors.ErrVerseOutOfRange):
		return http.StatusNotFound, "verse_out_of_range"
	}
	return http.StatusInternalServerError, "internal"
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	if err := writeJSON(w, status, envelope{"error": errorBody{Kind: kind, Message: message}}, nil); err != nil {
		logging.LoggerFromContext(r.Context()).Error("write error response", "error", err)
	}
}

func lookupErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.LoggerFromContext(r.Context()).Error("lookup failed", "error", err)
		message = "the server encountered a problem and could not process your request"
	}
	errorResponse(w, r, status, kind, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusBadRequest, "bad_request", message)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	errorResponse(w, r, http.StatusNotFound, "not_found", "the requested resource could not be found")
}

func methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	errorResponse(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "the "+r.Method+" method is not supported for this resource")
}

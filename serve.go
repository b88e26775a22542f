package jsonapi

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// WriteDocument serializes doc and writes it as a JSON:API response with
// the given status. If the document cannot be serialized, a 500 error
// document is written instead.
func WriteDocument(w http.ResponseWriter, status int, doc *Document) error {
	body, err := jsoniter.Marshal(doc)
	if err != nil {
		status = http.StatusInternalServerError
		newErr := ErrorForHTTPStatus(status)
		newErr.Detail = err.Error()
		body, _ = jsoniter.Marshal(&Document{Errors: []Error{newErr}})
	}

	w.Header().Set("Content-Type", MediaType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

package errors

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/diwise/jsonapi-orm/pkg/jsonapi"
)

// ErrorObject is a single entry of a JSON:API error document.
// See https://jsonapi.org/format/#error-objects
type ErrorObject struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Meta   *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	TraceID string `json:"traceId,omitempty"`
}

type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

func newErrorObject(code int, errorCode, title, detail, traceID string) ErrorObject {
	eo := ErrorObject{
		Status: strconv.Itoa(code),
		Code:   errorCode,
		Title:  title,
		Detail: detail,
	}

	if traceID != "" {
		eo.Meta = &Meta{TraceID: traceID}
	}

	return eo
}

// WriteResponse writes a single error object as a JSON:API error document
func (eo ErrorObject) WriteResponse(w http.ResponseWriter) {
	code, err := strconv.Atoi(eo.Status)
	if err != nil || code < http.StatusBadRequest {
		code = http.StatusInternalServerError
	}

	body, err := json.MarshalIndent(ErrorDocument{Errors: []ErrorObject{eo}}, "", "  ")

	w.Header().Add("Content-Type", jsonapi.ContentType)
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(code)

	if err == nil {
		w.Write(body)
	}
}

func NewBadRequest(detail, traceID string) ErrorObject {
	return newErrorObject(http.StatusBadRequest, "BadRequest", "Bad Request", detail, traceID)
}

func ReportBadRequest(w http.ResponseWriter, detail, traceID string) {
	NewBadRequest(detail, traceID).WriteResponse(w)
}

func NewMalformedDocument(detail, traceID string) ErrorObject {
	return newErrorObject(http.StatusBadRequest, "MalformedDocument", "Malformed Document", detail, traceID)
}

func ReportMalformedDocument(w http.ResponseWriter, detail, traceID string) {
	NewMalformedDocument(detail, traceID).WriteResponse(w)
}

func NewUnknownType(detail, traceID string) ErrorObject {
	return newErrorObject(http.StatusUnprocessableEntity, "UnknownType", "Unknown Type", detail, traceID)
}

func ReportUnknownType(w http.ResponseWriter, detail, traceID string) {
	NewUnknownType(detail, traceID).WriteResponse(w)
}

func NewNotFound(detail, traceID string) ErrorObject {
	return newErrorObject(http.StatusNotFound, "NotFound", "Not Found", detail, traceID)
}

func ReportNotFound(w http.ResponseWriter, detail, traceID string) {
	NewNotFound(detail, traceID).WriteResponse(w)
}

func NewUnauthorized(detail, traceID string) ErrorObject {
	return newErrorObject(http.StatusUnauthorized, "Unauthorized", "Unauthorized", detail, traceID)
}

func ReportUnauthorized(w http.ResponseWriter, detail, traceID string) {
	NewUnauthorized(detail, traceID).WriteResponse(w)
}

func NewInternalError(detail, traceID string) ErrorObject {
	return newErrorObject(http.StatusInternalServerError, "InternalError", "Internal Error", detail, traceID)
}

func ReportInternalError(w http.ResponseWriter, detail, traceID string) {
	NewInternalError(detail, traceID).WriteResponse(w)
}

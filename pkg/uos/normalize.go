package uos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const unknownErrorMessage = "unknown error"

// Normalize maps a transport Outcome onto a Result. Service error payloads
// (objects carrying a "code" field) fail the Result whatever the HTTP status.
func Normalize(o Outcome) Result[Payload] {
	switch o.Kind {
	case OutcomeResponse:
		if se, ok := serviceError(o.Body); ok {
			return Fail[Payload](se.Error())
		}
		if o.Body == nil {
			// Not a JSON object; field extraction will report the shape error.
			return Ok(Payload{})
		}
		return Ok(o.Body)

	case OutcomeResponseError:
		if se, ok := serviceError(o.Body); ok {
			return Fail[Payload](se.Error())
		}
		return Failf[Payload]("http[%d]: http status code is %d, %s, %s",
			o.Status, o.Status, o.StatusText, bodyText(o.RawBody))

	case OutcomeNoResponse:
		msg := "no response"
		if o.Err != nil {
			msg = o.Err.Error()
			if isTimeout(o.Err) {
				msg = "request timed out, " + msg
			}
		}
		return Failf[Payload]("http[%d]: %s", o.Status, msg)

	case OutcomeRequestError:
		return Failf[Payload]("unknown: request could not be sent, %v", o.Err)
	}

	return Failf[Payload]("unknown: unexpected transport outcome %s", o.Kind)
}

// serviceError extracts the service error carried by body, if any.
func serviceError(body Payload) (ServiceError, bool) {
	code, ok := body["code"]
	if !ok {
		return ServiceError{}, false
	}

	se := ServiceError{
		Code:    toText(code),
		Message: unknownErrorMessage,
	}
	if msg, ok := body["message"]; ok && msg != nil {
		se.Message = toText(msg)
	}
	return se, true
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// bodyText renders a response body for an error message: compact JSON when
// the body is JSON, a quoted string otherwise.
func bodyText(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil && buf.Len() > 0 {
		return buf.String()
	}
	b, _ := json.Marshal(string(raw))
	return string(b)
}

package diffbot

import "github.com/go-resty/resty/v2"

// maxRawBodyPrefix bounds how much of an unparseable body is kept on a
// parse error.
const maxRawBodyPrefix = 512

// normalize classifies a transport outcome into exactly one of a success
// Document or an *Error. The ordering matters: transport failure first,
// then JSON validity, then Diffbot's error envelope, then success. The
// envelope check runs regardless of HTTP status because Diffbot reports
// errors like {"error":"Invalid API.","errorCode":500} inside 200
// responses.
func normalize(resp *resty.Response, err error) (Document, error) {
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "request failed", cause: err}
	}

	body := resp.Body()
	doc, perr := parseDocument(body)
	if perr != nil {
		return nil, &Error{
			Kind:    KindParse,
			Message: "response is not valid JSON",
			RawBody: boundBody(body),
			cause:   perr,
		}
	}

	if code, msg, ok := apiErrorIn(doc); ok {
		return nil, &Error{Kind: KindAPI, Code: code, Message: msg}
	}

	// A failing status without an error envelope still cannot be handed
	// to the caller as success. The status code stands in for the missing
	// errorCode.
	if resp.IsError() {
		return nil, &Error{
			Kind:    KindAPI,
			Code:    resp.StatusCode(),
			Message: "unexpected status " + resp.Status(),
		}
	}

	return doc, nil
}

// apiErrorIn detects Diffbot's application-level error envelope. The
// presence of a numeric "errorCode" field is what marks a response as an
// error; "error" carries the message.
func apiErrorIn(doc Document) (int, string, bool) {
	code, ok := doc.Int("errorCode")
	if !ok {
		return 0, "", false
	}
	msg, _ := doc.String("error")
	return code, msg, true
}

func boundBody(body []byte) []byte {
	if len(body) <= maxRawBodyPrefix {
		return body
	}
	return body[:maxRawBodyPrefix]
}

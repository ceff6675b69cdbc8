package client

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	"github.com/exbot/goexch/exchanger/types"
)

const bodyExcerptLen = 200

// call performs the single POST round trip behind every operation and
// unwraps the response envelope. Parameters travel as form fields, never as
// a JSON body. Success is error == "0" compared as text; the payload is the
// data key when present, the whole decoded body otherwise.
func (c *Client) call(ctx context.Context, method string, params map[string]string) (json.RawMessage, error) {
	log.Debugf("POST %s params=%v", method, paramKeys(params))

	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetFormData(params)
	}

	resp, err := req.Post(method)
	if err != nil {
		return nil, newError(ErrNetwork, method, "", "request failed: %v", err)
	}
	if !resp.IsSuccess() {
		return nil, newError(ErrNetwork, method, "", "HTTP %d: %s", resp.StatusCode(), excerpt(resp.Body()))
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, newError(ErrAPIResponse, method, "", "empty response")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if json.Valid(body) {
			// Non-object payload; hand it back untouched.
			return json.RawMessage(body), nil
		}
		return nil, newError(ErrAPIResponse, method, "", "invalid JSON: %s", excerpt(body))
	}

	if rawCode, ok := envelope["error"]; ok {
		var code types.FlexString
		_ = json.Unmarshal(rawCode, &code)
		if code.String() != "0" {
			return nil, classifyAPIError(method, code.String(), envelopeText(envelope, "error_text"))
		}
	}

	if data, ok := envelope["data"]; ok {
		return data, nil
	}
	return json.RawMessage(body), nil
}

// envelopeText extracts a textual envelope field, tolerating numeric typing.
func envelopeText(envelope map[string]json.RawMessage, key string) string {
	raw, ok := envelope[key]
	if !ok {
		return ""
	}
	var v types.FlexString
	_ = json.Unmarshal(raw, &v)
	return v.String()
}

func excerpt(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) > bodyExcerptLen {
		body = body[:bodyExcerptLen]
	}
	return string(body)
}

// paramKeys lists the outgoing form keys for debug logging. Values stay out
// of the logs: they hold wallets, phone numbers and account ids.
func paramKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

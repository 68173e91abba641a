package kratos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"account-service/app/domain"
)

// messageKinds maps Kratos UI message ids to domain error kinds. This table
// and the text fallback below are the only places provider error codes are
// known; unmapped codes become domain.ErrIdentityProvider.
var messageKinds = map[int64]error{
	4000006: domain.ErrWrongPassword,     // the provided credentials are invalid
	4000028: domain.ErrEmailAlreadyInUse, // an account with the same identifier exists already
	4000035: domain.ErrUserNotFound,      // this account does not exist
}

// translateError converts a Kratos API failure into a domain error kind.
// The raw provider detail is preserved for logs but never reaches a client.
func (a *Adapter) translateError(err error, httpResp *http.Response, op string) error {
	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if translated := a.translateResponseBody(kratosErr.Body(), op); translated != nil {
			return translated
		}
	}

	if httpResp != nil {
		if translated := translateHTTPStatus(httpResp.StatusCode, op, err); translated != nil {
			return translated
		}
	}

	return domain.NewGatewayError(domain.ErrIdentityProvider, op, err.Error())
}

// translateResponseBody inspects the flow error payload for UI message ids
// and classifiable message text.
func (a *Adapter) translateResponseBody(body []byte, op string) error {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return classifyText(string(body), op)
	}

	if ui, ok := payload["ui"].(map[string]interface{}); ok {
		if translated := translateUIMessages(ui, op); translated != nil {
			return translated
		}
	}

	if message, ok := payload["message"].(string); ok {
		return classifyText(message, op)
	}
	if errObj, ok := payload["error"].(map[string]interface{}); ok {
		if message, ok := errObj["message"].(string); ok {
			return classifyText(message, op)
		}
	}

	return nil
}

// translateUIMessages walks flow-level and node-level messages, returning
// the first one the table recognizes.
func translateUIMessages(ui map[string]interface{}, op string) error {
	if translated := translateMessageList(ui["messages"], op); translated != nil {
		return translated
	}

	nodes, _ := ui["nodes"].([]interface{})
	for _, node := range nodes {
		nodeMap, ok := node.(map[string]interface{})
		if !ok {
			continue
		}
		if translated := translateMessageList(nodeMap["messages"], op); translated != nil {
			return translated
		}
	}

	return nil
}

func translateMessageList(raw interface{}, op string) error {
	messages, _ := raw.([]interface{})
	for _, msg := range messages {
		msgMap, ok := msg.(map[string]interface{})
		if !ok {
			continue
		}

		if id, ok := msgMap["id"].(float64); ok {
			if kind, known := messageKinds[int64(id)]; known {
				text, _ := msgMap["text"].(string)
				return domain.NewGatewayError(kind, op, fmt.Sprintf("kratos message %d: %s", int64(id), text))
			}
		}

		if text, ok := msgMap["text"].(string); ok {
			if translated := classifyText(text, op); translated != nil {
				return translated
			}
		}
	}

	return nil
}

// classifyText matches provider message text against the recognized kinds.
// Returns nil when the text is not recognizably one of them.
func classifyText(text, op string) error {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, []string{"account does not exist", "no user record", "user not found"}):
		return domain.NewGatewayError(domain.ErrUserNotFound, op, text)
	case containsAny(lower, []string{"credentials are invalid", "wrong password", "invalid credentials"}):
		return domain.NewGatewayError(domain.ErrWrongPassword, op, text)
	case containsAny(lower, []string{"exists already", "already exists", "already registered"}):
		return domain.NewGatewayError(domain.ErrEmailAlreadyInUse, op, text)
	}

	return nil
}

// translateHTTPStatus maps bare HTTP failures with no classifiable body.
func translateHTTPStatus(statusCode int, op string, cause error) error {
	switch statusCode {
	case http.StatusNotFound:
		if op == "sign_in" {
			return domain.NewGatewayError(domain.ErrUserNotFound, op, cause.Error())
		}
	case http.StatusUnauthorized:
		if op == "get_session" {
			return domain.NewGatewayError(domain.ErrUnauthorized, op, cause.Error())
		}
	case http.StatusConflict:
		return domain.NewGatewayError(domain.ErrEmailAlreadyInUse, op, cause.Error())
	}

	return nil
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

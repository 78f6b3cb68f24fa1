package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Mode string

const (
	ModePayment      Mode = "payment"
	ModeSubscription Mode = "subscription"
)

var AllModes = []Mode{ModePayment, ModeSubscription}

func (m Mode) IsValid() bool {
	switch m {
	case ModePayment, ModeSubscription:
		return true
	}
	return false
}

// SessionRequest is a validated checkout request body.
type SessionRequest struct {
	PriceID    string
	SuccessURL string
	CancelURL  string
	Mode       Mode
}

type paramKind int

const (
	stringParam paramKind = iota
	modeParam
)

type param struct {
	name string
	kind paramKind
}

// Checked in this order; the first failure is reported.
var expectedParams = []param{
	{name: "price_id", kind: stringParam},
	{name: "success_url", kind: stringParam},
	{name: "cancel_url", kind: stringParam},
	{name: "mode", kind: modeParam},
}

// Validate checks a decoded request body and stops at the first invalid parameter.
func Validate(body map[string]any) (*SessionRequest, error) {
	values := make(map[string]string, len(expectedParams))

	for _, p := range expectedParams {
		raw := body[p.name]

		switch p.kind {
		case stringParam:
			if raw == nil {
				return nil, &ValidationError{Message: fmt.Sprintf("Missing required parameter %s", p.name)}
			}
			s, ok := raw.(string)
			if !ok {
				return nil, &ValidationError{Message: fmt.Sprintf("Expected parameter %s to be a string got %s", p.name, render(raw))}
			}
			values[p.name] = s
		case modeParam:
			s, _ := raw.(string)
			if !Mode(s).IsValid() {
				return nil, &ValidationError{Message: fmt.Sprintf("Expected parameter %s to be one of %s", p.name, joinModes())}
			}
			values[p.name] = s
		}
	}

	return &SessionRequest{
		PriceID:    values["price_id"],
		SuccessURL: values["success_url"],
		CancelURL:  values["cancel_url"],
		Mode:       Mode(values["mode"]),
	}, nil
}

// render formats v as compact JSON without HTML escaping.
func render(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func joinModes() string {
	names := make([]string, len(AllModes))
	for i, m := range AllModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

package routing

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golf-caddy-core/internal/clarify"
	"golf-caddy-core/internal/model"
)

// Target is an app destination: a module, a screen within it, and optional
// parameters.
type Target struct {
	Module string
	Screen string
	Params map[string]string
}

// BuildRoute renders a target as a canonical deep link. Parameter keys are
// sorted so identical content always serializes identically, regardless of
// map insertion order.
func BuildRoute(t Target) string {
	var b strings.Builder
	b.WriteString(t.Module)
	b.WriteByte('/')
	b.WriteString(t.Screen)

	if len(t.Params) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(t.Params))
	for k := range t.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(t.Params[k]))
	}
	return b.String()
}

// Result is the closed outcome set of routing one utterance. Exactly one
// variant is produced per input, and Serialize is deterministic: identical
// inputs yield byte-identical strings.
type Result interface {
	Serialize() string
	isResult()
}

// Navigate sends the user to a destination.
type Navigate struct {
	Intent model.Intent
	Target Target
}

// NoNavigation answers inline without leaving the current screen.
type NoNavigation struct {
	Intent   model.Intent
	Response string
}

// ConfirmationRequired asks before acting: a yes/no check or a pick-one list.
type ConfirmationRequired struct {
	Intent      model.Intent
	Message     string
	Suggestions []clarify.Suggestion
}

// PrerequisiteMissing names the preconditions that block the destination.
type PrerequisiteMissing struct {
	Intent  model.Intent
	Missing []model.Prerequisite
	Message string
}

func (Navigate) isResult()             {}
func (NoNavigation) isResult()         {}
func (ConfirmationRequired) isResult() {}
func (PrerequisiteMissing) isResult()  {}

func (r Navigate) Serialize() string {
	return fmt.Sprintf("NAVIGATE intent=%s route=%s", r.Intent.Type, BuildRoute(r.Target))
}

func (r NoNavigation) Serialize() string {
	return fmt.Sprintf("NO_NAVIGATION intent=%s response=%s", r.Intent.Type, r.Response)
}

func (r ConfirmationRequired) Serialize() string {
	labels := make([]string, len(r.Suggestions))
	for i, s := range r.Suggestions {
		labels[i] = string(s.Type)
	}
	return fmt.Sprintf("CONFIRMATION_REQUIRED intent=%s message=%s suggestions=%s",
		r.Intent.Type, r.Message, strings.Join(labels, ","))
}

func (r PrerequisiteMissing) Serialize() string {
	missing := make([]string, len(r.Missing))
	for i, p := range r.Missing {
		missing[i] = string(p)
	}
	return fmt.Sprintf("PREREQUISITE_MISSING intent=%s missing=%s", r.Intent.Type, strings.Join(missing, ","))
}

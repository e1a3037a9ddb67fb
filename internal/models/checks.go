package models

import (
	"fmt"
	"strings"
)

// Declarative per-field payload rules. Each Check is a pure predicate over
// the decoded request body; nil means the rule passed. Handlers compose
// checks ahead of their own logic and reject with the full failure list.

type CheckError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type Check func(body map[string]interface{}) *CheckError

// RunChecks evaluates every check and collects the failures.
func RunChecks(body map[string]interface{}, checks ...Check) []CheckError {
	var errs []CheckError
	for _, check := range checks {
		if err := check(body); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

// RequiredField fails when the field is absent, a blank string or an empty list.
func RequiredField(field, msg string) Check {
	return func(body map[string]interface{}) *CheckError {
		switch v := body[field].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return nil
			}
		case []interface{}:
			if len(v) > 0 {
				return nil
			}
		case nil:
		default:
			return nil
		}
		return &CheckError{Msg: msg, Param: field}
	}
}

// EmailField fails unless the field holds a syntactically valid email address.
func EmailField(field, msg string) Check {
	return func(body map[string]interface{}) *CheckError {
		v, _ := body[field].(string)
		if err := Validate.Var(v, "required,email"); err != nil {
			return &CheckError{Msg: msg, Param: field}
		}
		return nil
	}
}

// MinLengthField fails unless the field holds a string of at least min characters.
func MinLengthField(field string, min int, msg string) Check {
	return func(body map[string]interface{}) *CheckError {
		v, _ := body[field].(string)
		if err := Validate.Var(v, fmt.Sprintf("required,min=%d", min)); err != nil {
			return &CheckError{Msg: msg, Param: field}
		}
		return nil
	}
}

package request_models

import "strings"

// ValidationError is returned when a draft fails local validation; no remote
// call has been made when it is raised.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	if len(e.Result) == 0 {
		return "请求校验失败"
	}
	messages := make([]string, 0, len(e.Result))
	for _, v := range e.Result {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, "；")
}

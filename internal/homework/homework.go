package homework

import (
	"fmt"
	"sort"
)

// Review statuses the API may report for a submission.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// Verdicts maps each known status to its human-readable verdict.
var Verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// KnownStatuses returns the verdict vocabulary in stable order.
func KnownStatuses() []string {
	statuses := make([]string, 0, len(Verdicts))
	for s := range Verdicts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	return statuses
}

// CheckResponse verifies the decoded API payload has the documented shape
// and returns the homeworks sequence unchanged. Elements are not validated
// here.
func CheckResponse(payload any) ([]any, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, &ShapeError{What: "response", Got: payload}
	}
	raw, ok := obj["homeworks"]
	if !ok {
		return nil, &MissingFieldError{Fields: []string{"homeworks"}}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ShapeError{What: "homeworks", Got: raw}
	}
	return list, nil
}

// CurrentDate extracts the server-supplied poll cursor, if present.
func CurrentDate(payload any) (int64, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	// encoding/json decodes all numbers to float64.
	if v, ok := obj["current_date"].(float64); ok {
		return int64(v), true
	}
	return 0, false
}

// ParseStatus derives the notification message for a homework record.
func ParseStatus(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", &ShapeError{What: "homework record", Got: record}
	}

	var missing []string
	rawName, okName := hw["homework_name"]
	if !okName {
		missing = append(missing, "homework_name")
	}
	rawStatus, okStatus := hw["status"]
	if !okStatus {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return "", &MissingFieldError{Fields: missing}
	}

	name, ok := rawName.(string)
	if !ok {
		return "", &ShapeError{What: "homework_name", Got: rawName}
	}
	status, ok := rawStatus.(string)
	if !ok {
		return "", &ShapeError{What: "status", Got: rawStatus}
	}

	verdict, ok := Verdicts[status]
	if !ok {
		return "", &UnknownVerdictError{Status: status}
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", name, verdict), nil
}

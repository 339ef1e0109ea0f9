package homework

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return payload
}

func TestCheckResponse_Valid(t *testing.T) {
	payload := decode(t, `{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":100}`)
	homeworks, err := CheckResponse(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(homeworks) != 1 {
		t.Fatalf("expected 1 homework, got %d", len(homeworks))
	}
}

func TestCheckResponse_EmptyList(t *testing.T) {
	payload := decode(t, `{"homeworks":[]}`)
	homeworks, err := CheckResponse(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(homeworks) != 0 {
		t.Fatalf("expected empty list, got %d", len(homeworks))
	}
}

func TestCheckResponse_NotAnObject(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"text"`, `42`} {
		var shapeErr *ShapeError
		_, err := CheckResponse(decode(t, raw))
		if !errors.As(err, &shapeErr) {
			t.Errorf("payload %s: expected ShapeError, got %v", raw, err)
		}
	}
}

func TestCheckResponse_MissingHomeworks(t *testing.T) {
	var missingErr *MissingFieldError
	_, err := CheckResponse(decode(t, `{"current_date":100}`))
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
}

func TestCheckResponse_HomeworksNotAList(t *testing.T) {
	var shapeErr *ShapeError
	_, err := CheckResponse(decode(t, `{"homeworks":"nope"}`))
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "string") {
		t.Errorf("error should name the actual type, got %q", err.Error())
	}
}

func TestCurrentDate(t *testing.T) {
	ts, ok := CurrentDate(decode(t, `{"homeworks":[],"current_date":1700000000}`))
	if !ok || ts != 1700000000 {
		t.Fatalf("expected (1700000000, true), got (%d, %v)", ts, ok)
	}
	if _, ok := CurrentDate(decode(t, `{"homeworks":[]}`)); ok {
		t.Error("expected no cursor when current_date is absent")
	}
	if _, ok := CurrentDate(decode(t, `{"current_date":"soon"}`)); ok {
		t.Error("expected no cursor when current_date is not numeric")
	}
}

func TestParseStatus_AllVerdicts(t *testing.T) {
	cases := map[string]string{
		StatusApproved:  `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		StatusReviewing: `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		StatusRejected:  `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`,
	}
	for status, want := range cases {
		record := map[string]any{"homework_name": "hw1", "status": status}
		got, err := ParseStatus(record)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", status, err)
		}
		if got != want {
			t.Errorf("%s:\n got %q\nwant %q", status, got, want)
		}
	}
}

func TestParseStatus_MissingKeys(t *testing.T) {
	var missingErr *MissingFieldError
	_, err := ParseStatus(map[string]any{})
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if len(missingErr.Fields) != 2 {
		t.Fatalf("expected both keys reported, got %v", missingErr.Fields)
	}

	_, err = ParseStatus(map[string]any{"homework_name": "hw1"})
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if len(missingErr.Fields) != 1 || missingErr.Fields[0] != "status" {
		t.Fatalf("expected only status reported, got %v", missingErr.Fields)
	}
}

func TestParseStatus_UnknownStatus(t *testing.T) {
	var verdictErr *UnknownVerdictError
	_, err := ParseStatus(map[string]any{"homework_name": "hw1", "status": "partying"})
	if !errors.As(err, &verdictErr) {
		t.Fatalf("expected UnknownVerdictError, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "partying") {
		t.Errorf("error should name the offending status: %q", msg)
	}
	for _, known := range KnownStatuses() {
		if !strings.Contains(msg, known) {
			t.Errorf("error should list %q: %q", known, msg)
		}
	}
}

func TestParseStatus_NotAMap(t *testing.T) {
	var shapeErr *ShapeError
	_, err := ParseStatus("hw1")
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

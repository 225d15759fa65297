package model

import "testing"

func TestValidateContentMinimal(t *testing.T) {
	raw := []byte(`{"personalInfo":{"fullName":"Jane Doe","email":"jane@x.com"}}`)
	if err := ValidateContent(raw); err != nil {
		t.Fatalf("minimal content should validate: %v", err)
	}
}

func TestValidateContentMissingName(t *testing.T) {
	raw := []byte(`{"personalInfo":{"email":"jane@x.com"}}`)
	if err := ValidateContent(raw); err == nil {
		t.Fatal("expected validation error for missing fullName")
	}
}

func TestValidateContentWrongTypes(t *testing.T) {
	raw := []byte(`{"personalInfo":{"fullName":"Jane","email":"j@x.com"},"skills":"Go"}`)
	if err := ValidateContent(raw); err == nil {
		t.Fatal("expected validation error for skills as string")
	}
}

func TestValidateMap(t *testing.T) {
	m := map[string]interface{}{
		"personalInfo": map[string]interface{}{
			"fullName": "Jane Doe",
			"email":    "jane@x.com",
		},
		"skills": []interface{}{"Go", "SQL"},
	}
	if err := ValidateMap(m); err != nil {
		t.Fatalf("map should validate: %v", err)
	}

	m["workExperience"] = "not-an-array"
	if err := ValidateMap(m); err == nil {
		t.Fatal("expected validation error for workExperience as string")
	}
}

// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package docs

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("swag.ReadDoc() error = %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("swagger doc is not JSON: %v", err)
	}
	paths, ok := parsed["paths"].(map[string]interface{})
	if !ok {
		t.Fatal("swagger doc has no paths object")
	}
	for _, path := range []string{"/recommend", "/v1/recommend", "/v1/options", "/v1/health/live", "/v1/health/ready"} {
		if _, ok := paths[path]; !ok {
			t.Errorf("swagger doc does not describe %s", path)
		}
	}
}

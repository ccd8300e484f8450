package model_test

import (
	"encoding/json"
	"testing"

	"github.com/gosonic/gosonic/pkg/domain/model"
)

func TestResponse_Failed(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{
			name:     "ok response",
			body:     `{"subsonic-response":{"status":"ok","version":"1.15.0"}}`,
			expected: false,
		},
		{
			name:     "failed response",
			body:     `{"subsonic-response":{"status":"failed","version":"1.15.0","error":{"code":40,"message":"Wrong username or password"}}}`,
			expected: true,
		},
		{
			name:     "missing status",
			body:     `{"subsonic-response":{"version":"1.15.0"}}`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env model.Envelope
			if err := json.Unmarshal([]byte(tt.body), &env); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := env.Response.Failed(); got != tt.expected {
				t.Errorf("Failed() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &model.Error{Code: model.ErrCodeWrongCredentials, Message: "Wrong username or password"}
	want := "subsonic error 40: Wrong username or password"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestResponse_DecodePayloads(t *testing.T) {
	body := `{"subsonic-response":{"status":"ok","version":"1.15.0","artists":{` +
		`"ignoredArticles":"The El La","index":[{"name":"A","artist":[` +
		`{"id":"998","name":"A.M. Thawn","coverArt":"ar-998","albumCount":1}]}]}}}`

	var env model.Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	artists := env.Response.Artists
	if artists == nil {
		t.Fatal("Artists payload not decoded")
	}
	if len(artists.Index) != 1 || len(artists.Index[0].Artist) != 1 {
		t.Fatalf("unexpected index shape: %+v", artists.Index)
	}
	got := artists.Index[0].Artist[0]
	if got.ID != "998" || got.Name != "A.M. Thawn" || got.AlbumCount != 1 {
		t.Errorf("unexpected artist: %+v", got)
	}
}

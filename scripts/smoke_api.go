package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

var baseURL = envOr("API_BASE_URL", "http://localhost:3000/api")

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (int, envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return 0, envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	err = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env, err
}

func step(title string, want int, method, url, token string, body interface{}) envelope {
	color.Yellow("\n%s", title)
	status, env, err := sendRequest(method, url, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if status != want {
		color.Red("Status: %d (want %d) %s", status, want, env.Message)
		os.Exit(1)
	}
	color.Green("Status: %d %s", status, env.Message)
	return env
}

func main() {
	color.Cyan("🚀 Review session API smoke test against %s\n", baseURL)

	env := step("1. Create session", http.StatusOK, http.MethodPost, "/session/v1", "", nil)
	var session struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(env.Data, &session)

	env = step("2. Upload A.pdf", http.StatusOK, http.MethodPost, "/source/v1", session.Token, map[string]interface{}{
		"files": []map[string]interface{}{{"name": "A.pdf", "media_type": "application/pdf", "size_bytes": 2048}},
	})
	var ingested struct {
		Sources []struct {
			Id string `json:"id"`
		} `json:"sources"`
	}
	_ = json.Unmarshal(env.Data, &ingested)

	step("3. Generate without selection", http.StatusConflict, http.MethodGet, "/generate/v1/report", session.Token, nil)
	step("4. Select A.pdf", http.StatusOK, http.MethodPut, fmt.Sprintf("/source/v1/%s/toggle", ingested.Sources[0].Id), session.Token, nil)
	step("5. Generate report", http.StatusOK, http.MethodGet, "/generate/v1/report", session.Token, nil)
	step("6. Submit unrated score", http.StatusConflict, http.MethodPost, "/score/v1/submit", session.Token, nil)
	step("7. Rate objectives", http.StatusOK, http.MethodPut, "/score/v1/objectives", session.Token, map[string]int{"value": 5})
	step("8. Submit score", http.StatusOK, http.MethodPost, "/score/v1/submit", session.Token, map[string]string{"comment": "smoke"})
	step("9. Chat", http.StatusOK, http.MethodPost, "/chat/v1", session.Token, map[string]string{"chat": "analyze"})
	step("10. Close session", http.StatusOK, http.MethodDelete, "/session/v1", session.Token, nil)

	color.Green("\n✅ All steps passed")
}

package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"studydash/backend/config"
	"studydash/backend/routes"
	"studydash/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	app      *fiber.App
	db       *gorm.DB
	cfg      *config.Config
	jwtToken string
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	os.Exit(code)
}

func setup() {
	cfg = &config.Config{
		DBDriver:   "sqlite",
		DBName:     "file::memory:?cache=shared",
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	var err error
	db, err = utils.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg, utils.InitLogger())

	// Create the shared test user
	status, body := request("POST", "/api/auth/register", map[string]interface{}{
		"name":        "Test Student",
		"email":       "student@example.com",
		"password":    "password123",
		"collegeName": "Test College",
	}, "")
	if status != fiber.StatusCreated {
		panic("could not register test user")
	}
	jwtToken = body["token"].(string)
}

// request drives the Fiber app and decodes the JSON response object.
func request(method, path string, payload interface{}, token string) (int, map[string]interface{}) {
	var body io.Reader
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// requestList is request for endpoints returning a JSON array.
func requestList(method, path, token string) (int, []interface{}) {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}

	var result []interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// registerUser creates an extra user and returns its token.
func registerUser(t *testing.T, email string) string {
	t.Helper()
	status, body := request("POST", "/api/auth/register", map[string]interface{}{
		"name":     "Other Student",
		"email":    email,
		"password": "password123",
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register %s returned %d", email, status)
	}
	return body["token"].(string)
}

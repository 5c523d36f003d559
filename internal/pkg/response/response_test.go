package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestEnvelopeDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return Success(c, fiber.StatusOK, "", fiber.Map{"n": 1})
	})
	app.Get("/upstream", func(c fiber.Ctx) error {
		return Error(c, fiber.StatusBadGateway, "", nil)
	})
	app.Get("/bogus", func(c fiber.Ctx) error {
		return Error(c, 9999, "", nil)
	})

	cases := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{"/ok", fiber.StatusOK, MessageOK},
		{"/upstream", fiber.StatusBadGateway, MessageBadGateway},
		// Out-of-range statuses collapse to a generic 500.
		{"/bogus", fiber.StatusInternalServerError, MessageInternalServerError},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		if err != nil {
			t.Fatalf("%s: request error: %v", tc.path, err)
		}
		if resp.StatusCode != tc.wantStatus {
			t.Fatalf("%s: expected status %d, got %d", tc.path, tc.wantStatus, resp.StatusCode)
		}

		var body SemanticResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode error: %v", tc.path, err)
		}
		_ = resp.Body.Close()
		if body.Status != tc.wantStatus || body.Message != tc.wantMessage {
			t.Fatalf("%s: unexpected envelope %+v", tc.path, body)
		}
	}
}

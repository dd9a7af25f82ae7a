package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/primabarber/barberstock-api/internal/interfaces/http"
	pkgjwt "github.com/primabarber/barberstock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOutletID  = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "barberstock-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with AuthMiddleware, RequireRole and
// a dummy handler returning 200 when both middlewares pass.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole generates a JWT carrying the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOutletID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest fires GET /protected and returns the response.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAllowedOnAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_GudangAllowedOnMultiRoleRoute(t *testing.T) {
	app := buildTestApp("admin", "gudang")
	resp := doRequest(t, app, tokenForRole(t, "gudang"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gudang must be allowed when the route permits admin or gudang")
}

func TestRequireRole_KasirBlockedOnAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "kasir"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_GudangBlockedOnKasirRoute(t *testing.T) {
	app := buildTestApp("kasir")
	resp := doRequest(t, app, tokenForRole(t, "gudang"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_TokenWithoutRoleReturns401(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOutletID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_NoAuthHeaderReturns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_MalformedTokenReturns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware claim extraction
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"outlet_id": apphttp.GetOutletID(c),
			"role":      apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testOutletID, body["outlet_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT package round-trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParseWithRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOutletID, "gudang", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, outletID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testOutletID, outletID)
	assert.Equal(t, "gudang", role)
}

func TestJWT_ExpiredTokenReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOutletID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_WrongSecretReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOutletID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}

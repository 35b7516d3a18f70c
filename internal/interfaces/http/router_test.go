package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasur/remitos-api/internal/application/auth"
	"github.com/obrasur/remitos-api/internal/application/export"
	"github.com/obrasur/remitos-api/internal/application/usecase"
	"github.com/obrasur/remitos-api/internal/domain/entity"
	"github.com/obrasur/remitos-api/internal/infrastructure/kvstore"
	"github.com/obrasur/remitos-api/internal/infrastructure/localstore"
	httprouter "github.com/obrasur/remitos-api/internal/interfaces/http"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	kv := kvstore.NewMemory()
	users := localstore.NewUserRepository(kv)
	works := localstore.NewWorkRepository(kv)
	remitos := localstore.NewRemitoRepository(kv)
	ctx := context.Background()

	require.NoError(t, users.SaveAll(ctx, []entity.User{
		{ID: "user-1", Email: "admin@example.com", Password: "admin123", Name: "Admin User", Role: entity.RoleAdmin},
		{ID: "user-2", Email: "user@example.com", Password: "user123", Name: "Regular User", Role: entity.RoleUser},
	}))
	require.NoError(t, works.SaveAll(ctx, []entity.Work{
		{ID: "work-1", Name: "Obra Central", Address: "Calle Falsa 123"},
	}))

	app := fiber.New()
	httprouter.Router(app, httprouter.RouterDeps{
		AuthUC:   auth.NewUseCase(users, localstore.NewSessionRepository(kv)),
		UserUC:   usecase.NewUserUseCase(users),
		WorkUC:   usecase.NewWorkUseCase(works),
		RemitoUC: usecase.NewRemitoUseCase(remitos, time.Now),
		CSVUC:    export.NewCSVUseCase(works, users),
		PDFUC:    export.NewPDFUseCase(works, users, nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, app *fiber.App, email, password string) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/auth/login", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_ResponseOmitsCredential(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", `{"email":"admin@example.com","password":"admin123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "admin123")

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "admin@example.com", body["email"])
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", `{"email":"admin@example.com","password":"mala"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/remitos/", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/auth/session", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateRemito_SenderSignatureRequired(t *testing.T) {
	app := newTestApp(t)
	login(t, app, "admin@example.com", "admin123")

	body := `{"origin":"factory","destination_id":"work-1","items":[{"name":"Ladrillos","quantity":1000}]}`
	resp := doJSON(t, app, "POST", "/api/remitos/", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body = `{"origin":"factory","destination_id":"work-1","items":[{"name":"Ladrillos","quantity":1000}],"sender_signature":"data:image/png;base64,AAA"}`
	resp = doJSON(t, app, "POST", "/api/remitos/", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "user-1", created["created_by_id"])
}

func TestUpdateRemito_PermissionRules(t *testing.T) {
	app := newTestApp(t)
	login(t, app, "admin@example.com", "admin123")

	body := `{"origin":"factory","destination_id":"work-1","items":[{"name":"Ladrillos","quantity":1000}],"sender_signature":"data:image/png;base64,AAA"}`
	resp := doJSON(t, app, "POST", "/api/remitos/", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id := created["id"].(string)

	// Otro usuario sin rol admin no puede editar un remito ajeno.
	login(t, app, "user@example.com", "user123")
	resp = doJSON(t, app, "PUT", "/api/remitos/"+id, `{"status":"in-transit"}`)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// El creador (admin) sí; al completar ambas firmas queda recibido...
	login(t, app, "admin@example.com", "admin123")
	resp = doJSON(t, app, "PUT", "/api/remitos/"+id, `{"receiver_signature":"data:image/png;base64,BBB"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "received", updated["status"])

	// ...y firmado por ambas partes deja de admitir cambios, incluso para un admin.
	resp = doJSON(t, app, "PUT", "/api/remitos/"+id, `{"status":"pending"}`)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp = doJSON(t, app, "DELETE", "/api/remitos/"+id, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUsersWrites_AdminOnly(t *testing.T) {
	app := newTestApp(t)
	login(t, app, "user@example.com", "user123")

	resp := doJSON(t, app, "POST", "/api/users/", `{"email":"nuevo@example.com","name":"Nuevo","password":"x","role":"user"}`)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	login(t, app, "admin@example.com", "admin123")
	resp = doJSON(t, app, "POST", "/api/users/", `{"email":"nuevo@example.com","name":"Nuevo","password":"x","role":"user"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Email duplicado rechazado con 409.
	resp = doJSON(t, app, "POST", "/api/users/", `{"email":"nuevo@example.com","name":"Otro","password":"x","role":"user"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestExportCSV_DownloadsFilteredProjection(t *testing.T) {
	app := newTestApp(t)
	login(t, app, "admin@example.com", "admin123")

	body := `{"origin":"factory","destination_id":"work-1","items":[{"name":"Ladrillos","quantity":1000}],"sender_signature":"data:image/png;base64,AAA"}`
	resp := doJSON(t, app, "POST", "/api/remitos/", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/remitos/export.csv?status=pending", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Numero,Fecha,Origen,Destino,Creado Por,Estado,Items", lines[0])
	assert.Contains(t, lines[1], "Obra Central")
	assert.Contains(t, lines[1], "Ladrillos (x1000)")
}

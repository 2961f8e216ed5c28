package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-lost-and-found/internal/adapters/auth/dummy"
	"pet-lost-and-found/internal/router"
)

func reportPayload(name, typ, species string) map[string]any {
	return map[string]any{
		"name":     name,
		"type":     typ,
		"species":  species,
		"breed":    "Mixed",
		"color":    "Brown",
		"lastSeen": "2025-11-01T14:30:00Z",
		"location": "High Park, Toronto",
		"coordinates": map[string]any{
			"latitude":  43.6465,
			"longitude": -79.4637,
		},
		"description": "Test report description.",
		"contact": map[string]any{
			"name":  "John Doe",
			"email": "john.doe@email.com",
			"phone": "(416) 555-0123",
		},
	}
}

func TestHTTP_EndToEnd_ReportLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) u1 reporta a Buddy (Lost/Dog), u2 a Whiskers (Found/Cat)
	buddyID := createReport(t, ts.URL, "u1", reportPayload("Buddy", "Lost", "Dog"))
	whiskersID := createReport(t, ts.URL, "u2", reportPayload("Whiskers", "Found", "Cat"))

	// 2) El listado público trae los dos, más nuevo primero
	{
		st, body := doReq(t, ts.URL, "GET", "/reports", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		items := decodeList(t, body)
		if len(items) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(items))
		}
		if items[0]["id"] != whiskersID || items[1]["id"] != buddyID {
			t.Fatalf("wrong order: %v", items)
		}
	}

	// 3) Mis publicaciones: u1 ve exactamente [Buddy]
	{
		st, body := doReq(t, ts.URL, "GET", "/me/reports", "u1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my reports, got %d body=%s", st, string(body))
		}
		items := decodeList(t, body)
		if len(items) != 1 || items[0]["id"] != buddyID {
			t.Fatalf("listByOwner(u1) = %v, want exactly Buddy", items)
		}
	}

	// 4) search("cat") devuelve exactamente [Whiskers]
	{
		st, body := doReq(t, ts.URL, "GET", "/reports?q=cat", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
		}
		items := decodeList(t, body)
		if len(items) != 1 || items[0]["id"] != whiskersID {
			t.Fatalf("search(cat) = %v, want exactly Whiskers", items)
		}
	}

	// 5) u2 no puede editar ni borrar el reporte de u1
	{
		st, _ := doReq(t, ts.URL, "PUT", "/reports/"+buddyID, "u2", reportPayload("Hacked", "Lost", "Dog"))
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 update by non-owner, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/reports/"+buddyID, "u2", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete by non-owner, got %d", st)
		}
	}

	// 6) u1 edita a Buddy; updatedAt avanza, createdAt queda
	var createdAt, updatedAt string
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/"+buddyID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get, got %d", st)
		}
		item := decodeItem(t, body)
		createdAt = item["createdAt"].(string)
		updatedAt = item["updatedAt"].(string)
	}
	{
		payload := reportPayload("Buddy Updated", "Lost", "Dog")
		st, body := doReq(t, ts.URL, "PUT", "/reports/"+buddyID, "u1", payload)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 update by owner, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/reports/"+buddyID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get after update, got %d", st)
		}
		item := decodeItem(t, body)
		if item["name"] != "Buddy Updated" {
			t.Fatalf("name not updated: %v", item["name"])
		}
		if item["createdAt"] != createdAt {
			t.Fatalf("createdAt changed: %v -> %v", createdAt, item["createdAt"])
		}
		if item["updatedAt"] == updatedAt {
			t.Fatal("updatedAt did not advance")
		}
	}

	// 7) update/delete sobre un id inexistente: no-op, 204 igual
	{
		st, _ := doReq(t, ts.URL, "PUT", "/reports/99999", "u1", reportPayload("Ghost", "Lost", "Dog"))
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 update on missing id, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/reports/99999", "u1", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete on missing id, got %d", st)
		}
	}

	// 8) u1 borra a Buddy; queda solo Whiskers y el segundo delete no falla
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/reports/"+buddyID, "u1", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/reports", "", nil)
		items := decodeList(t, body)
		if st != http.StatusOK || len(items) != 1 || items[0]["id"] != whiskersID {
			t.Fatalf("after delete expected exactly Whiskers, got %v", items)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/reports/"+buddyID, "u1", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 on second delete, got %d", st)
		}
	}

	// 9) get de un id borrado: 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/reports/"+buddyID, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_FoundDetailsSynthesis(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := reportPayload("Unknown cat", "Found", "Cat")
	payload["description"] = ""
	payload["foundDetails"] = map[string]any{
		"foundDate": "2025-11-03",
		"size":      "Medium",
		"condition": "Healthy",
		"tempCare":  "Yes",
		"freeText":  "Wearing a red collar.",
	}

	id := createReport(t, ts.URL, "u1", payload)

	st, body := doReq(t, ts.URL, "GET", "/reports/"+id, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get, got %d", st)
	}
	item := decodeItem(t, body)

	wantDesc := "Found on: 2025-11-03, Size: Medium, Condition: Healthy, Temporary care: Yes. Wearing a red collar."
	if item["description"] != wantDesc {
		t.Fatalf("description = %q, want %q", item["description"], wantDesc)
	}

	details, ok := item["foundDetails"].(map[string]any)
	if !ok {
		t.Fatalf("found report must expose foundDetails, got %v", item["foundDetails"])
	}
	if details["size"] != "Medium" || details["tempCare"] != "Yes" || details["freeText"] != "Wearing a red collar." {
		t.Fatalf("unexpected foundDetails: %v", details)
	}
}

func TestHTTP_CreateValidation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := reportPayload("Buddy", "Lost", "Dog")
	payload["contact"].(map[string]any)["email"] = "not-an-email"

	st, _ := doReq(t, ts.URL, "POST", "/reports", "u1", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", st)
	}

	payload = reportPayload("Buddy", "Stolen", "Dog")
	st, _ = doReq(t, ts.URL, "POST", "/reports", "u1", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad type, got %d", st)
	}
}

func TestHTTP_DummyAuthFlow(t *testing.T) {
	provider := dummy.NewProvider()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Verifier: provider,
		Provider: provider,
	}))
	defer ts.Close()

	// 1) Login demo
	var token string
	{
		body, _ := json.Marshal(map[string]string{"email": "admin@test.com", "password": "password"})
		resp, err := http.Post(ts.URL+"/auth/login", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("login request: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 login, got %d", resp.StatusCode)
		}

		var out struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode login: %v", err)
		}
		if out.Token == "" || out.User.ID != "1" {
			t.Fatalf("unexpected login response: %+v", out)
		}
		token = out.Token
	}

	// 2) Con Bearer, el reporte queda a nombre del usuario logueado
	{
		body, _ := json.Marshal(reportPayload("Buddy", "Lost", "Dog"))
		req, _ := http.NewRequest("POST", ts.URL+"/reports", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("create request: %v", err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 create, got %d body=%s", resp.StatusCode, string(raw))
		}

		item := decodeItem(t, raw)
		if item["userId"] != "1" {
			t.Fatalf("report owner = %v, want logged-in user 1", item["userId"])
		}
	}

	// 3) Credenciales malas: 401
	{
		body, _ := json.Marshal(map[string]string{"email": "admin@test.com", "password": "wrong"})
		resp, err := http.Post(ts.URL+"/auth/login", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("login request: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad login, got %d", resp.StatusCode)
		}
	}
}

func createReport(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/reports", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create report, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create report: missing id body=%s", string(body))
	}
	return resp.ID
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode list: %v body=%s", err, string(body))
	}
	return items
}

func decodeItem(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var item map[string]any
	if err := json.Unmarshal(body, &item); err != nil {
		t.Fatalf("decode item: %v body=%s", err, string(body))
	}
	return item
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

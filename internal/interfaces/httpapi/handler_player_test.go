package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/suappstudio/matchday/internal/domain/player"
)

func TestCreatePlayer(t *testing.T) {
	t.Parallel()

	t.Run("omitted skills default to five", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario Rossi","role":"FORWARD","skills":{"attack":9}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			Role     string  `json:"role"`
			PhotoURL *string `json:"photo_url"`
			Skills   struct {
				Attack  int `json:"attack"`
				Defense int `json:"defense"`
				Speed   int `json:"speed"`
			} `json:"skills"`
		}
		decodeBody(t, rec, &body)
		if body.ID == "" || body.Name != "Mario Rossi" || body.Role != "FORWARD" {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
		if body.PhotoURL != nil {
			t.Fatalf("photo_url must be null for a fresh player")
		}
		if body.Skills.Attack != 9 || body.Skills.Defense != 5 || body.Skills.Speed != 5 {
			t.Fatalf("unexpected skills: %+v", body.Skills)
		}
	})

	t.Run("goalkeeper gets the keeper default", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Gigi","role":"GOALKEEPER"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body struct {
			Skills struct {
				Goalkeeping int `json:"goalkeeping"`
			} `json:"skills"`
		}
		decodeBody(t, rec, &body)
		if body.Skills.Goalkeeping != player.GoalkeepingCreateDefault {
			t.Fatalf("unexpected goalkeeping skill: got=%d want=%d",
				body.Skills.Goalkeeping, player.GoalkeepingCreateDefault)
		}
	})

	t.Run("missing name rejected", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/players", `{"role":"FORWARD"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
		}
		requireDetail(t, rec)
	})

	t.Run("skill out of range rejected", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"FORWARD","skills":{"speed":11}}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestGetPlayer(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"MIDFIELDER"}`)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	t.Run("detail includes overall rating", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/players/"+created.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body struct {
			OverallRating int `json:"overall_rating"`
		}
		decodeBody(t, rec, &body)
		if body.OverallRating != 5 {
			t.Fatalf("unexpected overall_rating: got=%d want=5", body.OverallRating)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/players/missing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
		}
		requireDetail(t, rec)
	})
}

func TestUpdatePlayer(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"FORWARD","skills":{"attack":9}}`)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	t.Run("name only update keeps skills", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/players/"+created.ID, `{"name":"Mario Rossi"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body struct {
			Name   string `json:"name"`
			Skills struct {
				Attack int `json:"attack"`
			} `json:"skills"`
		}
		decodeBody(t, rec, &body)
		if body.Name != "Mario Rossi" || body.Skills.Attack != 9 {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("skills block replaces all nine", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/players/"+created.ID, `{"skills":{"speed":8}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body struct {
			Skills struct {
				Speed  int `json:"speed"`
				Attack int `json:"attack"`
			} `json:"skills"`
		}
		decodeBody(t, rec, &body)
		if body.Skills.Speed != 8 {
			t.Fatalf("unexpected speed: got=%d want=8", body.Skills.Speed)
		}
		if body.Skills.Attack != 5 {
			t.Fatalf("omitted attributes in a skills block must reset to the default: got=%d", body.Skills.Attack)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/players/missing", `{"name":"Nessuno"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestDeletePlayer(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"FORWARD"}`)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	rec = ts.do(t, http.MethodDelete, "/api/players/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] != "Player deleted successfully" {
		t.Fatalf("unexpected delete message: %v", body)
	}

	rec = ts.do(t, http.MethodDelete, "/api/players/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status for repeated delete: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}

func TestListPlayers(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	for _, payload := range []string{
		`{"name":"Uno","role":"FORWARD"}`,
		`{"name":"Due","role":"DEFENDER"}`,
		`{"name":"Tre","role":"FORWARD"}`,
	} {
		if rec := ts.do(t, http.MethodPost, "/api/players", payload); rec.Code != http.StatusOK {
			t.Fatalf("seed player: status=%d body=%s", rec.Code, rec.Body.String())
		}
	}

	t.Run("role filter", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/players?role=FORWARD", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var items []struct {
			Role string `json:"role"`
		}
		decodeBody(t, rec, &items)
		if len(items) != 2 {
			t.Fatalf("unexpected item count: got=%d want=2", len(items))
		}
	})

	t.Run("window", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/players?skip=1&limit=1", "")
		var items []struct {
			Name string `json:"name"`
		}
		decodeBody(t, rec, &items)
		if len(items) != 1 || items[0].Name != "Due" {
			t.Fatalf("unexpected window: %s", rec.Body.String())
		}
	})

	t.Run("bad query parameter", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/players?skip=abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestGetStatistics(t *testing.T) {
	t.Parallel()

	t.Run("empty roster", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/api/statistics", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body struct {
			TotalPlayers  int                `json:"total_players"`
			PlayersByRole map[string]int     `json:"players_by_role"`
			AverageSkills map[string]float64 `json:"average_skills"`
		}
		decodeBody(t, rec, &body)
		if body.TotalPlayers != 0 {
			t.Fatalf("unexpected total: got=%d want=0", body.TotalPlayers)
		}
		if len(body.PlayersByRole) != 4 {
			t.Fatalf("every role must appear even when empty: %v", body.PlayersByRole)
		}
		for role, count := range body.PlayersByRole {
			if count != 0 {
				t.Fatalf("role %s must count zero on an empty roster", role)
			}
		}
		if len(body.AverageSkills) != 0 {
			t.Fatalf("average_skills must be empty for no players: %v", body.AverageSkills)
		}
	})

	t.Run("populated roster", func(t *testing.T) {
		ts := newTestServer(t)
		for _, payload := range []string{
			`{"name":"Uno","role":"FORWARD","skills":{"speed":9}}`,
			`{"name":"Due","role":"FORWARD","skills":{"speed":3}}`,
		} {
			if rec := ts.do(t, http.MethodPost, "/api/players", payload); rec.Code != http.StatusOK {
				t.Fatalf("seed player: status=%d body=%s", rec.Code, rec.Body.String())
			}
		}

		rec := ts.do(t, http.MethodGet, "/api/statistics", "")
		var body struct {
			TotalPlayers  int                `json:"total_players"`
			PlayersByRole map[string]int     `json:"players_by_role"`
			AverageSkills map[string]float64 `json:"average_skills"`
		}
		decodeBody(t, rec, &body)
		if body.TotalPlayers != 2 {
			t.Fatalf("unexpected total: got=%d want=2", body.TotalPlayers)
		}
		if body.PlayersByRole["FORWARD"] != 2 || body.PlayersByRole["GOALKEEPER"] != 0 {
			t.Fatalf("unexpected role counts: %v", body.PlayersByRole)
		}
		if body.AverageSkills["speed"] != 6 {
			t.Fatalf("unexpected speed average: got=%f want=6", body.AverageSkills["speed"])
		}
	})
}

func TestUploadPlayerPhoto(t *testing.T) {
	t.Parallel()

	newUpload := func(t *testing.T, filename string) (*bytes.Buffer, string) {
		t.Helper()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("close multipart writer: %v", err)
		}

		return &buf, writer.FormDataContentType()
	}

	doUpload := func(t *testing.T, ts *testServer, playerID, filename string) *httptest.ResponseRecorder {
		t.Helper()

		body, contentType := newUpload(t, filename)
		req := httptest.NewRequest(http.MethodPost, "/api/players/"+playerID+"/photo", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		return rec
	}

	t.Run("stores the photo and reports its url", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"FORWARD"}`)
		var created struct {
			ID string `json:"id"`
		}
		decodeBody(t, rec, &created)

		rec = doUpload(t, ts, created.ID, "face.jpg")
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
		}

		var body map[string]string
		decodeBody(t, rec, &body)
		if body["message"] != "Photo uploaded successfully" {
			t.Fatalf("unexpected message: %v", body)
		}
		if !strings.HasPrefix(body["photo_url"], "/uploads/players/") {
			t.Fatalf("unexpected photo_url: %q", body["photo_url"])
		}

		rec = ts.do(t, http.MethodGet, "/api/players/"+created.ID, "")
		var detail struct {
			PhotoURL *string `json:"photo_url"`
		}
		decodeBody(t, rec, &detail)
		if detail.PhotoURL == nil || *detail.PhotoURL != body["photo_url"] {
			t.Fatalf("photo_url not persisted on the player: %s", rec.Body.String())
		}
	})

	t.Run("disallowed extension", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"FORWARD"}`)
		var created struct {
			ID string `json:"id"`
		}
		decodeBody(t, rec, &created)

		rec = doUpload(t, ts, created.ID, "sheet.pdf")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		ts := newTestServer(t)

		rec := doUpload(t, ts, "missing", "face.jpg")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("missing multipart field", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/players", `{"name":"Mario","role":"FORWARD"}`)
		var created struct {
			ID string `json:"id"`
		}
		decodeBody(t, rec, &created)

		req := httptest.NewRequest(http.MethodPost, "/api/players/"+created.ID+"/photo", strings.NewReader("no file"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
		out := httptest.NewRecorder()
		ts.router.ServeHTTP(out, req)
		if out.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: got=%d want=%d", out.Code, http.StatusBadRequest)
		}
	})
}

package http

import (
	"bytes"
	"encoding/json"
	"testing"

	nethttp "net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/med-learn/medlearn-quiz/internal/catalog"
	"github.com/med-learn/medlearn-quiz/internal/kv"
	"github.com/med-learn/medlearn-quiz/internal/notify"
	"github.com/med-learn/medlearn-quiz/internal/quiz"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mem := kv.NewMemoryStore()
	r := chi.NewRouter()
	Mount(r, quiz.NewSeriesStore(mem), quiz.NewProgressStore(mem), mem, notify.Discard{})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) *nethttp.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := nethttp.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := nethttp.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestListCourses(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, "GET", ts.URL+"/courses", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	courses := decode[[]catalog.Course](t, resp)
	if len(courses) == 0 {
		t.Fatal("no courses returned")
	}

	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	c := decode[catalog.Course](t, resp)
	if c.Title != "Neuroanatomy" {
		t.Fatalf("course = %+v", c)
	}

	resp = doJSON(t, "GET", ts.URL+"/courses/astrology", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("unknown course status = %d, want 404", resp.StatusCode)
	}
}

func TestSeriesListAndReplace(t *testing.T) {
	ts := newTestServer(t)

	// First visit serves the seeded defaults.
	resp := doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series", nil)
	defaults := decode[[]quiz.Series](t, resp)
	if len(defaults) == 0 {
		t.Fatal("expected default series")
	}

	// Replace with an explicitly empty list; it must stick.
	resp = doJSON(t, "PUT", ts.URL+"/courses/neuroanatomy/series", []quiz.Series{})
	if resp.StatusCode != 204 {
		t.Fatalf("replace status = %d", resp.StatusCode)
	}
	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series", nil)
	got := decode[[]quiz.Series](t, resp)
	if len(got) != 0 {
		t.Fatalf("saved empty list came back with %d series", len(got))
	}
}

func TestCreateSeriesValidatesName(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, "POST", ts.URL+"/courses/neuroanatomy/series", map[string]string{"name": "  "})
	if resp.StatusCode != 400 {
		t.Fatalf("blank name status = %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, "POST", ts.URL+"/courses/neuroanatomy/series", map[string]string{"name": "Cranial nerves"})
	if resp.StatusCode != 201 {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	s := decode[quiz.Series](t, resp)
	if s.Name != "Cranial nerves" || s.ID == "" {
		t.Fatalf("series = %+v", s)
	}

	// The new series was appended after the defaults and persisted.
	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series", nil)
	list := decode[[]quiz.Series](t, resp)
	if len(list) != 2 {
		t.Fatalf("series count = %d, want seeded default + new", len(list))
	}
}

func TestDeleteSeriesGuard(t *testing.T) {
	ts := newTestServer(t)

	// neuroanatomy starts with exactly one (default) series.
	resp := doJSON(t, "DELETE", ts.URL+"/courses/neuroanatomy/series/default", nil)
	if resp.StatusCode != 409 {
		t.Fatalf("last-series delete status = %d, want 409", resp.StatusCode)
	}

	doJSON(t, "POST", ts.URL+"/courses/neuroanatomy/series", map[string]string{"name": "Second"})
	resp = doJSON(t, "DELETE", ts.URL+"/courses/neuroanatomy/series/default", nil)
	if resp.StatusCode != 204 {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series", nil)
	list := decode[[]quiz.Series](t, resp)
	if len(list) != 1 || list[0].Name != "Second" {
		t.Fatalf("remaining series = %+v", list)
	}
}

func TestSubmitQuestionFlow(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"question": "Largest cranial nerve?",
		"text_options": []quiz.TextOption{
			{Text: "Trigeminal", IsCorrect: true},
			{Text: "Optic"},
			{Text: "Vagus"},
			{Text: "Facial"},
		},
	}
	resp := doJSON(t, "POST", ts.URL+"/courses/neuroanatomy/series/default/questions/text", body)
	if resp.StatusCode != 200 {
		t.Fatalf("submit status = %d", resp.StatusCode)
	}
	s := decode[quiz.Series](t, resp)
	if len(s.TextQuestions) != 3 { // 2 seeded + 1 new
		t.Fatalf("text question count = %d, want 3", len(s.TextQuestions))
	}

	// Rejected: no correct option marked.
	bad := map[string]any{
		"question": "Unanswerable",
		"text_options": []quiz.TextOption{
			{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"},
		},
	}
	resp = doJSON(t, "POST", ts.URL+"/courses/neuroanatomy/series/default/questions/text", bad)
	if resp.StatusCode != 400 {
		t.Fatalf("invalid submit status = %d, want 400", resp.StatusCode)
	}
	errBody := decode[map[string]string](t, resp)
	if errBody["error"] != quiz.ErrNoCorrectOption.Error() {
		t.Fatalf("error = %q", errBody["error"])
	}

	// Unknown kind is rejected.
	resp = doJSON(t, "POST", ts.URL+"/courses/neuroanatomy/series/default/questions/video", body)
	if resp.StatusCode != 400 {
		t.Fatalf("unknown kind status = %d, want 400", resp.StatusCode)
	}

	// Delete the question we added (index 2).
	resp = doJSON(t, "DELETE", ts.URL+"/courses/neuroanatomy/series/default/questions/text/2", nil)
	if resp.StatusCode != 204 {
		t.Fatalf("delete question status = %d", resp.StatusCode)
	}
	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series", nil)
	list := decode[[]quiz.Series](t, resp)
	if len(list[0].TextQuestions) != 2 {
		t.Fatalf("text question count after delete = %d, want 2", len(list[0].TextQuestions))
	}
}

func TestProgressEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series/default/progress", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("fresh progress status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, "PUT", ts.URL+"/courses/neuroanatomy/series/default/progress", map[string]int{"score": 7, "total": 10})
	if resp.StatusCode != 204 {
		t.Fatalf("save progress status = %d", resp.StatusCode)
	}

	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series/default/progress", nil)
	prog := decode[quiz.Progress](t, resp)
	if prog.Score != 7 || prog.Total != 10 || prog.Percentage != 70 {
		t.Fatalf("progress = %+v", prog)
	}
	if prog.CompletedAt == "" {
		t.Fatal("CompletedAt not stamped")
	}

	// Out-of-range payloads are rejected.
	for _, bad := range []map[string]int{
		{"score": 11, "total": 10},
		{"score": -1, "total": 10},
		{"score": 1, "total": 0},
	} {
		resp = doJSON(t, "PUT", ts.URL+"/courses/neuroanatomy/series/default/progress", bad)
		if resp.StatusCode != 400 {
			t.Fatalf("bad progress %v status = %d, want 400", bad, resp.StatusCode)
		}
	}
}

func TestDraftEndpoints(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/courses/neuroanatomy/series/default/drafts/text"

	resp := doJSON(t, "GET", base, nil)
	if resp.StatusCode != 404 {
		t.Fatalf("fresh draft status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, "PUT", base, map[string]string{"question": "half-ty"})
	if resp.StatusCode != 204 {
		t.Fatalf("put draft status = %d", resp.StatusCode)
	}

	resp = doJSON(t, "GET", base, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("get draft status = %d", resp.StatusCode)
	}
	draft := decode[map[string]string](t, resp)
	if draft["question"] != "half-ty" {
		t.Fatalf("draft = %+v", draft)
	}

	resp = doJSON(t, "DELETE", base, nil)
	if resp.StatusCode != 204 {
		t.Fatalf("delete draft status = %d", resp.StatusCode)
	}
	resp = doJSON(t, "GET", base, nil)
	if resp.StatusCode != 404 {
		t.Fatalf("draft still present after delete: %d", resp.StatusCode)
	}

	// Drafts are scoped to a kind: image slot stays empty.
	resp = doJSON(t, "GET", ts.URL+"/courses/neuroanatomy/series/default/drafts/image", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("image draft status = %d, want 404", resp.StatusCode)
	}
}

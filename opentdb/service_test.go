package opentdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"testing"
)

// recordedRequest is a request seen by fakeService
type recordedRequest struct {
	Path   string
	Query  url.Values
	Header http.Header
}

// fakeService serves the four Open Trivia DB endpoints and records every call
type fakeService struct {
	mu sync.Mutex

	requests []recordedRequest

	// tokens handed out by command=request, in order
	tokens     []string
	tokenIndex int
	// tokenCodes are response codes for successive token calls; missing means 0
	tokenCodes []int
	tokenCalls int

	categories []Category

	// questionCodes are response codes for successive question calls; missing means 0
	questionCodes []int
	questionCalls int
	questionTexts []string

	// statuses overrides the HTTP status per path
	statuses map[string]int
	// bodies overrides the body per path
	bodies map[string]string
}

func newFakeService() *fakeService {
	return &fakeService{
		tokens: []string{"token-1", "token-2", "token-3"},
		categories: []Category{
			{ID: 9, Name: "General Knowledge"},
			{ID: 21, Name: "Sports"},
			{ID: 31, Name: "Entertainment: Japanese Anime & Manga"},
		},
		statuses: map[string]int{},
		bodies:   map[string]string{},
	}
}

func (f *fakeService) start(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)
	return server
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, recordedRequest{
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})

	if status, ok := f.statuses[r.URL.Path]; ok {
		w.WriteHeader(status)
		return
	}
	if body, ok := f.bodies[r.URL.Path]; ok {
		fmt.Fprint(w, body)
		return
	}

	switch r.URL.Path {
	case tokenPath:
		f.serveToken(w, r.URL.Query())
	case categoryPath:
		writeJSON(w, map[string]any{"trivia_categories": f.categories})
	case questionPath:
		f.serveQuestions(w, r.URL.Query())
	case categoryCountPath:
		id, _ := strconv.Atoi(r.URL.Query().Get("category"))
		writeJSON(w, map[string]any{
			"category_id": id,
			"category_question_count": map[string]int{
				"total_question_count":        id * 10,
				"total_easy_question_count":   id * 5,
				"total_medium_question_count": id * 3,
				"total_hard_question_count":   id * 2,
			},
		})
	case globalCountPath:
		writeJSON(w, map[string]any{
			"overall": map[string]int{
				"total_num_of_questions":          100,
				"total_num_of_pending_questions":  20,
				"total_num_of_verified_questions": 70,
				"total_num_of_rejected_questions": 10,
			},
			"categories": map[string]any{
				"9":  map[string]int{"total_num_of_questions": 60, "total_num_of_verified_questions": 50},
				"21": map[string]int{"total_num_of_questions": 40, "total_num_of_verified_questions": 20},
			},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeService) serveToken(w http.ResponseWriter, query url.Values) {
	code := codeAt(f.tokenCodes, f.tokenCalls)
	f.tokenCalls++
	if code != 0 {
		writeJSON(w, map[string]any{"response_code": code})
		return
	}

	token := query.Get("token")
	if query.Get("command") == "request" {
		token = f.tokens[f.tokenIndex%len(f.tokens)]
		f.tokenIndex++
	}
	writeJSON(w, map[string]any{"response_code": 0, "token": token})
}

func (f *fakeService) serveQuestions(w http.ResponseWriter, query url.Values) {
	code := codeAt(f.questionCodes, f.questionCalls)
	f.questionCalls++
	if code != 0 {
		writeJSON(w, map[string]any{"response_code": code, "results": []any{}})
		return
	}

	amount, _ := strconv.Atoi(query.Get("amount"))
	results := make([]RawQuestion, amount)
	for i := range results {
		text := fmt.Sprintf("Question %d?", i+1)
		if i < len(f.questionTexts) {
			text = f.questionTexts[i]
		}
		results[i] = RawQuestion{
			Category:         "Sports",
			Type:             TypeMultiple,
			Difficulty:       DifficultyEasy,
			Question:         text,
			CorrectAnswer:    "X",
			IncorrectAnswers: []string{"Y", "Z", "W"},
		}
	}
	writeJSON(w, map[string]any{"response_code": 0, "results": results})
}

// requestsTo returns the recorded requests for path, in order
func (f *fakeService) requestsTo(path string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []recordedRequest
	for _, r := range f.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func codeAt(codes []int, i int) int {
	if i < len(codes) {
		return codes[i]
	}
	return 0
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func sortedKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

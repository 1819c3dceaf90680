package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	clienterrors "github.com/emansarahafi/Dressly/client/internal/errors"
	"github.com/emansarahafi/Dressly/client/internal/types"
)

func TestSubmitQuiz_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quiz/submit" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var answers types.QuizAnswers
		_ = json.NewDecoder(r.Body).Decode(&answers)
		_ = json.NewEncoder(w).Encode(types.QuizResult{
			Status:             "success",
			Input:              answers,
			Recommendation:     "Go for relaxed linen.",
			Products:           []types.Product{{Code: "p1"}},
			CategoriesSearched: []string{"ladies_all"},
		})
	}))
	defer srv.Close()

	res, err := SubmitQuiz(context.Background(), srv.Client(), srv.URL, types.QuizAnswers{"style": "casual"})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if res.Status != "success" || len(res.Products) != 1 || res.Input["style"] != "casual" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmitQuiz_Errors(t *testing.T) {
	t.Parallel()
	if _, err := SubmitQuiz(context.Background(), http.DefaultClient, "http://unused", nil); err == nil {
		t.Fatal("expected error for empty answers")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	_, err := SubmitQuiz(context.Background(), srv.Client(), srv.URL, types.QuizAnswers{"style": "casual"})
	var ce *clienterrors.ClassifiedError
	if !errors.As(err, &ce) || ce.StatusCode != 500 || ce.Detail != "" {
		t.Fatalf("expected 500 without detail, got %v", err)
	}
}

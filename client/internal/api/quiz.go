package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emansarahafi/Dressly/client/internal/types"
)

// SubmitQuiz posts quiz answers and returns the style recommendation.
func SubmitQuiz(ctx context.Context, httpClient HTTPClient, baseURL string, answers types.QuizAnswers) (*types.QuizResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("quiz answers are required")
	}
	body, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(baseURL, "/quiz/submit"), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := do(httpClient, httpReq, "submit quiz")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := expectStatus(resp, http.StatusOK, "submit quiz"); err != nil {
		return nil, err
	}

	var result types.QuizResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

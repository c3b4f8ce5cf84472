package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultEndpoint = "https://translation.googleapis.com/language/translate/v2"

// GoogleService translates text through the Google Translate v2 REST API,
// authenticating with a caller-supplied OAuth access token.
type GoogleService struct {
	accessKey string
	endpoint  string
	client    *http.Client
	logger    zerolog.Logger
}

// NewGoogleService builds a service around the production endpoint. The
// client carries no timeout: the exchange blocks until the server answers.
func NewGoogleService(accessKey string, logger zerolog.Logger) *GoogleService {
	return &GoogleService{
		accessKey: accessKey,
		endpoint:  defaultEndpoint,
		client:    &http.Client{},
		logger:    logger,
	}
}

// Translate sends a single synchronous translation request and returns the
// translated text. A reply that does not carry a translation comes back as
// *APIError; failures below the HTTP exchange come back as wrapped errors.
func (s *GoogleService) Translate(ctx context.Context, req Request) (string, error) {
	body := map[string]string{
		"source": req.SourceLang,
		"target": req.TargetLang,
		"q":      req.Text,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.accessKey))

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	s.logger.Debug().
		Str("endpoint", s.endpoint).
		Str("status", resp.Status).
		Dur("latency", time.Since(start)).
		Msg("translation response received")

	var envelope struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
	}

	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Data.Translations) == 0 {
		return "", &APIError{Status: resp.Status, Detail: errorDetail(resp.Status, data)}
	}

	return envelope.Data.Translations[0].TranslatedText, nil
}

// errorDetail extracts the provider's error envelope from a failed response
// body, falling back to the HTTP status line when the body carries no
// recognizable message.
func errorDetail(status string, body []byte) string {
	var errResp struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		if errResp.Error.Code != 0 {
			return fmt.Sprintf("%d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return errResp.Error.Message
	}

	return status
}
